package handlers

import (
	"net/http"
	"time"

	appointmentRepo "glowdesk/database/repository/appointment"

	"glowdesk/models"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the admin appointment endpoints.
type AppointmentHandler struct {
	Repo appointmentRepo.AppointmentRepository
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo}
}

// ListAppointments handles GET /api/appointments. Optional query parameters
// client_id, from and to (RFC3339) narrow the result.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	logger := utils.GetLogger()

	if clientID := c.Query("client_id"); clientID != "" {
		appts, err := h.Repo.GetByClient(clientID)
		if err != nil {
			logger.Error("ListAppointments: fetch by client failed", zap.String("clientID", clientID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appts)
		return
	}

	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw != "" && toRaw != "" {
		from, err1 := time.Parse(time.RFC3339, fromRaw)
		to, err2 := time.Parse(time.RFC3339, toRaw)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be RFC3339 timestamps"})
			return
		}
		appts, err := h.Repo.GetByRange(from, to)
		if err != nil {
			logger.Error("ListAppointments: fetch by range failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appts)
		return
	}

	appts, err := h.Repo.GetAll()
	if err != nil {
		logger.Error("ListAppointments: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentByID handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id := c.Param("id")
	appt, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RescheduleAppointment handles PUT /api/appointments/:id/reschedule. The
// end time is re-derived from the stored duration so the duration invariant
// holds after the move.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		StartDateTime string `json:"start_date_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date_time must be RFC3339"})
		return
	}

	appt, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	appt.StartDateTime = start
	appt.EndDateTime = start.Add(time.Duration(appt.DurationMinutes) * time.Minute)

	if err := h.Repo.Update(appt); err != nil {
		logger.Error("RescheduleAppointment: update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentStatus handles PUT /api/appointments/:id/status.
// Cancellation is a status transition; appointments are never hard-deleted.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Status {
	case models.AppointmentStatusPending,
		models.AppointmentStatusConfirmed,
		models.AppointmentStatusCompleted,
		models.AppointmentStatusCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + req.Status})
		return
	}

	if err := h.Repo.UpdateStatus(id, req.Status); err != nil {
		logger.Error("UpdateAppointmentStatus: update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "status": req.Status})
}
