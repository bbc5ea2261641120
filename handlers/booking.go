package handlers

import (
	"net/http"
	"time"

	"glowdesk/models"
	"glowdesk/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the public booking endpoint and the reactive
// conflict check used by the calendar UI.
type BookingHandler struct {
	SchedulingSvc scheduling.SchedulingService
	Logger        *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{SchedulingSvc: svc, Logger: logger}
}

// CreateBooking handles POST /api/booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("CreateBooking: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	created, err := h.SchedulingSvc.CreateBooking(req)
	if err != nil {
		if scheduling.IsValidationError(err) {
			h.Logger.Warn("CreateBooking: validation failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "booking validation failed",
				"message": err.Error(),
			})
			return
		}
		h.Logger.Error("CreateBooking: failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create booking",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ConflictCheck handles POST /api/schedule/conflict-check. The calendar UI
// re-runs it on every relevant field change while an appointment is edited.
func (h *BookingHandler) ConflictCheck(c *gin.Context) {
	var req models.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid start_date_time",
			"message": err.Error(),
		})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid end_date_time",
			"message": err.Error(),
		})
		return
	}

	conflict, category := h.SchedulingSvc.CheckConflict(scheduling.ConflictCandidate{
		Start:       start,
		End:         end,
		ServiceID:   req.ServiceID,
		PromotionID: req.PromotionID,
		ExcludeID:   req.ExcludeID,
	})

	resp := gin.H{"conflict": conflict}
	if conflict {
		resp["category"] = category
		resp["message"] = "This time overlaps another " + category + " appointment."
	}
	c.JSON(http.StatusOK, resp)
}
