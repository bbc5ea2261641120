package handlers

import (
	"errors"
	"net/http"

	catalogSvc "glowdesk/services/catalog"

	"glowdesk/models"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the service and promotion catalog. Listing is
// public so the booking page can render the offering; mutation is admin only.
type CatalogHandler struct {
	Service catalogSvc.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(service catalogSvc.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

// ListServices handles GET /api/catalog/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Service.ListServices()
	if err != nil {
		utils.GetLogger().Error("ListServices: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	svc, err := h.Service.GetService(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogSvc.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateService handles POST /api/catalog/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.CreateService(&svc)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("CreateService: create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateService handles PUT /api/catalog/services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc.ID = c.Param("id")

	updated, err := h.Service.UpdateService(&svc)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("UpdateService: update failed", zap.String("id", svc.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteService handles DELETE /api/catalog/services/:id.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.Service.DeleteService(c.Param("id")); err != nil {
		utils.GetLogger().Error("DeleteService: delete failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ListPromotions handles GET /api/catalog/promotions. With ?active=true only
// promotions whose validity window contains the current time are returned.
func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	var (
		promos []models.Promotion
		err    error
	)
	if c.Query("active") == "true" {
		promos, err = h.Service.ListActivePromotions()
	} else {
		promos, err = h.Service.ListPromotions()
	}
	if err != nil {
		utils.GetLogger().Error("ListPromotions: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, promos)
}

// GetPromotionByID handles GET /api/catalog/promotions/:id.
func (h *CatalogHandler) GetPromotionByID(c *gin.Context) {
	promo, err := h.Service.GetPromotion(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogSvc.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, promo)
}

// CreatePromotion handles POST /api/catalog/promotions.
func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	var promo models.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.CreatePromotion(&promo)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("CreatePromotion: create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePromotion handles PUT /api/catalog/promotions/:id.
func (h *CatalogHandler) UpdatePromotion(c *gin.Context) {
	var promo models.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	promo.ID = c.Param("id")

	updated, err := h.Service.UpdatePromotion(&promo)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("UpdatePromotion: update failed", zap.String("id", promo.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePromotion handles DELETE /api/catalog/promotions/:id.
func (h *CatalogHandler) DeletePromotion(c *gin.Context) {
	if err := h.Service.DeletePromotion(c.Param("id")); err != nil {
		utils.GetLogger().Error("DeletePromotion: delete failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
}
