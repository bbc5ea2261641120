package handlers

import (
	"errors"
	"net/http"

	clientSvc "glowdesk/services/client"

	"glowdesk/models"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes the admin client endpoints.
type ClientHandler struct {
	Service clientSvc.ClientService
}

// NewClientHandler constructs a ClientHandler.
func NewClientHandler(service clientSvc.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

// ListClients handles GET /api/clients.
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.Service.List()
	if err != nil {
		utils.GetLogger().Error("ListClients: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClientByID handles GET /api/clients/:id.
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	client, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient handles POST /api/clients.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Create(&client)
	if err != nil {
		if errors.Is(err, clientSvc.ErrInvalidClient) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("CreateClient: create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateClient handles PUT /api/clients/:id.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client.ID = c.Param("id")

	updated, err := h.Service.Update(&client)
	if err != nil {
		if errors.Is(err, clientSvc.ErrInvalidClient) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("UpdateClient: update failed", zap.String("id", client.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClient handles DELETE /api/clients/:id.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		utils.GetLogger().Error("DeleteClient: delete failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
