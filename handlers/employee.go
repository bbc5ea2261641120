package handlers

import (
	"errors"
	"net/http"
	"strings"

	employeeSvc "glowdesk/services/employee"

	"glowdesk/models"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmployeeHandler exposes staff account management and login.
type EmployeeHandler struct {
	Service employeeSvc.EmployeeService
}

// NewEmployeeHandler constructs an EmployeeHandler.
func NewEmployeeHandler(service employeeSvc.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Service: service}
}

// Login handles POST /api/employees/login.
func (h *EmployeeHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, emp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, employeeSvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Login: authentication failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "employee": emp})
}

// Logout handles POST /api/employees/logout. The bearer token is added to
// the revocation list so it stops working before its natural expiry.
func (h *EmployeeHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing bearer token"})
		return
	}

	if err := h.Service.RevokeToken(token); err != nil {
		utils.GetLogger().Error("Logout: revoke failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ListEmployees handles GET /api/employees.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	emps, err := h.Service.List()
	if err != nil {
		utils.GetLogger().Error("ListEmployees: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, emps)
}

// GetEmployeeByID handles GET /api/employees/:id.
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	emp, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, emp)
}

// CreateEmployee handles POST /api/employees.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp := &models.Employee{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}
	created, err := h.Service.Create(emp, req.Password)
	if err != nil {
		if errors.Is(err, employeeSvc.ErrInvalidEmployee) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("CreateEmployee: create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateEmployee handles PUT /api/employees/:id.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var emp models.Employee
	if err := c.ShouldBindJSON(&emp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	emp.ID = c.Param("id")

	updated, err := h.Service.Update(&emp)
	if err != nil {
		if errors.Is(err, employeeSvc.ErrInvalidEmployee) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("UpdateEmployee: update failed", zap.String("id", emp.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEmployee handles DELETE /api/employees/:id.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		utils.GetLogger().Error("DeleteEmployee: delete failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
