package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	ConflictCheckHandler gin.HandlerFunc

	// Appointment endpoints (admin).
	ListAppointmentsHandler        gin.HandlerFunc
	GetAppointmentByIDHandler      gin.HandlerFunc
	RescheduleAppointmentHandler   gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc

	// Client endpoints (admin).
	ListClientsHandler   gin.HandlerFunc
	GetClientByIDHandler gin.HandlerFunc
	CreateClientHandler  gin.HandlerFunc
	UpdateClientHandler  gin.HandlerFunc
	DeleteClientHandler  gin.HandlerFunc

	// Employee endpoints.
	LoginHandler           gin.HandlerFunc
	LogoutHandler          gin.HandlerFunc
	ListEmployeesHandler   gin.HandlerFunc
	GetEmployeeByIDHandler gin.HandlerFunc
	CreateEmployeeHandler  gin.HandlerFunc
	UpdateEmployeeHandler  gin.HandlerFunc
	DeleteEmployeeHandler  gin.HandlerFunc

	// Catalog endpoints. Listing services and active promotions is public.
	ListServicesHandler     gin.HandlerFunc
	GetServiceByIDHandler   gin.HandlerFunc
	CreateServiceHandler    gin.HandlerFunc
	UpdateServiceHandler    gin.HandlerFunc
	DeleteServiceHandler    gin.HandlerFunc
	ListPromotionsHandler   gin.HandlerFunc
	GetPromotionByIDHandler gin.HandlerFunc
	CreatePromotionHandler  gin.HandlerFunc
	UpdatePromotionHandler  gin.HandlerFunc
	DeletePromotionHandler  gin.HandlerFunc

	// Dashboard endpoints (admin).
	DashboardSummaryHandler gin.HandlerFunc
}
