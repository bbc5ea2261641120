package routes

import (
	"net/http"
	"time"

	"glowdesk/handlers"
	"glowdesk/middleware"
	"glowdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the public booking endpoints used by the
// customer-facing booking page.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/booking", hb.CreateBookingHandler)
		api.POST("/schedule/conflict-check", hb.ConflictCheckHandler)
	}
}

// RegisterAppointmentRoutes registers the admin appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthEmployeeMiddleware())
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentByIDHandler)
		api.PUT("/:id/reschedule", hb.RescheduleAppointmentHandler)
		api.PUT("/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterClientRoutes registers the admin client endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.Use(middleware.JWTAuthEmployeeMiddleware())
		api.GET("", hb.ListClientsHandler)
		api.GET("/:id", hb.GetClientByIDHandler)
		api.POST("", hb.CreateClientHandler)
		api.PUT("/:id", hb.UpdateClientHandler)
		api.DELETE("/:id", hb.DeleteClientHandler)
	}
}

// RegisterEmployeeRoutes registers login plus the admin-only staff
// management endpoints.
func RegisterEmployeeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/employees")
	{
		api.POST("/login", hb.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthEmployeeMiddleware())
		protected.POST("/logout", hb.LogoutHandler)
		protected.GET("", hb.ListEmployeesHandler)
		protected.GET("/:id", hb.GetEmployeeByIDHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthEmployeeMiddleware(), middleware.RequireAdminRole())
		admin.POST("", hb.CreateEmployeeHandler)
		admin.PUT("/:id", hb.UpdateEmployeeHandler)
		admin.DELETE("/:id", hb.DeleteEmployeeHandler)
	}
}

// RegisterCatalogRoutes registers the catalog endpoints. Listing is public
// so the booking page can render the offering; mutation requires auth.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceByIDHandler)
		api.GET("/promotions", hb.ListPromotionsHandler)
		api.GET("/promotions/:id", hb.GetPromotionByIDHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthEmployeeMiddleware())
		protected.POST("/services", hb.CreateServiceHandler)
		protected.PUT("/services/:id", hb.UpdateServiceHandler)
		protected.DELETE("/services/:id", hb.DeleteServiceHandler)
		protected.POST("/promotions", hb.CreatePromotionHandler)
		protected.PUT("/promotions/:id", hb.UpdatePromotionHandler)
		protected.DELETE("/promotions/:id", hb.DeletePromotionHandler)
	}
}

// RegisterDashboardRoutes registers the admin dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthEmployeeMiddleware())
		api.GET("/summary", hb.DashboardSummaryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterEmployeeRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}
