package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowdesk/config"
	"glowdesk/cron"
	"glowdesk/database"
	appointmentRepoPkg "glowdesk/database/repository/appointment"
	catalogRepoPkg "glowdesk/database/repository/catalog"
	clientRepoPkg "glowdesk/database/repository/client"
	employeeRepoPkg "glowdesk/database/repository/employee"
	"glowdesk/handlers"
	"glowdesk/middleware"
	"glowdesk/routes"
	catalogSvc "glowdesk/services/catalog"
	clientSvc "glowdesk/services/client"
	dashboardSvc "glowdesk/services/dashboard"
	employeeSvc "glowdesk/services/employee"
	"glowdesk/services/notification"
	"glowdesk/services/scheduling"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	employeeRepo := employeeRepoPkg.NewMongoEmployeeRepo()

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Catalog:      catalogRepo,
		Appointments: appointmentRepo,
		Clients:      clientRepo,
	}
	catalogService := &catalogSvc.DefaultCatalogService{Repo: catalogRepo}
	clientService := &clientSvc.DefaultClientService{Repo: clientRepo}
	employeeService := &employeeSvc.DefaultEmployeeService{Repo: employeeRepo}
	dashboardService := &dashboardSvc.DefaultDashboardService{Appointments: appointmentRepo}
	notificationService := notification.NewEmailNotificationService()

	// handlers.
	bookingHandler := handlers.NewBookingHandler(schedulingService, logger)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo)
	clientHandler := handlers.NewClientHandler(clientService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Public booking endpoints.
		CreateBookingHandler: bookingHandler.CreateBooking,
		ConflictCheckHandler: bookingHandler.ConflictCheck,

		// Appointment endpoints.
		ListAppointmentsHandler:        appointmentHandler.ListAppointments,
		GetAppointmentByIDHandler:      appointmentHandler.GetAppointmentByID,
		RescheduleAppointmentHandler:   appointmentHandler.RescheduleAppointment,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatus,

		// Client endpoints.
		ListClientsHandler:   clientHandler.ListClients,
		GetClientByIDHandler: clientHandler.GetClientByID,
		CreateClientHandler:  clientHandler.CreateClient,
		UpdateClientHandler:  clientHandler.UpdateClient,
		DeleteClientHandler:  clientHandler.DeleteClient,

		// Employee endpoints.
		LoginHandler:           employeeHandler.Login,
		LogoutHandler:          employeeHandler.Logout,
		ListEmployeesHandler:   employeeHandler.ListEmployees,
		GetEmployeeByIDHandler: employeeHandler.GetEmployeeByID,
		CreateEmployeeHandler:  employeeHandler.CreateEmployee,
		UpdateEmployeeHandler:  employeeHandler.UpdateEmployee,
		DeleteEmployeeHandler:  employeeHandler.DeleteEmployee,

		// Catalog endpoints.
		ListServicesHandler:     catalogHandler.ListServices,
		GetServiceByIDHandler:   catalogHandler.GetServiceByID,
		CreateServiceHandler:    catalogHandler.CreateService,
		UpdateServiceHandler:    catalogHandler.UpdateService,
		DeleteServiceHandler:    catalogHandler.DeleteService,
		ListPromotionsHandler:   catalogHandler.ListPromotions,
		GetPromotionByIDHandler: catalogHandler.GetPromotionByID,
		CreatePromotionHandler:  catalogHandler.CreatePromotion,
		UpdatePromotionHandler:  catalogHandler.UpdatePromotion,
		DeletePromotionHandler:  catalogHandler.DeletePromotion,

		// Dashboard endpoints.
		DashboardSummaryHandler: dashboardHandler.GetSummary,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder pipeline.
	cron.InitReminderWorker(notificationService)
	cron.InitReminderScheduler(appointmentRepo, clientRepo, catalogRepo)

	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache": utils.GetCacheClient(),
			"auth":  utils.GetAuthCacheClient(),
		},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
