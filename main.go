// File: tripthrive/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripthrive/config"
	"tripthrive/database"
	bookingRepoPkg "tripthrive/database/repository/booking"
	serviceRepoPkg "tripthrive/database/repository/service"
	"tripthrive/handlers"
	"tripthrive/middleware"
	"tripthrive/routes"
	bookingSvc "tripthrive/services/booking"
	"tripthrive/services/catalog"
	"tripthrive/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo: serviceRepo,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo: bookingRepo,
	}

	authHandler := handlers.NewAuthHandler()
	serviceHandler := handlers.NewServiceHandler(catalogService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		IssueTokenHandler: authHandler.IssueTokenHandler,
		LogoutHandler:     authHandler.LogoutHandler,

		// Catalog endpoints.
		AddServiceHandler:          serviceHandler.AddServiceHandler,
		UpdateServiceHandler:       serviceHandler.UpdateServiceHandler,
		DeleteServiceHandler:       serviceHandler.DeleteServiceHandler,
		GetServicesHandler:         serviceHandler.GetServicesHandler,
		GetProviderServicesHandler: serviceHandler.GetProviderServicesHandler,
		GetServiceDetailsHandler:   serviceHandler.GetServiceDetailsHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetMyBookingsHandler:       bookingHandler.GetMyBookingsHandler,
		GetPendingBookingsHandler:  bookingHandler.GetPendingBookingsHandler,
		DeleteBookingHandler:       bookingHandler.DeleteBookingHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
