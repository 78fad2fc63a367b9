package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nihonga/admin-console/internal/config"
	"github.com/nihonga/admin-console/internal/handler"
	"github.com/nihonga/admin-console/internal/middleware"
	"github.com/nihonga/admin-console/internal/service"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// main is the application entrypoint for the Nihonga admin console API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting admin console")

	// 3. Storefront backend client
	client := storefront.NewClient(storefront.Config{
		BaseURL:      cfg.Storefront.BaseURL,
		AssetBaseURL: cfg.Storefront.AssetBaseURL,
		Timeout:      cfg.Storefront.RequestTimeout,
	})

	// 4. Initialize services
	collectionSvc := service.NewCollectionService(client)
	productSvc := service.NewProductService(client, cfg.Stock.LowStockThreshold)
	stockSvc := service.NewStockService(client, cfg.Stock.LowStockThreshold)
	orderSvc := service.NewOrderService(client)
	landingSvc := service.NewLandingService(client)
	adminSvc := service.NewAdminService(client)
	userSvc := service.NewUserService(client)
	analyticsSvc := service.NewAnalyticsService(client)

	// 5. Initialize handlers
	handlers := &Handlers{
		Health:     handler.NewHealthHandler(client),
		Auth:       handler.NewAuthHandler(),
		Collection: handler.NewCollectionHandler(collectionSvc),
		Product:    handler.NewProductHandler(productSvc, collectionSvc),
		Stock:      handler.NewStockHandler(stockSvc),
		Order:      handler.NewOrderHandler(orderSvc),
		Landing:    handler.NewLandingHandler(landingSvc, collectionSvc, productSvc),
		Admin:      handler.NewAdminHandler(adminSvc),
		User:       handler.NewUserHandler(userSvc),
		Analytics:  handler.NewAnalyticsHandler(analyticsSvc),
	}

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers)

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 9. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Collection *handler.CollectionHandler
	Product    *handler.ProductHandler
	Stock      *handler.StockHandler
	Order      *handler.OrderHandler
	Landing    *handler.LandingHandler
	Admin      *handler.AdminHandler
	User       *handler.UserHandler
	Analytics  *handler.AnalyticsHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/v1/health", handlers.Health.GetHealth)
	router.POST("/v1/auth/login", handlers.Auth.Login)

	screens := router.Group("/v1/screens")
	{
		screens.GET("/collections", handlers.Collection.List)
		screens.GET("/collections/schema", handlers.Collection.Schema)
		screens.POST("/collections", handlers.Collection.Create)
		screens.PUT("/collections/:id", handlers.Collection.Update)
		screens.DELETE("/collections/:id", handlers.Collection.Delete)

		screens.GET("/products", handlers.Product.List)
		screens.GET("/products/schema", handlers.Product.Schema)
		screens.POST("/products", handlers.Product.Create)
		screens.PUT("/products/:id", handlers.Product.Update)
		screens.DELETE("/products/:id", handlers.Product.Delete)
		screens.GET("/products/by-collection/:id", handlers.Product.ByCollection)

		screens.GET("/stock", handlers.Stock.List)
		screens.GET("/stock/summary", handlers.Stock.Summary)
		screens.PUT("/stock/bulk", handlers.Stock.BulkUpdate)
		screens.PUT("/stock/:id", handlers.Stock.Update)

		screens.GET("/orders", handlers.Order.List)
		screens.GET("/orders/:id", handlers.Order.Get)
		screens.PUT("/orders/:id/status", handlers.Order.ChangeStatus)
		screens.POST("/orders/:id/cancel", handlers.Order.Cancel)
		screens.POST("/orders/:id/refund", handlers.Order.Refund)
		screens.GET("/orders/:id/invoice", handlers.Order.Invoice)

		screens.GET("/landing", handlers.Landing.Get)
		screens.POST("/landing/heros", handlers.Landing.UploadHero)
		screens.DELETE("/landing/heros/:id", handlers.Landing.DeleteHero)
		screens.POST("/landing/collections/:id", handlers.Landing.AddCollection)
		screens.DELETE("/landing/collections/:id", handlers.Landing.RemoveCollection)
		screens.POST("/landing/bestsellers/:id", handlers.Landing.AddBestSeller)
		screens.DELETE("/landing/bestsellers/:id", handlers.Landing.RemoveBestSeller)

		screens.GET("/admins", handlers.Admin.List)
		screens.GET("/admins/schema", handlers.Admin.Schema)
		screens.POST("/admins", handlers.Admin.Create)
		screens.DELETE("/admins/:id", handlers.Admin.Delete)

		screens.GET("/users", handlers.User.List)
		screens.GET("/users/schema", handlers.User.Schema)
		screens.PUT("/users/:id", handlers.User.Update)

		screens.GET("/analytics/carts", handlers.Analytics.Carts)
		screens.GET("/analytics/wishlists", handlers.Analytics.Wishlists)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
