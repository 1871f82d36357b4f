package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/traveldesk/api/audit"
	"github.com/traveldesk/api/config"
	"github.com/traveldesk/api/controller"
	"github.com/traveldesk/api/db"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/policy"
	"github.com/traveldesk/api/router"
	"github.com/traveldesk/api/search"
	"github.com/traveldesk/api/service"
	"github.com/traveldesk/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Neo4j
	if err := db.InitNeo4j(); err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer db.CloseNeo4j()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize utilities and the audit trail
	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService()
	notificationService := util.NewNotificationService()
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize Elasticsearch audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	// Load the travel policy rule table and build the validator
	rules, err := policy.LoadRules()
	if err != nil {
		logger.Fatal("Failed to load policy rules", zap.Error(err))
	}
	validator, err := policy.NewValidator(rules)
	if err != nil {
		logger.Fatal("Failed to build policy validator", zap.Error(err))
	}

	// Initialize services
	searchClient := search.NewClient()
	services, err := service.InitializeServices(
		db.Neo4jDriver,
		auditService,
		validator,
		searchClient,
		validationUtil,
		cacheService,
		notificationService,
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(
		controllers,
		config.GetInt("server.rateLimitRequests"),
		viperDuration("server.rateLimitWindow"),
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

func viperDuration(key string) time.Duration {
	d, err := time.ParseDuration(config.GetString(key))
	if err != nil {
		return time.Minute
	}
	return d
}
