package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Harshitduggal1/scheduling-software/internal/api/handlers"
	"github.com/Harshitduggal1/scheduling-software/internal/api/middleware"
	"github.com/Harshitduggal1/scheduling-software/internal/api/routes"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/eventtype"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/events"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/user"
	"github.com/Harshitduggal1/scheduling-software/internal/infrastructure/cache"
	"github.com/Harshitduggal1/scheduling-software/internal/infrastructure/persistence/postgres/connection"
	"github.com/Harshitduggal1/scheduling-software/internal/infrastructure/persistence/postgres/migrations"
	"github.com/Harshitduggal1/scheduling-software/pkg/config"
	"github.com/Harshitduggal1/scheduling-software/pkg/logger"
	"github.com/Harshitduggal1/scheduling-software/pkg/security/auth"
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.NewLoggerWithLevel(cfg.Logging.Level)
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Type",
			"Authorization",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	metricsMiddleware := middleware.NewMetricsMiddleware()
	router.Use(metricsMiddleware.CollectMetrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := migrations.AutoMigrate(db, log.Logger); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	redisConfig := cache.NewConfigFromEnv(cfg)
	redisClient, err := cache.NewRedisClient(redisConfig)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	cacheMiddleware := middleware.NewCacheMiddleware(redisClient, "calmarshal", 5*time.Minute)

	// Repositories and services
	userRepo := user.NewRepository(db.DB)
	eventTypeRepo := eventtype.NewRepository(db.DB)

	userService := user.NewService(userRepo, redisClient, log.Logger)
	eventTypeService := eventtype.NewService(eventTypeRepo, redisClient, log.Logger)

	// Handlers
	eventTypeHandler := handlers.NewEventTypeHandler(eventTypeService, cfg.App.BaseURL)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(eventTypeService, userService, cfg.App.BaseURL)
	bookingHandler := handlers.NewBookingHandler(eventTypeService, userService)
	authHandler := handlers.NewAuthHandler(auth.NewJWTService(cfg))

	// Routes
	routes.SetupHealthRoutes(router, redisClient)

	eventTypeRoutes := routes.NewEventTypeRoutes(eventTypeHandler, cfg.Auth.JWTSecret)
	eventTypeRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered event type routes at /api/event-types")

	dashboardRoutes := routes.NewDashboardRoutes(dashboardHandler, cfg.Auth.JWTSecret)
	dashboardRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered dashboard routes at /api/dashboard")

	userRoutes := routes.NewUserRoutes(userHandler, cfg.Auth.JWTSecret)
	userRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered settings routes at /api/settings")

	bookingRoutes := routes.NewBookingRoutes(bookingHandler)
	bookingRoutes.RegisterRoutes(router)
	log.Info("Registered public booking routes at /api/booking")

	authRoutes := routes.NewAuthRoutes(authHandler, cfg.Auth.JWTSecret)
	authRoutes.RegisterRoutes(router)
	log.Info("Registered session routes at /api/auth")

	// Mirror published dashboard events into the log; connected clients
	// consume the same channel for live list refresh and toasts.
	go func() {
		ctx := context.Background()
		err := redisClient.SubscribeToDashboardEvents(ctx, func(event *events.DashboardEvent) error {
			log.Info("Dashboard event",
				zap.String("type", event.EventType),
				zap.String("user_id", event.UserID.String()),
			)
			return nil
		})
		if err != nil {
			log.Error("Dashboard event subscription ended", zap.Error(err))
		}
	}()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
