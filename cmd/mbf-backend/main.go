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

	"github.com/diego410711/mbf-backend/internal/api"
	"github.com/diego410711/mbf-backend/internal/config"
	"github.com/diego410711/mbf-backend/internal/database"
	"github.com/diego410711/mbf-backend/internal/email"
	"github.com/diego410711/mbf-backend/internal/render"
	"github.com/diego410711/mbf-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Configurar logging
	logger := setupLogger(cfg)
	logger.Info("Starting MBF Backend...")

	// Configurar modo de Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar a la base de datos
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	// Conectar a Redis; sin él los códigos de recuperación usan solo la base
	redis, err := database.ConnectRedis(cfg)
	if err != nil {
		logger.Warnf("Error connecting to Redis: %v", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	// Inicializar almacenamiento de objetos para los PDF generados
	var objectStore *database.ObjectStoreClient
	if cfg.HasStorage() {
		objectStore, err = database.NewObjectStoreClient(&cfg.Storage, logger)
		if err != nil {
			logger.Warnf("Error initializing object storage client: %v", err)
			objectStore = nil
		} else {
			if err := objectStore.HealthCheck(); err != nil {
				logger.Warnf("Object storage health check failed: %v", err)
			} else {
				logger.Info("Object storage connection healthy")
			}
		}
	} else {
		logger.Warn("Object storage credentials not provided, generated documents will live in the database only")
	}

	// Inicializar repositorios
	userRepo := database.NewUserRepository(db, logger)
	equipmentRepo := database.NewEquipmentRepository(db, logger)
	inventoryRepo := database.NewInventoryRepository(db, logger)
	eventRepo := database.NewEventRepository(db, logger)
	docFilesRepo := database.NewDocumentFilesRepository(db, logger)

	// Inicializar servicios
	mailer := email.NewResendService(&cfg.Email, logger)
	recaptcha := services.NewRecaptchaService(&cfg.Recaptcha, logger)
	authService := services.NewAuthService(&cfg.JWT, logger)
	engine := render.NewEngine(cfg.Assets.Dir, logger)
	storageService := services.NewStorageService(objectStore, docFilesRepo, logger)

	userService := services.NewUserService(userRepo, redis, authService, recaptcha, mailer, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, engine, storageService, logger)
	inventoryService := services.NewInventoryService(inventoryRepo, engine, storageService, logger)
	eventService := services.NewEventService(eventRepo, logger)

	// Inicializar API
	apiHandler := api.NewAPI(
		userService,
		authService,
		equipmentService,
		inventoryService,
		eventService,
		storageService,
		logger,
	)

	// Configurar router
	router := setupRouter(apiHandler, cfg)

	// Crear servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Canal para señales de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Iniciar servidor en goroutine
	go func() {
		logger.Infof("Server starting on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	// Esperar señal de terminación
	<-quit
	logger.Info("Shutting down server...")

	// Contexto con timeout para shutdown graceful
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown graceful del servidor
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	// Configurar nivel de log
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configurar formato
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// setupRouter configura el router principal
func setupRouter(apiHandler *api.API, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware global
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Middleware de CORS para desarrollo
	if cfg.IsDevelopment() {
		router.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}

			c.Next()
		})
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "mbf-backend",
			"version":   "1.0.0",
		})
	})

	apiHandler.RegisterRoutes(router)

	return router
}
