// Package bootstrap loads configuration and assembles the application:
// infrastructure, repositories, services, handlers and the HTTP server.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "github.com/jcleow/birding-express-swe1/internal/handler/http"
	gormpersistence "github.com/jcleow/birding-express-swe1/internal/infra/persistence/gorm"
	"github.com/jcleow/birding-express-swe1/internal/infra/setup"
	"github.com/jcleow/birding-express-swe1/internal/middleware"
	"github.com/jcleow/birding-express-swe1/internal/service"
)

// Config holds everything read from the environment at startup.
type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CookieSalt is the process-wide secret the identity digest is
	// derived from. Required; the session contract is useless without it.
	CookieSalt string

	ServerPort      string
	LogLevel        string
	AppEnv          string
	TemplatesGlob   string
	CORSOrigin      string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// LoadConfig reads configuration from a .env file (if present) and the
// environment, applying defaults and failing fast on required values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // optional; plain env vars are fine

	cfg := &Config{
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBName:          os.Getenv("DB_NAME"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CookieSalt:      os.Getenv("COOKIE_SALT"),
		ServerPort:      os.Getenv("SERVER_PORT"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		AppEnv:          os.Getenv("APP_ENV"),
		TemplatesGlob:   os.Getenv("TEMPLATES_GLOB"),
		CORSOrigin:      os.Getenv("CORS_ALLOWED_ORIGIN"),
		RateLimitMax:    100,
		RateLimitWindow: 1 * time.Second,
	}
	cfg.RedisDB, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.TemplatesGlob == "" {
		cfg.TemplatesGlob = "templates/*.html"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "127.0.0.1"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBName == "" {
		cfg.DBName = "birding"
	}
	if cfg.DBUser == "" {
		return nil, fmt.Errorf("environment variable DB_USER must be set")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("environment variable REDIS_ADDR must be set")
	}
	if cfg.CookieSalt == "" {
		return nil, fmt.Errorf("environment variable COOKIE_SALT must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App bundles the running components for startup and shutdown.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	HttpServer  *http.Server
}

// NewApp creates and wires every component.
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	log.Info("Configuration loaded successfully")

	db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	log.Info("Database initialized")

	if err := setup.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database migrated")

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}
	log.Info("Redis client initialized")

	userRepo := gormpersistence.NewGormUserRepository(db)
	noteRepo := gormpersistence.NewGormNoteRepository(db)
	behaviourRepo := gormpersistence.NewGormBehaviourRepository(db)
	commentRepo := gormpersistence.NewGormCommentRepository(db)
	speciesRepo := gormpersistence.NewGormSpeciesRepository(db)
	log.Info("Repositories initialized")

	hasher, err := service.NewHasher(cfg.CookieSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity hasher: %w", err)
	}
	authService := service.NewAuthService(userRepo, hasher)
	noteService := service.NewNoteService(noteRepo, behaviourRepo, commentRepo, hasher)
	userService := service.NewUserService(userRepo, noteRepo, commentRepo)
	speciesService := service.NewSpeciesService(speciesRepo)
	log.Info("Services initialized")

	authHandler := httpHandler.NewAuthHandler(authService)
	noteHandler := httpHandler.NewNoteHandler(noteService)
	userHandler := httpHandler.NewUserHandler(userService)
	speciesHandler := httpHandler.NewSpeciesHandler(speciesService)
	log.Info("Handlers initialized")

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(corsMiddleware(cfg))
	router.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))
	router.Use(middleware.Session(hasher))
	router.LoadHTMLGlob(cfg.TemplatesGlob)

	registerRoutes(router, authHandler, noteHandler, userHandler, speciesHandler)
	log.Info("Router setup complete")

	httpServer := &http.Server{
		Addr: ":" + cfg.ServerPort,
		// Method override must wrap the router so HTML forms can drive
		// the PUT/DELETE routes before gin matches on the verb.
		Handler:      middleware.MethodOverride(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		HttpServer:  httpServer,
	}, nil
}

func registerRoutes(router *gin.Engine, auth *httpHandler.AuthHandler, note *httpHandler.NoteHandler, user *httpHandler.UserHandler, species *httpHandler.SpeciesHandler) {
	router.GET("/", note.List)

	router.GET("/note", note.NewForm)
	router.POST("/note", middleware.RequireLogin(), note.Create)
	router.GET("/note/:id", note.View)
	router.GET("/note/:id/edit", note.EditForm)
	router.PUT("/note/:id/edit", note.Update)
	router.DELETE("/note/:id/delete", note.Delete)
	router.POST("/note/:id/comment", middleware.RequireLogin(), note.Comment)

	router.GET("/signup", auth.SignupForm)
	router.POST("/signup", auth.Signup)
	router.GET("/login", auth.LoginForm)
	router.POST("/login", auth.Login)
	router.DELETE("/logout", auth.Logout)

	router.GET("/user-dashboard", user.Dashboard)
	router.GET("/users/:id", user.Sightings)

	router.GET("/species/create", species.CreateForm)
	router.POST("/species/create", species.Create)
	router.GET("/species", species.List)
	router.GET("/species/:id", species.View)
}

func corsMiddleware(cfg *Config) gin.HandlerFunc {
	origin := cfg.CORSOrigin
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// Start runs the HTTP server in the background.
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening")
	}()
}

// Shutdown drains the HTTP server, then closes Redis and the DB pool.
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully")
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		}
	}

	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Log.Errorf("Error closing database connection: %v", err)
			}
		}
	}

	a.Log.Info("Application shutdown complete")
}

// LoggerMiddleware records one structured log line per request.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()
		switch {
		case errorMessage != "":
			entry.Error(errorMessage)
		case statusCode >= 500:
			entry.Error("Server error")
		case statusCode >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request handled")
		}
	}
}
