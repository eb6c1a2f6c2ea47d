// @title GrammarLab API
// @version 1.0
// @description Answer evaluation and hint service for grammar exercises.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SESSION_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"grammarlab/internal/adapter"
	"grammarlab/internal/adapter/essay"
	"grammarlab/internal/cache"
	"grammarlab/internal/config"
	"grammarlab/internal/database"
	"grammarlab/internal/domain"
	"grammarlab/internal/handler"
	"grammarlab/internal/logger"
	"grammarlab/internal/middleware"
	"grammarlab/internal/port"
	"grammarlab/internal/repository"
	"grammarlab/internal/service"

	_ "grammarlab/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to the question bank
	db, err := database.NewSQLXDB(cfg.DSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	attemptRepository := repository.NewAttemptDatabaseAdapter(db)

	// Hint sessions live in Redis when one is configured, in process
	// memory otherwise.
	var sessionStore domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		sessionStore = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Using Redis for hint sessions", zap.String("address", cfg.Redis.Address))
	} else {
		sessionStore = adapter.NewMemoryCacheAdapter()
		appLogger.Info("No Redis configured, using in-memory hint sessions")
	}

	// Optional essay-grading collaborator
	var essayGrader port.EssayGrader
	if cfg.Essay.Enabled {
		ollamaHTTPClient := &http.Client{Timeout: 20 * time.Second}
		llm, err := ollama.New(
			ollama.WithServerURL(cfg.Essay.ServerURL),
			ollama.WithModel(cfg.Essay.Model),
			ollama.WithHTTPClient(ollamaHTTPClient),
		)
		if err != nil {
			appLogger.Fatal("Failed to create LLM client", zap.Error(err))
		}
		essayGrader = essay.NewOllamaEssayGrader(llm)
		appLogger.Info("Essay grader enabled", zap.String("model", cfg.Essay.Model))
	}

	// Initialize services
	tokenService, err := service.NewTokenService(cfg.Auth)
	if err != nil {
		appLogger.Warn("Session tokens disabled", zap.Error(err))
		tokenService = nil
	}
	evaluationService := service.NewEvaluationService(questionRepository, attemptRepository, essayGrader, cfg.Engine)
	hintService := service.NewHintService(questionRepository, sessionStore, tokenService, cfg.Engine)
	questionService := service.NewQuestionService(questionRepository)

	// Initialize handlers
	evaluationHandler := handler.NewEvaluationHandler(evaluationService)
	hintHandler := handler.NewHintHandler(hintService)
	questionHandler := handler.NewQuestionHandler(questionService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
		BodyLimit:    1 * 1024 * 1024,
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")

	apiGroup.Post("/evaluate", middleware.OptionalSession(tokenService), evaluationHandler.Evaluate)

	apiGroup.Post("/sessions", hintHandler.StartSession)
	if tokenService != nil {
		apiGroup.Post("/sessions/:id/hints/next", middleware.RequireSession(tokenService), hintHandler.NextHint)
	} else {
		apiGroup.Post("/sessions/:id/hints/next", hintHandler.NextHint)
	}

	apiGroup.Get("/questions/random", questionHandler.GetRandomQuestion)
	apiGroup.Get("/questions/:id", questionHandler.GetQuestion)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
