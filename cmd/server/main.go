package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/varun8487/ai-ml/internal/api"
	"github.com/varun8487/ai-ml/internal/api/middleware"
	"github.com/varun8487/ai-ml/internal/chatbot"
	"github.com/varun8487/ai-ml/internal/classifier"
	"github.com/varun8487/ai-ml/internal/db"
	"github.com/varun8487/ai-ml/internal/ws"
	"github.com/varun8487/ai-ml/pkg/mlservice"
)

func main() {
	envLoadErr := godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")

	var logger *zap.Logger
	var err error
	if appEnv == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if envLoadErr != nil {
		logger.Warn(".env file not found", zap.Error(envLoadErr))
	}

	port := getEnv("PORT", "5000")
	databaseURL := getEnv("DATABASE_URL", "")
	mlServiceURL := getEnv("ML_SERVICE_URL", "http://localhost:5001")
	intentsPath := getEnv("INTENTS_PATH", "data/intents.json")

	var allowedOrigins []string
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	// Initialize database
	database, err := db.NewFromURL(databaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()
	logger.Info("database connected")

	// Load intents and train the classifier before accepting chat traffic
	intents, err := chatbot.LoadIntents(intentsPath)
	if err != nil {
		logger.Fatal("failed to load intents", zap.Error(err))
	}

	cls := classifier.New()
	if err := cls.Train(intents.TrainingDocs()); err != nil {
		logger.Fatal("failed to train classifier", zap.Error(err))
	}
	logger.Info("classifier trained",
		zap.Int("intents", intents.Len()),
		zap.Int("documents", cls.TrainingSize()),
	)

	// Initialize components
	scorer := mlservice.NewHTTPClient(mlservice.Config{BaseURL: mlServiceURL})
	engine := chatbot.NewEngine(cls, intents, database, logger)

	// Initialize handlers
	analysisHandler := api.NewAnalysisHandler(database, scorer, logger, appEnv != "production")
	chatHandler := api.NewChatHandler(engine, logger)
	wsHandler := ws.NewChatHandler(engine, logger)

	// Setup Gin router
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.PerIP(100.0/60.0, 200)) // ~100/min per IP

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.POST("/chat", chatHandler.Chat)
	router.POST("/analyze", analysisHandler.Analyze)
	router.POST("/feedback", chatHandler.Feedback)
	router.GET("/ws/chat", wsHandler.HandleChat)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
