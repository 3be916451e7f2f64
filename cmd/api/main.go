package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/api/middleware"
	"github.com/linweiyu/bugtrack-go/internal/api/routes"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/config"
	"github.com/linweiyu/bugtrack-go/internal/config/db"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	contents, err := storage.NewMinioStore()
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	var provider application.AnalysisProvider
	if config.AnthropicAPIKey != "" {
		provider = application.NewAnthropicProvider(config.AnthropicAPIKey, config.AnalysisModel)
	} else {
		log.Println("ANTHROPIC_API_KEY not set, code analysis falls back to canned results")
		provider = application.CannedProvider{}
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, contents, provider)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, services)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
