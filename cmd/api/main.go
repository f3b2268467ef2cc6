package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/internal/api/handlers"
	"github.com/linskybing/recruit-go/internal/api/middleware"
	"github.com/linskybing/recruit-go/internal/api/routes"
	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/internal/config"
	"github.com/linskybing/recruit-go/internal/config/db"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/linskybing/recruit-go/internal/repository"
	"github.com/linskybing/recruit-go/pkg/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	publisher, closePublisher := events.NewPublisher(ctx, config.RedisURL, config.EventChannelPrefix)
	defer closePublisher()

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, publisher, config.SystemUserID)
	if err := services.Status.SeedCatalog(ctx); err != nil {
		log.Fatalf("Failed to seed status catalog: %v", err)
	}

	var blobs handlers.BlobStore
	store, err := storage.NewStore(ctx, storage.Options{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		Bucket:    config.MinioBucket,
		UseSSL:    config.MinioUseSSL,
	})
	if err != nil {
		log.Printf("Warning: document uploads disabled: %v", err)
	} else {
		blobs = store
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(config.CorsOrigins...))
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, handlers.New(services, blobs), repos)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
