package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"foodatlas/internal/config"
	"foodatlas/internal/handler"
	"foodatlas/internal/match"
	"foodatlas/internal/repository"
	"foodatlas/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("FoodAtlas Restaurant Finder")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Open the restaurant store
	repo, err := repository.NewSQLiteRepository(cfg.SQLite.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	if n, err := repo.Count(context.Background()); err == nil {
		log.Printf("✅ Connected to SQLite database (%d restaurants)", n)
	} else {
		log.Printf("✅ Connected to SQLite database")
	}

	// Geocoder
	geocoder := service.NewGeoapifyClient(&cfg.Geocoder)
	if cfg.Geocoder.Enabled {
		log.Printf("✅ Geocoder initialized")
		log.Printf("   - Bias point: %.6f, %.6f", cfg.Geocoder.BiasLat, cfg.Geocoder.BiasLon)
		log.Printf("   - Region suffix: %s", cfg.Geocoder.RegionSuffix)
	} else {
		log.Println("⚠️  Geocoder is disabled - searches will not be geofiltered")
		log.Println("   Set GEOAPIFY_API_KEY environment variable to enable geocoding")
	}

	// Matching pipeline and services
	pipeline := match.NewPipeline(repo, match.Options{
		RadiusKm:   cfg.Search.DefaultRadiusKm,
		TopN:       cfg.Search.DefaultTopN,
		StrictTags: cfg.Search.StrictTags,
	})
	recommendService := service.NewRecommendService(pipeline, geocoder, service.TextSummarizer{}, repo)

	log.Println("✅ Services initialized")

	// Handlers
	recommendHandler := handler.NewRecommendHandler(recommendService, cfg.Search.DefaultTopN, cfg.Search.MaxTopN)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "restaurant-finder",
			"version": Version,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/recommend", recommendHandler.Recommend)
		apiV1.GET("/restaurants/:id", recommendHandler.GetRestaurant)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
