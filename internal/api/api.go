package api

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/taskboard/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	boards_module "github.com/ethanbaker/taskboard/internal/api/modules/boards"
	health_module "github.com/ethanbaker/taskboard/internal/api/modules/health"
)

// NewEngine builds the gin engine with every module registered
func NewEngine(cfg *utils.Config) (*gin.Engine, error) {
	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	if err := engine.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)

	if err := boards_module.Init(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize boards module: %w", err)
	}
	boards_module.RegisterRoutes(baseGroup)

	return engine, nil
}

// listenAddr builds the listen address from API_PORT
func listenAddr(cfg *utils.Config) (string, error) {
	port := cfg.GetIntWithDefault("API_PORT", 8080)
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("API_PORT must be between 1 and 65535, got %d", port)
	}
	return ":" + strconv.Itoa(port), nil
}

// Start builds the engine and serves it on API_PORT
func Start(cfg *utils.Config) {
	addr, err := listenAddr(cfg)
	if err != nil {
		log.Fatal("[API-MAIN]: Invalid configuration: ", err)
	}

	engine, err := NewEngine(cfg)
	if err != nil {
		log.Fatal("[API-MAIN]: Failed to build server: ", err)
	}

	// Then after performing initial setup, start the server
	log.Printf("[API-MAIN]: Listening on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}
