package main

import (
	"beamtime-api/config"
	"beamtime-api/middleware"
	"beamtime-api/monitor"
	"beamtime-api/routes"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		config.Log.Info("No .env file found, using environment variables")
	}

	// Initialize database
	config.InitDB()

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.RecoveryWithWriter(config.LogWriter))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(monitor.Metrics())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware())

	routes.SetupRoutes(router)

	port := config.Getenv("SERVER_PORT", "8080")

	config.Log.WithField("port", port).Info("Server starting")
	if ginMode == "release" {
		config.Log.Info("Running in production mode")
	} else {
		config.Log.Info("Running in development mode")
	}

	if err := router.Run(":" + port); err != nil {
		config.Log.WithError(err).Fatal("Failed to start server")
	}
}
