package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	config "github.com/CSCI-GA-2820-SP25-001/orders/configs"
	"github.com/CSCI-GA-2820-SP25-001/orders/internal/db"
	"github.com/CSCI-GA-2820-SP25-001/orders/internal/handlers"
	"github.com/CSCI-GA-2820-SP25-001/orders/internal/middlewares"
)

func main() {

	cfg := config.Load()

	database, err := db.Init(cfg)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}

	r := gin.Default()

	r.Use(middlewares.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.Register(r, database)

	log.Printf("Order service starting on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
