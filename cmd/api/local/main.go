//go:build !lambda
// +build !lambda

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/swiftline/swiftline-api/apps/api/server"
	"github.com/swiftline/swiftline-api/libs/go/logger"
)

func main() {
	r := gin.Default()

	// InitializeHandlers loads .env, validates STAGE and sets up the logger
	server.InitializeHandlers()
	defer logger.Sync()

	server.InitializeRoutes(r)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on :%s", port)
	if err := r.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
