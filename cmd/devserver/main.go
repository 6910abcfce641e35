package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"golang-shop-client/configs"
	"golang-shop-client/internal/devserver"
)

func main() {
	config := configs.LoadConfig()

	gin.SetMode(config.DevServer.Mode)

	server := devserver.New(config.DevServer.JWTSecret, config.DevServer.ExpiryHours)

	log.Printf("Devserver starting on port %s", config.DevServer.Port)
	log.Fatal(server.Run(config.DevServer.Port))
}
