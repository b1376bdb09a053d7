package main

import (
	"log"

	"errorswag/internal/config"
	"errorswag/internal/db"
	"errorswag/internal/router"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg := config.Load()

	// Initialize Database
	database := db.Init(cfg)

	// Initialize Gin
	r := gin.Default()

	// Sessions back the OAuth state round-trip only; API auth is stateless.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("errorswag_session", store))

	router.RegisterRoutes(r, database, cfg)

	log.Printf("ErrorSwag server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
