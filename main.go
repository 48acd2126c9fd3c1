package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load ./.env if present before reading config. Existing env wins.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	jwtSecret = []byte(cfg.JWTSecret)
	tokenTTL = cfg.TokenTTL

	// Support a lightweight migrate command: `./bukukas migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB(cfg)
		fmt.Println("migration and seeding completed")
		return
	}

	initDB(cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	setupRoutes(r)

	r.Run(fmt.Sprintf(":%d", cfg.Port))
}
