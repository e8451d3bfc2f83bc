package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"starwarsblog/internal/config"
	"starwarsblog/internal/database"
	"starwarsblog/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AutoMigrate {
		log.Println("Running AutoMigrate...")
		if err := database.Migrate(db); err != nil {
			log.Fatal("AutoMigrate failed:", err)
		}
	}

	r := server.NewRouter(db, cfg)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
