// @title AI Study Buddy API
// @version 1.0
// @description Backend service for the AI Study Buddy mobile client.

// @host localhost:8000
// @BasePath /api

package main

import (
	"flag"
	"log"

	"study_buddy_backend/internal/app"
	"study_buddy_backend/internal/config"
	"study_buddy_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "create the database schema and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
