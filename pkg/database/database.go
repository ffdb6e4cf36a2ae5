package database

import (
	"log"

	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the embedded sqlite store and creates the schema if absent.
// The gorm connection pool is shared process-wide; writes rely on sqlite's
// own file-level locking.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.QuizHistory{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
