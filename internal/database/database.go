package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"todo-tasks/internal/config"
	"todo-tasks/internal/models"
)

var DB *gorm.DB

// Connect opens the PostgreSQL connection described by cfg. Every
// operation later checks its own session out of the pool, so nothing
// here is shared beyond the pool itself. GORM's query log is routed
// through the service logger.
func Connect(cfg *config.Config, log *logrus.Logger) error {
	gormLog := gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

// Migrate ensures the todo_tasks schema exists. AutoMigrate only adds
// what is missing, so running it against an already provisioned store
// changes nothing. It is called explicitly from main, once, before the
// server accepts requests.
func Migrate() error {
	if err := DB.AutoMigrate(&models.Task{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
