// File: /database/database.go
package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportsbuddy-api/models"
)

func Initialize(databaseURL string, logLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(gormLogLevel(logLevel)),
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func Migrate(db *gorm.DB, log *slog.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.EventParticipant{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	addCustomIndexes(db, log)
	addDatabaseConstraints(db, log)
	return nil
}

// Index and constraint failures are logged, not fatal: MySQL has no
// IF NOT EXISTS for either, so reruns report duplicates.
func addCustomIndexes(db *gorm.DB, log *slog.Logger) {
	statements := map[string]string{
		"idx_events_status_time":      "CREATE INDEX idx_events_status_time ON events(status, event_time)",
		"idx_events_creator_created":  "CREATE INDEX idx_events_creator_created ON events(creator_id, created_at DESC)",
		"idx_event_participants_user": "CREATE INDEX idx_event_participants_user_created ON event_participants(user_id, created_at DESC)",
	}
	for name, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			log.Warn("could not create index", "index", name, "error", err)
		}
	}
}

func addDatabaseConstraints(db *gorm.DB, log *slog.Logger) {
	if err := db.Exec("ALTER TABLE events ADD CONSTRAINT chk_events_status CHECK (status IN ('upcoming', 'completed'))").Error; err != nil {
		log.Warn("could not add constraint", "constraint", "chk_events_status", "error", err)
	}
	if err := db.Exec("ALTER TABLE users ADD CONSTRAINT chk_users_role CHECK (role IN ('user', 'admin'))").Error; err != nil {
		log.Warn("could not add constraint", "constraint", "chk_users_role", "error", err)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	}
	return logger.Warn
}
