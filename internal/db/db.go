package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/config"
	"github.com/markeugine/atelier-backend/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.UserInformation{},
		&models.Attire{},
		&models.Appointment{},
		&models.FollowUpAppointment{},
		&models.Design{},
		&models.Unavailability{},
		&models.Notification{},
		&models.Message{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
