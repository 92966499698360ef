package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fadeapp/fadeapp-api/internal/config"
	"github.com/fadeapp/fadeapp-api/internal/models"
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
		&models.Barbershop{},
		&models.Barber{},
		&models.Client{},
		&models.Service{},
		&models.Schedule{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Last line of defense against a double booking racing past the
	// application-level conflict check: only one non-cancelled appointment
	// may exist per (barber, instant).
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uidx_appointments_active_slot
        ON appointments (barber_id, scheduled_at)
        WHERE status <> 'CANCELLED'
    `)

	return db
}
