package database

import (
	"github.com/VivekWar/ABRC/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Travel{}, &models.RideRequest{}); err != nil {
		return err
	}

	// partial index backing the active-travel listing
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_travels_active_departure
		ON travels (departure_time)
		WHERE is_active = true AND deleted_at IS NULL
	`).Error; err != nil {
		return err
	}

	// current_passengers may never leave [1, max_passengers]; the check
	// backs the atomic seat claim in the store
	if err := db.Exec(`
		DO $$ BEGIN
			ALTER TABLE travels ADD CONSTRAINT chk_travels_passenger_bounds
			CHECK (current_passengers >= 1 AND current_passengers <= max_passengers);
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$
	`).Error; err != nil {
		return err
	}

	return nil
}
