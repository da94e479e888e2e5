package services

import (
	"log"
	"time"

	"github.com/VivekWar/ABRC/models"
	"github.com/VivekWar/ABRC/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartTravelCron sweeps departed travels every five minutes so the listing
// never serves trips that already left. Runs once at startup too.
func StartTravelCron(db *gorm.DB) {
	sweepDepartedTravels(db)

	c := cron.New()
	c.AddFunc("*/5 * * * *", func() {
		sweepDepartedTravels(db)
	})
	c.Start()
}

func sweepDepartedTravels(db *gorm.DB) {
	res := db.Model(&models.Travel{}).
		Where("is_active = ? AND departure_time <= ?", true, time.Now()).
		UpdateColumn("is_active", false)
	if res.Error != nil {
		utils.LogError(res.Error, "travel sweep")
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Travel sweep: closed %d departed travels", res.RowsAffected)
	}
}
