package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TransportModes is the fixed set of modes a travel may prefer.
var TransportModes = []string{"Cab", "Auto", "Bus", "Bike"}

const (
	MinPassengers = 1
	MaxPassengers = 8
)

// Travel is a posted trip plan. CurrentPassengers starts at 1 (the owner)
// and may never exceed MaxPassengers.
type Travel struct {
	gorm.Model
	UserID            uint           `json:"userId" gorm:"not null;index"`
	User              *User          `json:"user,omitempty"`
	Destination       string         `json:"destination" gorm:"not null"`
	DepartureTime     time.Time      `json:"departureTime" gorm:"not null;index"`
	MaxPassengers     int            `json:"maxPassengers" gorm:"not null"`
	CurrentPassengers int            `json:"currentPassengers" gorm:"not null;default:1"`
	PreferredMode     datatypes.JSON `json:"preferredMode" gorm:"not null"`
	IsActive          bool           `json:"isActive" gorm:"not null;default:true"`
}

// Listable reports whether the travel should show up in the public listing.
func (t *Travel) Listable(now time.Time) bool {
	return t.IsActive && t.DepartureTime.After(now)
}

func ValidTransportMode(mode string) bool {
	for _, m := range TransportModes {
		if m == mode {
			return true
		}
	}
	return false
}
