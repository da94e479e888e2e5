package services

import (
	"time"

	"github.com/VivekWar/ABRC/models"
)

// Store is the persistence boundary for travels and ride requests.
// Production runs on GORM over Postgres (NewStore); tests and single-node
// development can run on the in-memory implementation (NewMemoryStore).
type Store interface {
	CreateTravel(t *models.Travel) error
	// ActiveTravels returns travels that are active and depart after now,
	// earliest departure first, each with its owner loaded.
	ActiveTravels(now time.Time) ([]models.Travel, error)
	TravelByID(id uint) (*models.Travel, error)
	SaveTravel(t *models.Travel) error

	// ClaimSeat takes one seat iff the travel is active and still has room.
	// It reports false when no seat was taken. Implementations must make the
	// check-and-increment atomic; this is the only write path for
	// current_passengers.
	ClaimSeat(travelID uint) (bool, error)
	// ReleaseSeat undoes a claim that could not be completed.
	ReleaseSeat(travelID uint) error

	CreateRideRequest(r *models.RideRequest) error
	HasRideRequest(travelID, userID uint) (bool, error)

	UserByID(id uint) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	// CreateUser persists a new account; a taken email yields ErrDuplicateUser.
	CreateUser(u *models.User) error
	SaveUser(u *models.User) error
}
