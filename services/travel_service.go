package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/VivekWar/ABRC/models"

	"gorm.io/datatypes"
)

// TravelService owns the travel lifecycle: posting, listing, closing.
type TravelService struct {
	store Store
	now   func() time.Time
}

func NewTravelService(store Store) *TravelService {
	return &TravelService{store: store, now: time.Now}
}

type CreateTravelInput struct {
	Destination   string
	DepartureTime time.Time
	MaxPassengers int
	PreferredMode []string
}

// CreateTravel validates and persists a new travel. The owner always holds
// the first seat, so current_passengers starts at 1.
func (s *TravelService) CreateTravel(ownerID uint, in CreateTravelInput) (*models.Travel, error) {
	destination := strings.TrimSpace(in.Destination)
	if destination == "" || in.DepartureTime.IsZero() || len(in.PreferredMode) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	for _, mode := range in.PreferredMode {
		if !models.ValidTransportMode(mode) {
			return nil, fmt.Errorf("%w: unknown transport mode %q", ErrValidation, mode)
		}
	}
	if !in.DepartureTime.After(s.now()) {
		return nil, fmt.Errorf("%w: departure time must be in the future", ErrValidation)
	}
	if in.MaxPassengers < models.MinPassengers || in.MaxPassengers > models.MaxPassengers {
		return nil, fmt.Errorf("%w: maxPassengers must be between %d and %d",
			ErrValidation, models.MinPassengers, models.MaxPassengers)
	}

	modes, err := json.Marshal(in.PreferredMode)
	if err != nil {
		return nil, err
	}
	travel := &models.Travel{
		UserID:            ownerID,
		Destination:       destination,
		DepartureTime:     in.DepartureTime,
		MaxPassengers:     in.MaxPassengers,
		CurrentPassengers: 1,
		PreferredMode:     datatypes.JSON(modes),
		IsActive:          true,
	}
	if err := s.store.CreateTravel(travel); err != nil {
		return nil, err
	}
	return travel, nil
}

// ListActiveTravels returns travels that are active and still in the future,
// earliest departure first. Recomputed against the clock on every call.
func (s *TravelService) ListActiveTravels() ([]models.Travel, error) {
	return s.store.ActiveTravels(s.now())
}

// UpdateTravelStatus flips is_active. Ownership is re-derived from the
// authenticated requester, never from the payload.
func (s *TravelService) UpdateTravelStatus(requesterID, travelID uint, isActive bool) (*models.Travel, error) {
	travel, err := s.store.TravelByID(travelID)
	if err != nil {
		return nil, err
	}
	if travel.UserID != requesterID {
		return nil, ErrNotOwner
	}
	travel.IsActive = isActive
	if err := s.store.SaveTravel(travel); err != nil {
		return nil, err
	}
	return travel, nil
}

// CancelTravel closes a travel under the same ownership contract as update.
func (s *TravelService) CancelTravel(requesterID, travelID uint) error {
	_, err := s.UpdateTravelStatus(requesterID, travelID, false)
	return err
}
