package services

import (
	"errors"
	"strings"
	"time"

	"github.com/VivekWar/ABRC/models"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CreateTravel(t *models.Travel) error {
	return s.db.Create(t).Error
}

func (s *gormStore) ActiveTravels(now time.Time) ([]models.Travel, error) {
	var travels []models.Travel
	err := s.db.Preload("User").
		Where("is_active = ? AND departure_time > ?", true, now).
		Order("departure_time ASC").
		Find(&travels).Error
	return travels, err
}

func (s *gormStore) TravelByID(id uint) (*models.Travel, error) {
	var travel models.Travel
	if err := s.db.Preload("User").First(&travel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTravelNotFound
		}
		return nil, err
	}
	return &travel, nil
}

func (s *gormStore) SaveTravel(t *models.Travel) error {
	return s.db.Save(t).Error
}

// ClaimSeat runs the conditional increment as a single UPDATE so two
// concurrent claims can never push current_passengers past max_passengers.
func (s *gormStore) ClaimSeat(travelID uint) (bool, error) {
	res := s.db.Model(&models.Travel{}).
		Where("id = ? AND is_active = ? AND current_passengers < max_passengers", travelID, true).
		UpdateColumn("current_passengers", gorm.Expr("current_passengers + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) ReleaseSeat(travelID uint) error {
	return s.db.Model(&models.Travel{}).
		Where("id = ? AND current_passengers > 1", travelID).
		UpdateColumn("current_passengers", gorm.Expr("current_passengers - 1")).Error
}

func (s *gormStore) CreateRideRequest(r *models.RideRequest) error {
	if err := s.db.Create(r).Error; err != nil {
		if strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "23505") {
			return ErrDuplicateRequest
		}
		return err
	}
	return nil
}

func (s *gormStore) HasRideRequest(travelID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.RideRequest{}).
		Where("travel_id = ? AND user_id = ?", travelID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *gormStore) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		if strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "23505") {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (s *gormStore) SaveUser(u *models.User) error {
	return s.db.Save(u).Error
}
