package models

import "gorm.io/gorm"

type RideRequestStatus string

const (
	RideRequestPending  RideRequestStatus = "pending"
	RideRequestAccepted RideRequestStatus = "accepted"
	RideRequestDeclined RideRequestStatus = "declined"
)

// RideRequest records a user's intent to join another user's travel.
// A user may hold at most one request per travel (unique travel_id+user_id).
type RideRequest struct {
	gorm.Model
	Reference string            `json:"reference" gorm:"uniqueIndex;not null"`
	TravelID  uint              `json:"travelId" gorm:"not null;uniqueIndex:idx_ride_requests_travel_user"`
	UserID    uint              `json:"userId" gorm:"not null;uniqueIndex:idx_ride_requests_travel_user"`
	Travel    *Travel           `json:"travel,omitempty"`
	User      *User             `json:"user,omitempty"`
	Status    RideRequestStatus `json:"status" gorm:"not null;default:'pending'"`
}
