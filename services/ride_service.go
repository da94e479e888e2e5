package services

import (
	"fmt"

	"github.com/VivekWar/ABRC/models"
	"github.com/VivekWar/ABRC/utils"

	"github.com/google/uuid"
)

// RideService records ride requests and notifies travel owners.
type RideService struct {
	store  Store
	mailer Mailer
}

func NewRideService(store Store, mailer Mailer) *RideService {
	return &RideService{store: store, mailer: mailer}
}

// FileRideRequest claims a seat on the travel and persists the request.
// The seat claim happens through the store's atomic conditional update, so
// with k free seats at most k concurrent callers succeed. Notification to
// the owner is fire-and-forget; a mail failure never rolls the request back.
func (s *RideService) FileRideRequest(requesterID, travelID uint) (*models.RideRequest, error) {
	travel, err := s.store.TravelByID(travelID)
	if err != nil {
		return nil, err
	}
	if !travel.IsActive {
		return nil, fmt.Errorf("%w: travel is no longer active", ErrValidation)
	}
	// a full travel turns every caller away, the owner included
	if travel.CurrentPassengers >= travel.MaxPassengers {
		return nil, ErrTravelFull
	}
	if travel.UserID == requesterID {
		return nil, ErrSelfJoin
	}
	if exists, err := s.store.HasRideRequest(travelID, requesterID); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicateRequest
	}

	claimed, err := s.store.ClaimSeat(travelID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrTravelFull
	}

	request := &models.RideRequest{
		Reference: uuid.NewString(),
		TravelID:  travelID,
		UserID:    requesterID,
		Status:    models.RideRequestPending,
	}
	if err := s.store.CreateRideRequest(request); err != nil {
		// the pre-check lost a race against another request from the same
		// user; give the seat back
		if releaseErr := s.store.ReleaseSeat(travelID); releaseErr != nil {
			utils.LogError(releaseErr, "release seat after failed ride request")
		}
		return nil, err
	}

	s.notifyOwner(travel, requesterID)
	return request, nil
}

func (s *RideService) notifyOwner(travel *models.Travel, requesterID uint) {
	if s.mailer == nil {
		return
	}
	requester, err := s.store.UserByID(requesterID)
	if err != nil {
		utils.LogError(err, "load requester for notification")
		return
	}
	owner := travel.User
	if owner == nil {
		if owner, err = s.store.UserByID(travel.UserID); err != nil {
			utils.LogError(err, "load owner for notification")
			return
		}
	}
	if rdb := utils.GetRedis(); rdb != nil {
		pairKey := fmt.Sprintf("%d_%d", travel.ID, requester.ID)
		senderKey := fmt.Sprintf("%d", requester.ID)
		if !utils.CanSendNotification(rdb, pairKey, senderKey) {
			return
		}
		utils.MarkNotificationSent(rdb, pairKey, senderKey)
	}

	go func() {
		err := s.mailer.SendRideRequestMail(
			owner.Email, owner.Name, requester.Name,
			travel.Destination, travel.DepartureTime,
		)
		if err != nil {
			utils.LogError(err, "ride request notification")
			utils.NotificationsFailed.Inc()
			return
		}
		utils.NotificationsSent.Inc()
	}()
}
