package services

import (
	"sort"
	"sync"
	"time"

	"github.com/VivekWar/ABRC/models"
)

// MemoryStore keeps everything in process memory behind one mutex. It backs
// tests and DB-less local runs; it is not a system of record and the same
// capacity contract as the SQL store holds (ClaimSeat is atomic).
type MemoryStore struct {
	mu           sync.Mutex
	travels      map[uint]*models.Travel
	rideRequests map[uint]*models.RideRequest
	users        map[uint]*models.User
	nextTravelID uint
	nextRideID   uint
	nextUserID   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		travels:      make(map[uint]*models.Travel),
		rideRequests: make(map[uint]*models.RideRequest),
		users:        make(map[uint]*models.User),
	}
}

func (s *MemoryStore) CreateTravel(t *models.Travel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTravelID++
	t.ID = s.nextTravelID
	t.CreatedAt = time.Now()
	cp := *t
	s.travels[t.ID] = &cp
	return nil
}

func (s *MemoryStore) ActiveTravels(now time.Time) ([]models.Travel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Travel
	for _, t := range s.travels {
		if !t.Listable(now) {
			continue
		}
		cp := *t
		if owner, ok := s.users[t.UserID]; ok {
			o := *owner
			cp.User = &o
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DepartureTime.Before(out[j].DepartureTime)
	})
	return out, nil
}

func (s *MemoryStore) TravelByID(id uint) (*models.Travel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.travels[id]
	if !ok {
		return nil, ErrTravelNotFound
	}
	cp := *t
	if owner, ok := s.users[t.UserID]; ok {
		o := *owner
		cp.User = &o
	}
	return &cp, nil
}

func (s *MemoryStore) SaveTravel(t *models.Travel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.travels[t.ID]; !ok {
		return ErrTravelNotFound
	}
	cp := *t
	cp.User = nil
	s.travels[t.ID] = &cp
	return nil
}

func (s *MemoryStore) ClaimSeat(travelID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.travels[travelID]
	if !ok || !t.IsActive || t.CurrentPassengers >= t.MaxPassengers {
		return false, nil
	}
	t.CurrentPassengers++
	return true, nil
}

func (s *MemoryStore) ReleaseSeat(travelID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.travels[travelID]; ok && t.CurrentPassengers > 1 {
		t.CurrentPassengers--
	}
	return nil
}

func (s *MemoryStore) CreateRideRequest(r *models.RideRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.rideRequests {
		if existing.TravelID == r.TravelID && existing.UserID == r.UserID {
			return ErrDuplicateRequest
		}
	}
	s.nextRideID++
	r.ID = s.nextRideID
	r.CreatedAt = time.Now()
	cp := *r
	s.rideRequests[r.ID] = &cp
	return nil
}

func (s *MemoryStore) HasRideRequest(travelID, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rideRequests {
		if r.TravelID == travelID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) UserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) UserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateUser
		}
	}
	s.nextUserID++
	u.ID = s.nextUserID
	u.CreatedAt = time.Now()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *MemoryStore) SaveUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return ErrUserNotFound
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

// AddUser registers a user directly, bypassing signup. Test helper.
func (s *MemoryStore) AddUser(u *models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		s.nextUserID++
		u.ID = s.nextUserID
	} else if u.ID > s.nextUserID {
		s.nextUserID = u.ID
	}
	cp := *u
	s.users[u.ID] = &cp
	return u
}
