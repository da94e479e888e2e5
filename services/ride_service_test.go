package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/VivekWar/ABRC/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type sentMail struct {
	to            string
	requesterName string
	destination   string
}

// recorderMailer captures outbound mail instead of dialing SMTP.
type recorderMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recorderMailer) SendRideRequestMail(to, ownerName, requesterName, destination string, departure time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, requesterName: requesterName, destination: destination})
	return nil
}

func (m *recorderMailer) SendWelcomeMail(to, name string) error { return nil }

func (m *recorderMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *recorderMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

func seedTravel(t *testing.T, store *MemoryStore, ownerID uint, maxPassengers int) *models.Travel {
	t.Helper()
	modes, err := json.Marshal([]string{"Cab"})
	require.NoError(t, err)
	travel := &models.Travel{
		UserID:            ownerID,
		Destination:       "Airport",
		DepartureTime:     time.Now().Add(24 * time.Hour),
		MaxPassengers:     maxPassengers,
		CurrentPassengers: 1,
		PreferredMode:     datatypes.JSON(modes),
		IsActive:          true,
	}
	require.NoError(t, store.CreateTravel(travel))
	return travel
}

func TestFileRideRequestTravelNotFound(t *testing.T) {
	svc := NewRideService(NewMemoryStore(), &recorderMailer{})
	_, err := svc.FileRideRequest(2, 99)
	assert.ErrorIs(t, err, ErrTravelNotFound)
}

func TestFileRideRequestSelfJoin(t *testing.T) {
	store := NewMemoryStore()
	store.AddUser(&models.User{Name: "Alice", Email: "alice@college.edu"})
	travel := seedTravel(t, store, 1, 4)

	svc := NewRideService(store, &recorderMailer{})
	_, err := svc.FileRideRequest(1, travel.ID)
	assert.ErrorIs(t, err, ErrSelfJoin)
}

func TestFileRideRequestDuplicate(t *testing.T) {
	store := NewMemoryStore()
	store.AddUser(&models.User{Name: "Alice", Email: "alice@college.edu"})
	store.AddUser(&models.User{Name: "Bob", Email: "bob@college.edu"})
	travel := seedTravel(t, store, 1, 4)

	svc := NewRideService(store, &recorderMailer{})
	_, err := svc.FileRideRequest(2, travel.ID)
	require.NoError(t, err)

	_, err = svc.FileRideRequest(2, travel.ID)
	assert.ErrorIs(t, err, ErrDuplicateRequest)

	// the duplicate must not have taken a second seat
	stored, err := store.TravelByID(travel.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentPassengers)
}

func TestFileRideRequestCapacity(t *testing.T) {
	store := NewMemoryStore()
	store.AddUser(&models.User{Name: "Alice", Email: "alice@college.edu"})
	store.AddUser(&models.User{Name: "Bob", Email: "bob@college.edu"})
	travel := seedTravel(t, store, 1, 4)
	travel.CurrentPassengers = 4
	require.NoError(t, store.SaveTravel(travel))

	mailer := &recorderMailer{}
	svc := NewRideService(store, mailer)
	_, err := svc.FileRideRequest(2, travel.ID)
	assert.ErrorIs(t, err, ErrTravelFull)

	// a rejected request must never notify the owner
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, mailer.count())
}

func TestFileRideRequestFullTravelAnyCaller(t *testing.T) {
	store := NewMemoryStore()
	store.AddUser(&models.User{Name: "Alice", Email: "alice@college.edu"})
	store.AddUser(&models.User{Name: "Bob", Email: "bob@college.edu"})
	travel := seedTravel(t, store, 1, 2)

	svc := NewRideService(store, &recorderMailer{})
	_, err := svc.FileRideRequest(2, travel.ID)
	require.NoError(t, err)

	// once full, the owner and a repeat requester see the same rejection
	_, err = svc.FileRideRequest(1, travel.ID)
	assert.ErrorIs(t, err, ErrTravelFull)
	_, err = svc.FileRideRequest(2, travel.ID)
	assert.ErrorIs(t, err, ErrTravelFull)
}

func TestFileRideRequestInactiveTravel(t *testing.T) {
	store := NewMemoryStore()
	store.AddUser(&models.User{Name: "Alice", Email: "alice@college.edu"})
	store.AddUser(&models.User{Name: "Bob", Email: "bob@college.edu"})
	travel := seedTravel(t, store, 1, 4)
	travel.IsActive = false
	require.NoError(t, store.SaveTravel(travel))

	svc := NewRideService(store, &recorderMailer{})
	_, err := svc.FileRideRequest(2, travel.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFileRideRequestSuccessNotifiesOwner(t *testing.T) {
	store := NewMemoryStore()
	store.AddUser(&models.User{Name: "Alice", Email: "alice@college.edu"})
	store.AddUser(&models.User{Name: "Bob", Email: "bob@college.edu"})
	travel := seedTravel(t, store, 1, 4)

	mailer := &recorderMailer{}
	svc := NewRideService(store, mailer)

	request, err := svc.FileRideRequest(2, travel.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, request.Reference)
	assert.Equal(t, models.RideRequestPending, request.Status)
	assert.Equal(t, travel.ID, request.TravelID)
	assert.Equal(t, uint(2), request.UserID)

	stored, err := store.TravelByID(travel.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentPassengers)

	require.Eventually(t, func() bool { return mailer.count() == 1 },
		time.Second, 5*time.Millisecond)
	mail := mailer.last()
	assert.Equal(t, "alice@college.edu", mail.to)
	assert.Equal(t, "Bob", mail.requesterName)
	assert.Equal(t, "Airport", mail.destination)
}

// With k free seats, at most k of N concurrent requests may succeed,
// regardless of interleaving.
func TestFileRideRequestConcurrentCapacity(t *testing.T) {
	store := NewMemoryStore()
	store.AddUser(&models.User{Name: "Alice", Email: "alice@college.edu"})
	travel := seedTravel(t, store, 1, 4) // k = 3 free seats

	const callers = 20
	for i := 0; i < callers; i++ {
		store.AddUser(&models.User{
			Name:  fmt.Sprintf("User%d", i+2),
			Email: fmt.Sprintf("user%d@college.edu", i+2),
		})
	}

	svc := NewRideService(store, &recorderMailer{})

	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := svc.FileRideRequest(userID, travel.ID)
			results <- err
		}(uint(i + 2))
	}
	wg.Wait()
	close(results)

	successes, full := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrTravelFull):
			full++
		}
	}
	assert.Equal(t, 3, successes)
	assert.Equal(t, callers-3, full)

	stored, err := store.TravelByID(travel.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.MaxPassengers, stored.CurrentPassengers)
}
