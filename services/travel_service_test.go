package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/VivekWar/ABRC/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTravelServiceAt(now time.Time) (*TravelService, *MemoryStore) {
	store := NewMemoryStore()
	svc := NewTravelService(store)
	svc.now = func() time.Time { return now }
	return svc, store
}

func validInput(departure time.Time) CreateTravelInput {
	return CreateTravelInput{
		Destination:   "Airport",
		DepartureTime: departure,
		MaxPassengers: 4,
		PreferredMode: []string{"Cab"},
	}
}

func TestCreateTravelDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTravelServiceAt(now)

	travel, err := svc.CreateTravel(1, validInput(now.Add(24*time.Hour)))
	require.NoError(t, err)

	assert.Equal(t, uint(1), travel.UserID)
	assert.Equal(t, 1, travel.CurrentPassengers)
	assert.True(t, travel.IsActive)

	var modes []string
	require.NoError(t, json.Unmarshal(travel.PreferredMode, &modes))
	assert.Equal(t, []string{"Cab"}, modes)
}

func TestCreateTravelRejectsMissingFields(t *testing.T) {
	now := time.Now()
	svc, _ := newTravelServiceAt(now)

	cases := map[string]CreateTravelInput{
		"no destination": {DepartureTime: now.Add(time.Hour), MaxPassengers: 2, PreferredMode: []string{"Bus"}},
		"no departure":   {Destination: "Airport", MaxPassengers: 2, PreferredMode: []string{"Bus"}},
		"no modes":       {Destination: "Airport", DepartureTime: now.Add(time.Hour), MaxPassengers: 2},
		"blank dest":     {Destination: "   ", DepartureTime: now.Add(time.Hour), MaxPassengers: 2, PreferredMode: []string{"Bus"}},
	}
	for name, in := range cases {
		_, err := svc.CreateTravel(1, in)
		assert.ErrorIs(t, err, ErrValidation, name)
	}
}

func TestCreateTravelRejectsUnknownMode(t *testing.T) {
	now := time.Now()
	svc, _ := newTravelServiceAt(now)

	in := validInput(now.Add(time.Hour))
	in.PreferredMode = []string{"Cab", "Helicopter"}
	_, err := svc.CreateTravel(1, in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateTravelRequiresFutureDeparture(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTravelServiceAt(now)

	_, err := svc.CreateTravel(1, validInput(now.Add(-24*time.Hour)))
	assert.ErrorIs(t, err, ErrValidation)

	// departure exactly now is not "strictly in the future"
	_, err = svc.CreateTravel(1, validInput(now))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateTravel(1, validInput(now.Add(time.Second)))
	assert.NoError(t, err)
}

func TestCreateTravelPassengerBounds(t *testing.T) {
	now := time.Now()
	svc, _ := newTravelServiceAt(now)

	for _, bad := range []int{0, 9, -1} {
		in := validInput(now.Add(time.Hour))
		in.MaxPassengers = bad
		_, err := svc.CreateTravel(1, in)
		assert.ErrorIs(t, err, ErrValidation, "maxPassengers=%d", bad)
	}
	for _, ok := range []int{1, 8} {
		in := validInput(now.Add(time.Hour))
		in.MaxPassengers = ok
		_, err := svc.CreateTravel(1, in)
		assert.NoError(t, err, "maxPassengers=%d", ok)
	}
}

func TestListActiveTravelsFiltersAndOrders(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, store := newTravelServiceAt(now)
	store.AddUser(&models.User{Name: "Alice", Email: "alice@college.edu"})

	later, err := svc.CreateTravel(1, validInput(now.Add(48*time.Hour)))
	require.NoError(t, err)
	sooner, err := svc.CreateTravel(1, validInput(now.Add(2*time.Hour)))
	require.NoError(t, err)

	closed, err := svc.CreateTravel(1, validInput(now.Add(3*time.Hour)))
	require.NoError(t, err)
	_, err = svc.UpdateTravelStatus(1, closed.ID, false)
	require.NoError(t, err)

	// departed travel: created in the future, then the clock moves past it
	departed, err := svc.CreateTravel(1, validInput(now.Add(time.Minute)))
	require.NoError(t, err)
	svc.now = func() time.Time { return now.Add(30 * time.Minute) }

	travels, err := svc.ListActiveTravels()
	require.NoError(t, err)

	require.Len(t, travels, 2)
	assert.Equal(t, sooner.ID, travels[0].ID, "earliest departure first")
	assert.Equal(t, later.ID, travels[1].ID)
	for _, tr := range travels {
		assert.NotEqual(t, closed.ID, tr.ID)
		assert.NotEqual(t, departed.ID, tr.ID)
		require.NotNil(t, tr.User, "owner summary loaded")
		assert.Equal(t, "Alice", tr.User.Name)
	}
}

func TestUpdateTravelStatusEnforcesOwnership(t *testing.T) {
	now := time.Now()
	svc, _ := newTravelServiceAt(now)

	travel, err := svc.CreateTravel(1, validInput(now.Add(time.Hour)))
	require.NoError(t, err)

	_, err = svc.UpdateTravelStatus(2, travel.ID, false)
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := svc.UpdateTravelStatus(1, travel.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdateTravelStatusNotFound(t *testing.T) {
	svc, _ := newTravelServiceAt(time.Now())
	_, err := svc.UpdateTravelStatus(1, 42, false)
	assert.ErrorIs(t, err, ErrTravelNotFound)
}

func TestCancelTravel(t *testing.T) {
	now := time.Now()
	svc, store := newTravelServiceAt(now)

	travel, err := svc.CreateTravel(1, validInput(now.Add(time.Hour)))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.CancelTravel(2, travel.ID), ErrNotOwner)
	require.NoError(t, svc.CancelTravel(1, travel.ID))

	stored, err := store.TravelByID(travel.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}
