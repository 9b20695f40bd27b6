package services

import (
	"testing"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"github.com/stretchr/testify/require"
)

func tripViewCount(t *testing.T, tripID uint) int64 {
	t.Helper()

	var trip models.Trip
	require.NoError(t, database.C.First(&trip, tripID).Error)
	return trip.ViewCount
}

func TestViewEventsSuppressOwner(t *testing.T) {
	setupTestDB(t)

	owner := seedBareAccount(t, "Owner")
	visitor := seedBareAccount(t, "Visitor")
	trip := seedTrip(t, owner, "Harbor towns", models.TripAvailabilityPublic)

	AddTripView(trip, &owner)
	FlushTripViews()
	require.EqualValues(t, 0, tripViewCount(t, trip.ID))

	AddTripView(trip, &visitor)
	AddTripView(trip, nil)
	FlushTripViews()
	require.EqualValues(t, 2, tripViewCount(t, trip.ID))

	var events []models.TripView
	require.NoError(t, database.C.Where("trip_id = ?", trip.ID).Order("id ASC").Find(&events).Error)
	require.Len(t, events, 2)
	require.NotNil(t, events[0].AccountID)
	require.Equal(t, visitor.ID, *events[0].AccountID)
	require.Nil(t, events[1].AccountID)

	// flushing an empty queue moves nothing
	FlushTripViews()
	require.EqualValues(t, 2, tripViewCount(t, trip.ID))
}

func TestFlushAggregatesPerTrip(t *testing.T) {
	setupTestDB(t)

	owner := seedBareAccount(t, "Owner")
	visitor := seedBareAccount(t, "Visitor")
	alps := seedTrip(t, owner, "Crossing the Alps", models.TripAvailabilityPublic)
	harbor := seedTrip(t, owner, "Harbor towns", models.TripAvailabilityPublic)

	AddTripView(alps, &visitor)
	AddTripView(alps, nil)
	AddTripView(alps, nil)
	AddTripView(harbor, &visitor)
	FlushTripViews()

	require.EqualValues(t, 3, tripViewCount(t, alps.ID))
	require.EqualValues(t, 1, tripViewCount(t, harbor.ID))
}

func TestRepeatViewsAccumulate(t *testing.T) {
	setupTestDB(t)

	owner := seedBareAccount(t, "Owner")
	visitor := seedBareAccount(t, "Visitor")
	trip := seedTrip(t, owner, "Harbor towns", models.TripAvailabilityPublic)

	for i := 0; i < 3; i++ {
		_, err := GetTrip(&visitor, trip.ID)
		require.NoError(t, err)
	}
	_, err := GetTrip(&owner, trip.ID)
	require.NoError(t, err)
	FlushTripViews()

	require.EqualValues(t, 3, tripViewCount(t, trip.ID))
}
