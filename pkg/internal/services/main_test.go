package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the shared connection at a fresh in-memory database.
// The pool is pinned to one connection so every query sees the same store.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	raw, err := db.DB()
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))
	database.C = db

	viper.Set("security.jwt_secret", "unit-test-secret")

	tripViewQueueMu.Lock()
	tripViewQueue = nil
	tripViewQueueMu.Unlock()
}

// seedBareAccount inserts an account row directly, skipping the password
// hashing of the registration path. Use it everywhere credentials are not
// under test.
func seedBareAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account := models.Account{
		Slug:      strings.ToLower(name),
		Username:  name,
		Email:     fmt.Sprintf("%s@example.com", strings.ToLower(name)),
		Password:  "not-a-real-hash",
		FirstName: name,
		LastName:  "Tester",
	}
	require.NoError(t, database.C.Create(&account).Error)

	return account
}

func seedTrip(t *testing.T, traveler models.Account, name string, availability models.TripAvailability) models.Trip {
	t.Helper()

	trip, err := NewTrip(traveler, models.Trip{
		Name:         name,
		StartUnix:    1700000000,
		Availability: availability,
	})
	require.NoError(t, err)

	return trip
}

func seedStep(t *testing.T, traveler models.Account, tripID uint, name string) models.Step {
	t.Helper()

	step, err := NewStep(traveler, tripID, models.Step{
		Name:      name,
		Country:   "France",
		Coord:     []float64{48.8566, 2.3522},
		ArrivedAt: 1700000000,
	})
	require.NoError(t, err)

	return step
}
