package services

import (
	"errors"
	"fmt"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

func NewTrip(user models.Account, trip models.Trip) (models.Trip, error) {
	trip.TravelerID = user.ID
	trip.Traveler = user

	if err := database.C.Save(&trip).Error; err != nil {
		return trip, fmt.Errorf("unable to save trip: %v", err)
	}

	return trip, nil
}

// GetTrip loads one trip with its steps in arrival order and applies the
// visibility admission rule. A foreign view also records a view event; the
// traveler looking at their own trip does not.
func GetTrip(viewer *models.Account, id uint) (models.Trip, error) {
	var trip models.Trip
	if err := database.C.Where("id = ?", id).
		Preload("Traveler").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("steps.arrived_at ASC")
		}).
		First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trip, ErrTripNotFound
		}
		return trip, fmt.Errorf("unable to get trip: %v", err)
	}

	permissions := TripPermissions(viewer, trip.Traveler.Slug)
	if !lo.Contains(permissions, trip.Availability) {
		return trip, ErrNotAuthorized
	}

	AddTripView(trip, viewer)

	return trip, nil
}

// ListTripsWithTraveler lists the trips of the account behind slug, narrowed
// to the tiers the viewer may see.
func ListTripsWithTraveler(viewer *models.Account, slug string) ([]models.Trip, error) {
	owner, err := GetAccountWithSlug(slug)
	if err != nil {
		return nil, err
	}

	var trips []models.Trip
	tx := database.C.Where("traveler_id = ?", owner.ID)
	tx = FilterTripWithPermissions(tx, viewer, owner.Slug)
	if err := tx.
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("steps.arrived_at ASC")
		}).
		Order("start_unix DESC").
		Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("unable to list trips: %v", err)
	}

	return trips, nil
}

// ListTripFeed lists recent trips across all travelers the viewer may see.
func ListTripFeed(viewer *models.Account, take int, offset int) ([]models.Trip, error) {
	if take <= 0 || take > 50 {
		take = DefaultPageSize
	}

	var trips []models.Trip
	tx := FilterTripWithViewerContext(database.C, viewer)
	if err := tx.
		Preload("Traveler").
		Order("created_at DESC").
		Offset(offset).
		Limit(take).
		Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("unable to list trip feed: %v", err)
	}

	return trips, nil
}

type TripPatch struct {
	Name         *string
	Summary      *string
	CoverURL     *string
	StartUnix    *int64
	EndUnix      *int64
	Availability *models.TripAvailability
}

func EditTrip(user models.Account, id uint, patch TripPatch) (models.Trip, error) {
	var trip models.Trip
	if err := database.C.Where("id = ?", id).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trip, ErrTripNotFound
		}
		return trip, fmt.Errorf("unable to get trip: %v", err)
	}
	if trip.TravelerID != user.ID {
		return trip, ErrNotAuthorized
	}

	if patch.Name != nil {
		trip.Name = *patch.Name
	}
	if patch.Summary != nil {
		trip.Summary = patch.Summary
	}
	if patch.CoverURL != nil {
		trip.CoverURL = patch.CoverURL
	}
	if patch.StartUnix != nil {
		trip.StartUnix = *patch.StartUnix
	}
	if patch.EndUnix != nil {
		trip.EndUnix = patch.EndUnix
	}
	if patch.Availability != nil {
		trip.Availability = *patch.Availability
	}

	if err := database.C.Save(&trip).Error; err != nil {
		return trip, fmt.Errorf("unable to save trip: %v", err)
	}

	return trip, nil
}

func DeleteTrip(user models.Account, id uint) error {
	var trip models.Trip
	if err := database.C.Where("id = ?", id).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTripNotFound
		}
		return fmt.Errorf("unable to get trip: %v", err)
	}
	if trip.TravelerID != user.ID {
		return ErrNotAuthorized
	}

	if err := database.C.Where("trip_id = ?", trip.ID).Delete(&models.Step{}).Error; err != nil {
		return fmt.Errorf("unable to delete trip steps: %v", err)
	}
	if err := database.C.Delete(&trip).Error; err != nil {
		return fmt.Errorf("unable to delete trip: %v", err)
	}

	return nil
}

type SearchResult struct {
	Accounts     []models.Account `json:"accounts"`
	AccountCount int64            `json:"account_count"`
	Trips        []models.Trip    `json:"trips"`
	TripCount    int64            `json:"trip_count"`
}

// Search probes traveler names and public trip names case-insensitively,
// three hits apiece plus the full match counts.
func Search(probe string) (SearchResult, error) {
	var result SearchResult
	probe = "%" + probe + "%"

	accountTx := database.C.Model(&models.Account{}).
		Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)", probe, probe)
	if err := accountTx.Session(&gorm.Session{}).Count(&result.AccountCount).Error; err != nil {
		return result, fmt.Errorf("unable to count accounts: %v", err)
	}
	if err := accountTx.Session(&gorm.Session{}).Limit(3).Find(&result.Accounts).Error; err != nil {
		return result, fmt.Errorf("unable to search accounts: %v", err)
	}

	tripTx := database.C.Model(&models.Trip{}).
		Where("LOWER(name) LIKE LOWER(?) AND availability = ?", probe, models.TripAvailabilityPublic)
	if err := tripTx.Session(&gorm.Session{}).Count(&result.TripCount).Error; err != nil {
		return result, fmt.Errorf("unable to count trips: %v", err)
	}
	if err := tripTx.Session(&gorm.Session{}).Limit(3).Preload("Traveler").Find(&result.Trips).Error; err != nil {
		return result, fmt.Errorf("unable to search trips: %v", err)
	}

	return result, nil
}
