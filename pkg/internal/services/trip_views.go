package services

import (
	"sync"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	tripViewQueue   []models.TripView
	tripViewQueueMu sync.Mutex
)

// AddTripView records a view event for later flushing. Travelers looking at
// their own trip are not counted; anonymous viewers are. The enqueue never
// blocks the surrounding read.
func AddTripView(trip models.Trip, viewer *models.Account) {
	if viewer != nil && viewer.ID == trip.TravelerID {
		return
	}

	view := models.TripView{TripID: trip.ID}
	if viewer != nil {
		view.AccountID = &viewer.ID
	}

	tripViewQueueMu.Lock()
	tripViewQueue = append(tripViewQueue, view)
	tripViewQueueMu.Unlock()
}

// FlushTripViews persists the queued view events and bumps the per-trip
// counters. Runs on a timer; the counter is at-least-once and not tied to the
// reads that produced the events.
func FlushTripViews() {
	tripViewQueueMu.Lock()
	if len(tripViewQueue) == 0 {
		tripViewQueueMu.Unlock()
		return
	}
	workingQueue := tripViewQueue
	tripViewQueue = nil
	tripViewQueueMu.Unlock()

	if err := database.C.CreateInBatches(workingQueue, 1000).Error; err != nil {
		log.Warn().Err(err).Msg("An error occurred when saving trip views...")
	}

	delta := make(map[uint]int64)
	for _, item := range workingQueue {
		delta[item.TripID]++
	}
	for k, v := range delta {
		if err := database.C.Model(&models.Trip{}).Where("id = ?", k).
			Update("view_count", gorm.Expr("view_count + ?", v)).Error; err != nil {
			log.Warn().Err(err).Uint("trip", k).Msg("An error occurred when updating trip view count...")
		}
	}
}
