package services

import (
	"time"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup purges rows that were soft deleted more than thirty
// days ago. Runs on a timer.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-30 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range []any{
		&models.Account{},
		&models.Trip{},
		&models.Step{},
		&models.Comment{},
	} {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at <= ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Warn().Err(tx.Error).Msg("An error occurred when cleaning up database...")
			continue
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Done cleaning up database!")
}
