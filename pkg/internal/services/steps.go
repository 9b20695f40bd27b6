package services

import (
	"errors"
	"fmt"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

func NewStep(user models.Account, tripID uint, step models.Step) (models.Step, error) {
	var trip models.Trip
	if err := database.C.Where("id = ?", tripID).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return step, ErrTripNotFound
		}
		return step, fmt.Errorf("unable to get trip: %v", err)
	}

	step.TripID = trip.ID
	step.TravelerID = user.ID
	step.Language = DetectLanguage(lo.FromPtr(step.Story))

	if err := database.C.Save(&step).Error; err != nil {
		return step, fmt.Errorf("unable to save step: %v", err)
	}

	return step, nil
}

type StepPatch struct {
	Name      *string
	Country   *string
	Coord     []float64
	ArrivedAt *int64
	Story     *string
	PhotoURLs []string
}

func EditStep(user models.Account, id uint, patch StepPatch) (models.Step, error) {
	var step models.Step
	if err := database.C.Where("id = ?", id).First(&step).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return step, ErrStepNotFound
		}
		return step, fmt.Errorf("unable to get step: %v", err)
	}
	if step.TravelerID != user.ID {
		return step, ErrNotAuthorized
	}

	if patch.Name != nil {
		step.Name = *patch.Name
	}
	if patch.Country != nil {
		step.Country = *patch.Country
	}
	if patch.Coord != nil {
		step.Coord = patch.Coord
	}
	if patch.ArrivedAt != nil {
		step.ArrivedAt = *patch.ArrivedAt
	}
	if patch.Story != nil {
		step.Story = patch.Story
		step.Language = DetectLanguage(*patch.Story)
	}
	if patch.PhotoURLs != nil {
		step.PhotoURLs = patch.PhotoURLs
	}

	if err := database.C.Save(&step).Error; err != nil {
		return step, fmt.Errorf("unable to save step: %v", err)
	}

	return step, nil
}

func DeleteStep(user models.Account, id uint) error {
	var step models.Step
	if err := database.C.Where("id = ?", id).First(&step).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStepNotFound
		}
		return fmt.Errorf("unable to get step: %v", err)
	}
	if step.TravelerID != user.ID {
		return ErrNotAuthorized
	}

	if err := database.C.Delete(&step).Error; err != nil {
		return fmt.Errorf("unable to delete step: %v", err)
	}

	return nil
}

// ToggleStepLike flips the like of one account on one step and reports the
// state it ended up in.
func ToggleStepLike(user models.Account, stepID uint) (bool, error) {
	var like models.Like
	if err := database.C.
		Where("account_id = ? AND step_id = ?", user.ID, stepID).
		First(&like).Error; err == nil {
		if err := database.C.Delete(&like).Error; err != nil {
			return true, fmt.Errorf("unable to delete like: %v", err)
		}
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("unable to check like: %v", err)
	}

	var step models.Step
	if err := database.C.Where("id = ?", stepID).First(&step).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrStepNotFound
		}
		return false, fmt.Errorf("unable to get step: %v", err)
	}

	like = models.Like{AccountID: user.ID, StepID: step.ID}
	if err := database.C.Create(&like).Error; err != nil {
		return false, fmt.Errorf("unable to save like: %v", err)
	}

	return true, nil
}

func CountStepLikes(stepID uint) int64 {
	var count int64
	database.C.Model(&models.Like{}).Where("step_id = ?", stepID).Count(&count)
	return count
}
