package services

import (
	"errors"
	"fmt"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"gorm.io/gorm"
)

func NewComment(user models.Account, stepID uint, text string) (models.Comment, error) {
	var comment models.Comment

	var step models.Step
	if err := database.C.Where("id = ?", stepID).First(&step).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return comment, ErrStepNotFound
		}
		return comment, fmt.Errorf("unable to get step: %v", err)
	}

	comment = models.Comment{
		Text:      text,
		Language:  DetectLanguage(text),
		CreatorID: user.ID,
		StepID:    step.ID,
	}

	if err := database.C.Save(&comment).Error; err != nil {
		return comment, fmt.Errorf("unable to save comment: %v", err)
	}

	return comment, nil
}

// ListStepComments pages through a step's comments, newest first.
func ListStepComments(stepID uint, cursor *int64) (Page[models.Comment], error) {
	tx := database.C.Model(&models.Comment{}).
		Where("step_id = ?", stepID).
		Preload("Creator")

	return PaginateKeyset(tx, "comments.id", cursor, DefaultPageSize, func(item models.Comment) int64 {
		return int64(item.ID)
	})
}

func DeleteComment(user models.Account, id uint) error {
	var comment models.Comment
	if err := database.C.Where("id = ?", id).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("unable to get comment: %v", err)
	}
	if comment.CreatorID != user.ID {
		return ErrNotAuthorized
	}

	if err := database.C.Delete(&comment).Error; err != nil {
		return fmt.Errorf("unable to delete comment: %v", err)
	}

	return nil
}
