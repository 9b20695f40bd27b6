package services

import (
	"fmt"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"gorm.io/gorm/clause"
)

// FollowAccount adds an edge from the acting user towards the target.
// Following twice is a no-op thanks to the pair uniqueness, and following
// yourself is rejected outright.
func FollowAccount(user models.Account, targetSlug string) (uint, error) {
	target, err := GetAccountWithSlug(targetSlug)
	if err != nil {
		return 0, err
	}
	if target.ID == user.ID {
		return 0, ErrSelfRelation
	}

	edge := models.FollowEdge{
		FollowerID:  user.ID,
		FollowingID: target.ID,
	}
	if err := database.C.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
		return 0, fmt.Errorf("unable to save follow edge: %v", err)
	}

	InvalidateViewerContext(user.ID)

	return target.ID, nil
}

// UnfollowAccount removes the edge towards the target if it exists.
// Unfollowing someone you never followed is a no-op success.
func UnfollowAccount(user models.Account, targetSlug string) (uint, error) {
	target, err := GetAccountWithSlug(targetSlug)
	if err != nil {
		return 0, err
	}

	if err := database.C.
		Where("follower_id = ? AND following_id = ?", user.ID, target.ID).
		Delete(&models.FollowEdge{}).Error; err != nil {
		return 0, fmt.Errorf("unable to delete follow edge: %v", err)
	}

	InvalidateViewerContext(user.ID)

	return target.ID, nil
}

// IsAccountFollowing reports whether the viewer follows the account behind
// ownerSlug. Self-view never counts as following.
func IsAccountFollowing(ownerSlug string, viewer *models.Account) bool {
	if viewer == nil || viewer.Slug == ownerSlug {
		return false
	}

	var count int64
	database.C.Model(&models.FollowEdge{}).
		Joins("JOIN accounts ON accounts.id = follow_edges.following_id").
		Where("follow_edges.follower_id = ? AND accounts.slug = ?", viewer.ID, ownerSlug).
		Count(&count)

	return count > 0
}

// IsAccountFollower is the opposite read direction: does the account behind
// ownerSlug follow the viewer.
func IsAccountFollower(ownerSlug string, viewer *models.Account) bool {
	if viewer == nil || viewer.Slug == ownerSlug {
		return false
	}

	var count int64
	database.C.Model(&models.FollowEdge{}).
		Joins("JOIN accounts ON accounts.id = follow_edges.follower_id").
		Where("accounts.slug = ? AND follow_edges.following_id = ?", ownerSlug, viewer.ID).
		Count(&count)

	return count > 0
}

func CountAccountFollowers(user models.Account) int64 {
	var count int64
	database.C.Model(&models.FollowEdge{}).
		Where("following_id = ?", user.ID).
		Count(&count)
	return count
}

func CountAccountFollowings(user models.Account) int64 {
	var count int64
	database.C.Model(&models.FollowEdge{}).
		Where("follower_id = ?", user.ID).
		Count(&count)
	return count
}

// ListAccountFollowers pages through the accounts following the one behind
// slug, newest account first.
func ListAccountFollowers(slug string, cursor *int64) (Page[models.Account], error) {
	owner, err := GetAccountWithSlug(slug)
	if err != nil {
		return Page[models.Account]{}, err
	}

	tx := database.C.Model(&models.Account{}).
		Select("accounts.*").
		Joins("JOIN follow_edges ON follow_edges.follower_id = accounts.id").
		Where("follow_edges.following_id = ?", owner.ID)

	return PaginateKeyset(tx, "accounts.id", cursor, DefaultPageSize, func(item models.Account) int64 {
		return int64(item.ID)
	})
}

// ListAccountFollowings pages through the accounts the one behind slug follows.
func ListAccountFollowings(slug string, cursor *int64) (Page[models.Account], error) {
	owner, err := GetAccountWithSlug(slug)
	if err != nil {
		return Page[models.Account]{}, err
	}

	tx := database.C.Model(&models.Account{}).
		Select("accounts.*").
		Joins("JOIN follow_edges ON follow_edges.following_id = accounts.id").
		Where("follow_edges.follower_id = ?", owner.ID)

	return PaginateKeyset(tx, "accounts.id", cursor, DefaultPageSize, func(item models.Account) int64 {
		return int64(item.ID)
	})
}
