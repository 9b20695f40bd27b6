package services

import (
	"context"
	"fmt"
	"time"

	localCache "github.com/wayfarerhq/wayfarer/pkg/internal/cache"
	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// TripPermissions computes the availability tiers the viewer may see on the
// owner's trips. Public is unconditional; self-view unlocks everything; being
// a follower unlocks the followers tier independently of the self check.
func TripPermissions(viewer *models.Account, ownerSlug string) []models.TripAvailability {
	permissions := []models.TripAvailability{models.TripAvailabilityPublic}
	if viewer != nil && viewer.Slug == ownerSlug {
		permissions = append(permissions, models.TripAvailabilityFollowers, models.TripAvailabilityPrivate)
	}
	if IsAccountFollowing(ownerSlug, viewer) {
		permissions = append(permissions, models.TripAvailabilityFollowers)
	}
	return lo.Uniq(permissions)
}

// FilterTripWithPermissions narrows a trip query to the tiers the viewer may
// see on one specific owner.
func FilterTripWithPermissions(tx *gorm.DB, viewer *models.Account, ownerSlug string) *gorm.DB {
	return tx.Where("availability IN ?", TripPermissions(viewer, ownerSlug))
}

type viewerContextState struct {
	FollowingList []uint
}

func cachedFollowingList(viewer models.Account) []uint {
	if localCache.S == nil {
		return queryFollowingList(viewer.ID)
	}

	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	statusCacheKey := fmt.Sprintf("viewer-context-query#%d", viewer.ID)
	statusCache, err := marshal.Get(ctx, statusCacheKey, new(viewerContextState))
	if err == nil {
		return statusCache.(*viewerContextState).FollowingList
	}

	followingList := queryFollowingList(viewer.ID)

	_ = marshal.Set(
		ctx,
		statusCacheKey,
		viewerContextState{FollowingList: followingList},
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"viewer-context-query", fmt.Sprintf("user#%d", viewer.ID)}),
	)

	return followingList
}

func queryFollowingList(accountID uint) []uint {
	var edges []models.FollowEdge
	database.C.Where("follower_id = ?", accountID).Find(&edges)
	return lo.Map(edges, func(item models.FollowEdge, index int) uint {
		return item.FollowingID
	})
}

// InvalidateViewerContext drops the cached relationship state of one account.
// Follow and unfollow call this so the visibility filter catches up right away.
func InvalidateViewerContext(accountID uint) {
	if localCache.S == nil {
		return
	}

	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	_ = marshal.Invalidate(ctx, store.WithInvalidateTags([]string{fmt.Sprintf("user#%d", accountID)}))
}

// FilterTripWithViewerContext narrows a cross-owner trip query to what the
// viewer may see: public trips, followers-tier trips of followed travelers,
// and everything of their own. The viewer's following list rides a short
// cache since the feed hits it for every page.
func FilterTripWithViewerContext(tx *gorm.DB, viewer *models.Account) *gorm.DB {
	if viewer == nil {
		return tx.Where("availability = ?", models.TripAvailabilityPublic)
	}

	followingList := cachedFollowingList(*viewer)

	return tx.Where(
		"(availability = ? OR (availability = ? AND traveler_id IN ?) OR traveler_id = ?)",
		models.TripAvailabilityPublic,
		models.TripAvailabilityFollowers,
		followingList,
		viewer.ID,
	)
}
