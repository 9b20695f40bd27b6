package services

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

const DefaultPageSize = 10

type Page[T any] struct {
	Items       []T    `json:"items"`
	EndCursor   *int64 `json:"end_cursor"`
	HasNextPage bool   `json:"has_next_page"`
}

// PaginateKeyset pages through the scope in descending key order. The cursor
// is the exclusive upper bound of the next page; no cursor starts from the
// newest row. EndCursor carries the key of the last returned row, or nothing
// when the page came back empty.
//
// HasNextPage is derived from the count of the whole scope, before the cursor
// applies, so it stays constant across the pages of one scope: true whenever
// the scope holds more rows than a single page. Pages are not isolated from
// concurrent writes either; rows inserted or removed between two calls can be
// skipped or repeated across the page boundary.
func PaginateKeyset[T any](tx *gorm.DB, keyColumn string, cursor *int64, take int, keyOf func(T) int64) (Page[T], error) {
	var page Page[T]
	if take <= 0 {
		take = DefaultPageSize
	}

	// Count on the key column so a custom select on the scope, like the
	// joined follower listings carry, never reaches the count query.
	var total int64
	if err := tx.Session(&gorm.Session{}).Select(keyColumn).Count(&total).Error; err != nil {
		return page, fmt.Errorf("unable to count scope: %v", err)
	}

	bound := int64(math.MaxInt32)
	if cursor != nil {
		bound = *cursor
	}

	var items []T
	if err := tx.Session(&gorm.Session{}).
		Where(keyColumn+" < ?", bound).
		Order(keyColumn + " DESC").
		Limit(take).
		Find(&items).Error; err != nil {
		return page, fmt.Errorf("unable to list scope: %v", err)
	}

	page.Items = items
	if len(items) > 0 {
		last := keyOf(items[len(items)-1])
		page.EndCursor = &last
	}
	page.HasNextPage = total-int64(take) > 0

	return page, nil
}
