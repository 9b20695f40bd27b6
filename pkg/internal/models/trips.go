package models

import "time"

type TripAvailability = int8

const (
	TripAvailabilityPrivate = TripAvailability(iota)
	TripAvailabilityFollowers
	TripAvailabilityPublic
)

type Trip struct {
	BaseModel

	Name         string           `json:"name"`
	Summary      *string          `json:"summary"`
	CoverURL     *string          `json:"cover_url"`
	StartUnix    int64            `json:"start_unix"`
	EndUnix      *int64           `json:"end_unix"`
	Availability TripAvailability `json:"availability"`
	ViewCount    int64            `json:"view_count"`

	TravelerID uint    `json:"traveler_id"`
	Traveler   Account `json:"traveler"`
	Steps      []Step  `json:"steps,omitempty" gorm:"foreignKey:TripID"`
}

// TripView is a raw view event; the counter on the trip itself is
// maintained out of band by the flush job.
type TripView struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TripID    uint      `json:"trip_id" gorm:"index"`
	AccountID *uint     `json:"account_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
