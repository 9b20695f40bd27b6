package models

import (
	"time"

	"gorm.io/datatypes"
)

type Step struct {
	BaseModel

	Name      string                       `json:"name"`
	Country   string                       `json:"country"`
	Coord     datatypes.JSONSlice[float64] `json:"coord"`
	ArrivedAt int64                        `json:"arrived_at"`
	Story     *string                      `json:"story"`
	Language  string                       `json:"language"`
	PhotoURLs datatypes.JSONSlice[string]  `json:"photo_urls"`

	TravelerID uint    `json:"traveler_id"`
	Traveler   Account `json:"traveler"`
	TripID     uint    `json:"trip_id" gorm:"index"`
	Trip       Trip    `json:"trip"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:StepID"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:StepID"`
}

type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AccountID uint      `json:"account_id" gorm:"uniqueIndex:idx_like_pair"`
	StepID    uint      `json:"step_id" gorm:"uniqueIndex:idx_like_pair"`
	CreatedAt time.Time `json:"created_at"`
}
