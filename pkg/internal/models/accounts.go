package models

import "time"

type Account struct {
	BaseModel

	Slug      string  `json:"slug" gorm:"uniqueIndex"`
	Username  string  `json:"username" gorm:"uniqueIndex"`
	Email     string  `json:"email" gorm:"uniqueIndex"`
	Password  string  `json:"-"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
	City      *string `json:"city"`
	TimeZone  *string `json:"time_zone"`

	Trips    []Trip    `json:"trips,omitempty" gorm:"foreignKey:TravelerID"`
	Steps    []Step    `json:"steps,omitempty" gorm:"foreignKey:TravelerID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:CreatorID"`
}

// FollowEdge is the single source of truth of the social graph.
// An edge means the follower follows the following side; follower and
// following listings are two read directions over this one table.
// The pair is unique so repeated follows stay idempotent, and rows are
// hard-deleted so an unfollow-refollow cycle never hits the constraint.
type FollowEdge struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"uniqueIndex:idx_follow_edge_pair"`
	FollowingID uint      `json:"following_id" gorm:"uniqueIndex:idx_follow_edge_pair"`
	Follower    Account   `json:"follower,omitempty"`
	Following   Account   `json:"following,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
