package models

import "time"

// Follow is a directed edge: FollowerID follows FollowingID. The pair is
// unique per direction; the reverse edge is a separate record.
type Follow struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FollowerID  string    `json:"follower_id" gorm:"index;type:varchar(36)" validate:"required"`
	FollowingID string    `json:"following_id" gorm:"index;type:varchar(36)" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}
