package models

import "time"

// Activity is a single logged workout. Date is the day the workout happened
// (caller supplied), CreatedAt is when the record was stored. Activities are
// immutable after creation; the only mutation is deletion.
type Activity struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	Type      string    `json:"type" gorm:"type:varchar(100)" validate:"required"`
	Duration  int       `json:"duration" validate:"required,gt=0"` // minutes
	Date      time.Time `json:"date" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
