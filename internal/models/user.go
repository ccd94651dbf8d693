package models

import "time"

// User represents a member of the fitness community.
// Points is an incremental counter: it is written by registration (zero) and
// by activity point accrual, never recomputed from the activity log.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // Never serialized
	Points    int       `json:"points" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}
