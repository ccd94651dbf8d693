package models

import "time"

// Challenge is a community challenge users can join. Participants holds user
// ids in join order with no duplicates. The creator does not participate
// unless they join like everyone else.
type Challenge struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CreatorID    string    `json:"creator_id" gorm:"index;type:varchar(36)" validate:"required"`
	Title        string    `json:"title" validate:"required,min=1,max=200"`
	Description  string    `json:"description" validate:"omitempty,max=1000"`
	Participants []string  `json:"participants" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasParticipant reports whether the user already joined.
func (c *Challenge) HasParticipant(userID string) bool {
	for _, id := range c.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
