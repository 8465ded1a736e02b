package entities

import (
	"github.com/google/uuid"
	"time"
)

// FoodID is a weak reference: the request outlives the food item and is
// never cascade-deleted, so it stays a plain string instead of a foreign key.
type FoodRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID      string    `gorm:"index" json:"food_id"`
	DonorName   string    `json:"donor_name"`
	UserEmail   string    `gorm:"index" json:"user_email"`
	RequestDate time.Time `json:"request_date"`

	Timestamp
}
