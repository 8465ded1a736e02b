package entities

import (
	"github.com/google/uuid"
	"time"
)

const (
	FoodStatusAvailable = "available"
	FoodStatusRequested = "requested"
)

type FoodItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Img        string    `json:"img"`
	Location   string    `json:"location"`
	DonorName  string    `json:"donor_name,omitempty"`
	DonorEmail string    `gorm:"index" json:"donor_email"`
	Status     string    `json:"status"` // "available", "requested"
	ExpireAt   time.Time `json:"expire_at"`

	Timestamp
}
