package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRequestFood   = "food requested successfully"
	MessageSuccessGetMyRequests = "food requests retrieved successfully"

	MessageFailedRequestFood   = "failed to request food"
	MessageFailedGetMyRequests = "failed to retrieve food requests"

	ErrInvalidRequestDate   = errors.New("invalid request date")
	ErrFoodAlreadyRequested = errors.New("food already requested")
)

type (
	RequestFoodRequest struct {
		FoodID      string `json:"food_id" validate:"required"`
		DonorName   string `json:"donor_name" validate:"required"`
		UserEmail   string `json:"user_email" validate:"required,email"`
		RequestDate string `json:"request_date" validate:"required"`
	}

	RequestFoodResponse struct {
		RequestID string `json:"request_id"`
		// ModifiedCount reports the status-transition write on the food item;
		// 0 means the referenced item no longer matched anything.
		ModifiedCount int64 `json:"modified_count"`
	}

	FoodRequestResponse struct {
		ID          string    `json:"id"`
		FoodID      string    `json:"food_id"`
		DonorName   string    `json:"donor_name"`
		UserEmail   string    `json:"user_email"`
		RequestDate time.Time `json:"request_date"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
