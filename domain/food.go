package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFood         = "food added successfully"
	MessageSuccessUpdateFood      = "food updated successfully"
	MessageSuccessDeleteFood      = "food deleted successfully"
	MessageSuccessGetFoods        = "foods retrieved successfully"
	MessageSuccessUploadFoodImage = "food image uploaded successfully"

	MessageFailedAddFood         = "failed to add food"
	MessageFailedUpdateFood      = "failed to update food"
	MessageFailedDeleteFood      = "failed to delete food"
	MessageFailedGetFoods        = "failed to retrieve foods"
	MessageFailedUploadFoodImage = "failed to upload food image"

	ErrFoodNotFound      = errors.New("food not found")
	ErrNotResourceOwner  = errors.New("caller does not own this resource")
	ErrInvalidExpireAt   = errors.New("invalid expire date")
	ErrInvalidFoodStatus = errors.New("invalid food status")
)

type (
	AddFoodRequest struct {
		Name      string `json:"name" validate:"required"`
		Img       string `json:"img" validate:"required"`
		Location  string `json:"location" validate:"required"`
		DonorName string `json:"donor_name"`
		ExpireAt  string `json:"expire_at"`
	}

	AddFoodResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Img        string    `json:"img"`
		Location   string    `json:"location"`
		DonorName  string    `json:"donor_name,omitempty"`
		DonorEmail string    `json:"donor_email"`
		Status     string    `json:"status"`
		ExpireAt   time.Time `json:"expire_at"`
	}

	// donor_email is deliberately absent: identity is authoritative and the
	// stored value never changes after creation.
	UpdateFoodRequest struct {
		Name      string `json:"name" validate:"omitempty"`
		Img       string `json:"img" validate:"omitempty"`
		Location  string `json:"location" validate:"omitempty"`
		DonorName string `json:"donor_name" validate:"omitempty"`
		ExpireAt  string `json:"expire_at" validate:"omitempty"`
	}

	UpdateFoodResponse struct {
		ModifiedCount int64 `json:"modified_count"`
	}

	FoodResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Img        string    `json:"img"`
		Location   string    `json:"location"`
		DonorName  string    `json:"donor_name,omitempty"`
		DonorEmail string    `json:"donor_email"`
		Status     string    `json:"status"`
		ExpireAt   time.Time `json:"expire_at"`
		CreatedAt  time.Time `json:"created_at"`
	}

	UploadFoodImageRequest struct {
		FoodID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadFoodImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
