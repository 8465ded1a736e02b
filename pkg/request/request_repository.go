package request

import (
	"ShareMeal-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.FoodRequest) error
		GetRequestsByRequester(ctx context.Context, userEmail string) ([]*entities.FoodRequest, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.FoodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestsByRequester(ctx context.Context, userEmail string) ([]*entities.FoodRequest, error) {
	var requests []*entities.FoodRequest
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("request_date desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
