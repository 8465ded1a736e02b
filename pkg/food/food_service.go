package food

import (
	"ShareMeal-Backend/domain"
	"ShareMeal-Backend/entities"
	"ShareMeal-Backend/internal/utils/cache"
	"ShareMeal-Backend/internal/utils/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest, identity domain.VerifiedIdentity) (domain.AddFoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, identity domain.VerifiedIdentity) (domain.UpdateFoodResponse, error)
		DeleteFood(ctx context.Context, id string, identity domain.VerifiedIdentity) error
		GetFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetAvailableFoods(ctx context.Context, search string, sortDesc bool) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error)
		GetFoodsByDonor(ctx context.Context, donorEmail string, identity domain.VerifiedIdentity) ([]domain.FoodResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, identity domain.VerifiedIdentity) (domain.UploadFoodImageResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
		listingCache   *cache.Cache
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3, listingCache *cache.Cache) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
		listingCache:   listingCache,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest, identity domain.VerifiedIdentity) (domain.AddFoodResponse, error) {
	var expireAt time.Time
	if req.ExpireAt != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpireAt)
		if err != nil {
			return domain.AddFoodResponse{}, domain.ErrInvalidExpireAt
		}
		expireAt = parsed
	}

	// Identity is authoritative: whatever the client claims about the donor
	// email is discarded.
	food := &entities.FoodItem{
		ID:         uuid.New(),
		Name:       req.Name,
		Img:        req.Img,
		Location:   req.Location,
		DonorName:  req.DonorName,
		DonorEmail: identity.Email,
		Status:     entities.FoodStatusAvailable,
		ExpireAt:   expireAt,
	}

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.AddFoodResponse{}, err
	}

	s.listingCache.Invalidate(ctx)

	return domain.AddFoodResponse{
		ID:         food.ID.String(),
		Name:       food.Name,
		Img:        food.Img,
		Location:   food.Location,
		DonorName:  food.DonorName,
		DonorEmail: food.DonorEmail,
		Status:     food.Status,
		ExpireAt:   food.ExpireAt,
	}, nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, identity domain.VerifiedIdentity) (domain.UpdateFoodResponse, error) {
	food, err := s.getOwnedFood(ctx, id, identity)
	if err != nil {
		return domain.UpdateFoodResponse{}, err
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Img != "" {
		fields["img"] = req.Img
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.DonorName != "" {
		fields["donor_name"] = req.DonorName
	}
	if req.ExpireAt != "" {
		expireAt, err := time.Parse("2006-01-02", req.ExpireAt)
		if err != nil {
			return domain.UpdateFoodResponse{}, domain.ErrInvalidExpireAt
		}
		fields["expire_at"] = expireAt
	}

	if len(fields) == 0 {
		return domain.UpdateFoodResponse{ModifiedCount: 0}, nil
	}

	count, err := s.foodRepository.UpdateFood(ctx, food.ID.String(), fields)
	if err != nil {
		return domain.UpdateFoodResponse{}, err
	}

	s.listingCache.Invalidate(ctx)

	return domain.UpdateFoodResponse{ModifiedCount: count}, nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string, identity domain.VerifiedIdentity) error {
	food, err := s.getOwnedFood(ctx, id, identity)
	if err != nil {
		return err
	}

	// Best effort: a leftover object is not worth failing the delete over.
	if s.s3 != nil && food.Img != "" {
		objectKey := s.s3.GetObjectKeyFromLink(food.Img)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.foodRepository.DeleteFood(ctx, food.ID.String()); err != nil {
		return err
	}

	s.listingCache.Invalidate(ctx)
	return nil
}

func (s *foodService) GetFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetAvailableFoods(ctx context.Context, search string, sortDesc bool) ([]domain.FoodResponse, error) {
	order := "asc"
	if sortDesc {
		order = "desc"
	}

	if payload, ok := s.listingCache.GetAvailableFoods(ctx, search, order); ok {
		var cached []domain.FoodResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	foods, err := s.foodRepository.GetAvailableFoods(ctx, search, sortDesc)
	if err != nil {
		return nil, err
	}

	response := toFoodResponses(foods)
	if payload, err := json.Marshal(response); err == nil {
		s.listingCache.SetAvailableFoods(ctx, search, order, payload)
	}

	return response, nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(food), nil
}

func (s *foodService) GetFoodsByDonor(ctx context.Context, donorEmail string, identity domain.VerifiedIdentity) ([]domain.FoodResponse, error) {
	if donorEmail != identity.Email {
		return nil, domain.ErrNotResourceOwner
	}

	foods, err := s.foodRepository.GetFoodsByDonor(ctx, donorEmail)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, identity domain.VerifiedIdentity) (domain.UploadFoodImageResponse, error) {
	food, err := s.getOwnedFood(ctx, req.FoodID, identity)
	if err != nil {
		return domain.UploadFoodImageResponse{}, err
	}

	fileName := fmt.Sprintf("food-%s", food.ID.String())
	var objectKey string
	var uploadErr error

	if existingKey := s.s3.GetObjectKeyFromLink(food.Img); existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "foods", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.UploadFoodImageResponse{}, uploadErr
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	if _, err := s.foodRepository.UpdateFood(ctx, food.ID.String(), map[string]interface{}{"img": imageURL}); err != nil {
		return domain.UploadFoodImageResponse{}, err
	}

	s.listingCache.Invalidate(ctx)

	return domain.UploadFoodImageResponse{ImageURL: imageURL}, nil
}

func (s *foodService) getFood(ctx context.Context, id string) (*entities.FoodItem, error) {
	// A malformed id matches nothing, same as an unknown one.
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrFoodNotFound
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) getOwnedFood(ctx context.Context, id string, identity domain.VerifiedIdentity) (*entities.FoodItem, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return nil, err
	}
	if food.DonorEmail != identity.Email {
		return nil, domain.ErrNotResourceOwner
	}
	return food, nil
}

func toFoodResponse(food *entities.FoodItem) domain.FoodResponse {
	return domain.FoodResponse{
		ID:         food.ID.String(),
		Name:       food.Name,
		Img:        food.Img,
		Location:   food.Location,
		DonorName:  food.DonorName,
		DonorEmail: food.DonorEmail,
		Status:     food.Status,
		ExpireAt:   food.ExpireAt,
		CreatedAt:  food.CreatedAt,
	}
}

func toFoodResponses(foods []*entities.FoodItem) []domain.FoodResponse {
	response := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, toFoodResponse(food))
	}
	return response
}
