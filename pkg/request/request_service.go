package request

import (
	"ShareMeal-Backend/domain"
	"ShareMeal-Backend/entities"
	"ShareMeal-Backend/internal/utils/cache"
	"ShareMeal-Backend/pkg/food"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	RequestService interface {
		RequestFood(ctx context.Context, req domain.RequestFoodRequest, identity domain.VerifiedIdentity) (domain.RequestFoodResponse, error)
		GetMyRequests(ctx context.Context, userEmail string, identity domain.VerifiedIdentity) ([]domain.FoodRequestResponse, error)
	}

	requestService struct {
		requestRepository RequestRepository
		foodRepository    food.FoodRepository
		listingCache      *cache.Cache
		strictTransition  bool
	}
)

func NewRequestService(requestRepository RequestRepository, foodRepository food.FoodRepository, listingCache *cache.Cache, strictTransition bool) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		foodRepository:    foodRepository,
		listingCache:      listingCache,
		strictTransition:  strictTransition,
	}
}

// RequestFood inserts the request row and then flips the referenced item to
// requested. The two writes are not transactional: a crash in between leaves
// a request row behind while the item stays available, an accepted window.
// In the default permissive mode the status write is last-write-wins and a
// modified count of 0 only means the target vanished; strict mode instead
// guards the transition and rejects the request before anything is written.
func (s *requestService) RequestFood(ctx context.Context, req domain.RequestFoodRequest, identity domain.VerifiedIdentity) (domain.RequestFoodResponse, error) {
	requestDate, err := time.Parse("2006-01-02", req.RequestDate)
	if err != nil {
		return domain.RequestFoodResponse{}, domain.ErrInvalidRequestDate
	}

	// The store rejects a malformed id outright, whereas the contract treats
	// it like any other reference that matches nothing.
	_, uuidErr := uuid.Parse(req.FoodID)

	if s.strictTransition {
		if uuidErr != nil {
			return domain.RequestFoodResponse{}, domain.ErrFoodNotFound
		}
		count, err := s.foodRepository.UpdateFoodStatus(ctx, req.FoodID, entities.FoodStatusRequested, true)
		if err != nil {
			return domain.RequestFoodResponse{}, err
		}
		if count == 0 {
			if _, err := s.foodRepository.GetFoodByID(ctx, req.FoodID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.RequestFoodResponse{}, domain.ErrFoodNotFound
				}
				return domain.RequestFoodResponse{}, err
			}
			return domain.RequestFoodResponse{}, domain.ErrFoodAlreadyRequested
		}

		s.listingCache.Invalidate(ctx)

		foodRequest, err := s.createRequest(ctx, req, requestDate)
		if err != nil {
			return domain.RequestFoodResponse{}, err
		}
		return domain.RequestFoodResponse{
			RequestID:     foodRequest.ID.String(),
			ModifiedCount: count,
		}, nil
	}

	foodRequest, err := s.createRequest(ctx, req, requestDate)
	if err != nil {
		return domain.RequestFoodResponse{}, err
	}

	// The request stands even when the referenced item is gone; a dangling
	// reference is a non-error state.
	var count int64
	if uuidErr == nil {
		count, err = s.foodRepository.UpdateFoodStatus(ctx, req.FoodID, entities.FoodStatusRequested, false)
		if err != nil {
			return domain.RequestFoodResponse{}, err
		}
	}

	if count > 0 {
		s.listingCache.Invalidate(ctx)
	}

	return domain.RequestFoodResponse{
		RequestID:     foodRequest.ID.String(),
		ModifiedCount: count,
	}, nil
}

func (s *requestService) GetMyRequests(ctx context.Context, userEmail string, identity domain.VerifiedIdentity) ([]domain.FoodRequestResponse, error) {
	if userEmail != identity.Email {
		return nil, domain.ErrNotResourceOwner
	}

	requests, err := s.requestRepository.GetRequestsByRequester(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodRequestResponse, 0, len(requests))
	for _, r := range requests {
		response = append(response, domain.FoodRequestResponse{
			ID:          r.ID.String(),
			FoodID:      r.FoodID,
			DonorName:   r.DonorName,
			UserEmail:   r.UserEmail,
			RequestDate: r.RequestDate,
			CreatedAt:   r.CreatedAt,
		})
	}

	return response, nil
}

func (s *requestService) createRequest(ctx context.Context, req domain.RequestFoodRequest, requestDate time.Time) (*entities.FoodRequest, error) {
	foodRequest := &entities.FoodRequest{
		ID:          uuid.New(),
		FoodID:      req.FoodID,
		DonorName:   req.DonorName,
		UserEmail:   req.UserEmail,
		RequestDate: requestDate,
	}

	if err := s.requestRepository.CreateRequest(ctx, foodRequest); err != nil {
		return nil, err
	}
	return foodRequest, nil
}
