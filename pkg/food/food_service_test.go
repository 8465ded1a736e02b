package food

import (
	"ShareMeal-Backend/domain"
	"ShareMeal-Backend/entities"
	"ShareMeal-Backend/internal/utils/cache"
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	foods map[string]*entities.FoodItem

	listCalls   int
	updateCalls int
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{foods: map[string]*entities.FoodItem{}}
}

func (r *fakeFoodRepository) AddFood(_ context.Context, food *entities.FoodItem) error {
	r.foods[food.ID.String()] = food
	return nil
}

func (r *fakeFoodRepository) GetFoodByID(_ context.Context, id string) (*entities.FoodItem, error) {
	food, ok := r.foods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *food
	return &copied, nil
}

func (r *fakeFoodRepository) GetFoods(_ context.Context) ([]*entities.FoodItem, error) {
	var foods []*entities.FoodItem
	for _, food := range r.foods {
		foods = append(foods, food)
	}
	return foods, nil
}

func (r *fakeFoodRepository) GetAvailableFoods(_ context.Context, search string, sortDesc bool) ([]*entities.FoodItem, error) {
	r.listCalls++
	var foods []*entities.FoodItem
	for _, food := range r.foods {
		if food.Status == entities.FoodStatusAvailable {
			foods = append(foods, food)
		}
	}
	return foods, nil
}

func (r *fakeFoodRepository) GetFoodsByDonor(_ context.Context, donorEmail string) ([]*entities.FoodItem, error) {
	var foods []*entities.FoodItem
	for _, food := range r.foods {
		if food.DonorEmail == donorEmail {
			foods = append(foods, food)
		}
	}
	return foods, nil
}

func (r *fakeFoodRepository) UpdateFood(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	r.updateCalls++
	food, ok := r.foods[id]
	if !ok {
		return 0, nil
	}
	if name, ok := fields["name"].(string); ok {
		food.Name = name
	}
	if img, ok := fields["img"].(string); ok {
		food.Img = img
	}
	if location, ok := fields["location"].(string); ok {
		food.Location = location
	}
	if donorName, ok := fields["donor_name"].(string); ok {
		food.DonorName = donorName
	}
	if expireAt, ok := fields["expire_at"].(time.Time); ok {
		food.ExpireAt = expireAt
	}
	return 1, nil
}

func (r *fakeFoodRepository) UpdateFoodStatus(_ context.Context, id string, status string, onlyAvailable bool) (int64, error) {
	food, ok := r.foods[id]
	if !ok {
		return 0, nil
	}
	if onlyAvailable && food.Status != entities.FoodStatusAvailable {
		return 0, nil
	}
	food.Status = status
	return 1, nil
}

func (r *fakeFoodRepository) DeleteFood(_ context.Context, id string) error {
	delete(r.foods, id)
	return nil
}

func seedFood(r *fakeFoodRepository, donorEmail string) *entities.FoodItem {
	food := &entities.FoodItem{
		ID:         uuid.New(),
		Name:       "Bread",
		Img:        "https://example.com/bread.png",
		Location:   "Loc",
		DonorEmail: donorEmail,
		Status:     entities.FoodStatusAvailable,
	}
	r.foods[food.ID.String()] = food
	return food
}

var (
	donorA = domain.VerifiedIdentity{Email: "a@example.com", Subject: "user-a"}
	userC  = domain.VerifiedIdentity{Email: "c@example.com", Subject: "user-c"}
)

func TestAddFoodStampsCallerIdentity(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)

	res, err := service.AddFood(context.Background(), domain.AddFoodRequest{
		Name:     "Bread",
		Img:      "u",
		Location: "Loc",
		ExpireAt: "2026-09-15",
	}, donorA)
	require.NoError(t, err)

	assert.Equal(t, donorA.Email, res.DonorEmail)
	assert.Equal(t, entities.FoodStatusAvailable, res.Status)

	stored := repo.foods[res.ID]
	require.NotNil(t, stored)
	assert.Equal(t, donorA.Email, stored.DonorEmail)
	assert.Equal(t, entities.FoodStatusAvailable, stored.Status)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), stored.ExpireAt)
}

func TestAddFoodRejectsBadExpireDate(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)

	_, err := service.AddFood(context.Background(), domain.AddFoodRequest{
		Name:     "Bread",
		Img:      "u",
		Location: "Loc",
		ExpireAt: "next tuesday",
	}, donorA)
	assert.ErrorIs(t, err, domain.ErrInvalidExpireAt)
	assert.Empty(t, repo.foods)
}

func TestUpdateFoodNotFound(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)

	_, err := service.UpdateFood(context.Background(), uuid.NewString(), domain.UpdateFoodRequest{Name: "x"}, donorA)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestUpdateFoodByNonOwnerIsForbidden(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)
	food := seedFood(repo, donorA.Email)

	_, err := service.UpdateFood(context.Background(), food.ID.String(), domain.UpdateFoodRequest{Name: "stolen"}, userC)
	assert.ErrorIs(t, err, domain.ErrNotResourceOwner)
	assert.Equal(t, 0, repo.updateCalls)
	assert.Equal(t, "Bread", repo.foods[food.ID.String()].Name)
}

func TestUpdateFoodMergesOnlyProvidedFields(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)
	food := seedFood(repo, donorA.Email)

	res, err := service.UpdateFood(context.Background(), food.ID.String(), domain.UpdateFoodRequest{
		Location: "New Loc",
	}, donorA)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	stored := repo.foods[food.ID.String()]
	assert.Equal(t, "New Loc", stored.Location)
	assert.Equal(t, "Bread", stored.Name)
	assert.Equal(t, donorA.Email, stored.DonorEmail)
}

func TestUpdateFoodEmptyPatchModifiesNothing(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)
	food := seedFood(repo, donorA.Email)

	res, err := service.UpdateFood(context.Background(), food.ID.String(), domain.UpdateFoodRequest{}, donorA)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.ModifiedCount)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestDeleteFoodByNonOwnerIsForbidden(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)
	food := seedFood(repo, donorA.Email)

	err := service.DeleteFood(context.Background(), food.ID.String(), userC)
	assert.ErrorIs(t, err, domain.ErrNotResourceOwner)
	assert.Contains(t, repo.foods, food.ID.String())
}

func TestDeleteFoodByOwner(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)
	food := seedFood(repo, donorA.Email)

	err := service.DeleteFood(context.Background(), food.ID.String(), donorA)
	require.NoError(t, err)
	assert.NotContains(t, repo.foods, food.ID.String())
}

func TestGetFoodByIDIsIdempotent(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)
	food := seedFood(repo, donorA.Email)

	first, err := service.GetFoodByID(context.Background(), food.ID.String())
	require.NoError(t, err)
	second, err := service.GetFoodByID(context.Background(), food.ID.String())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetFoodByIDMalformedIDIsNotFound(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)

	_, err := service.GetFoodByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestGetFoodsByDonorRequiresMatchingIdentity(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, nil)
	seedFood(repo, donorA.Email)

	_, err := service.GetFoodsByDonor(context.Background(), donorA.Email, userC)
	assert.ErrorIs(t, err, domain.ErrNotResourceOwner)

	foods, err := service.GetFoodsByDonor(context.Background(), donorA.Email, donorA)
	require.NoError(t, err)
	assert.Len(t, foods, 1)
}

func TestGetAvailableFoodsUsesListingCache(t *testing.T) {
	mr := miniredis.RunT(t)
	listingCache := cache.New(mr.Addr())

	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil, listingCache)
	seedFood(repo, donorA.Email)

	ctx := context.Background()

	_, err := service.GetAvailableFoods(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	// Second read is served from the cache.
	_, err = service.GetAvailableFoods(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	// Any write invalidates the listing.
	_, err = service.AddFood(ctx, domain.AddFoodRequest{Name: "Rice", Img: "u", Location: "Loc"}, donorA)
	require.NoError(t, err)

	foods, err := service.GetAvailableFoods(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	assert.Len(t, foods, 2)
}

type fakeS3 struct {
	objects map[string][]byte
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (s *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName + ".png"
	s.objects[key] = []byte{}
	return key, nil
}

func (s *fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	s.objects[objectKey] = []byte{}
	return objectKey, nil
}

func (s *fakeS3) DeleteFile(objectKey string) error {
	delete(s.objects, objectKey)
	return nil
}

func (s *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (s *fakeS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.s3.region.amazonaws.com/"
	if len(link) <= len(prefix) || link[:len(prefix)] != prefix {
		return ""
	}
	return link[len(prefix):]
}

func TestUploadFoodImageOwnerOnly(t *testing.T) {
	repo := newFakeFoodRepository()
	s3 := newFakeS3()
	service := NewFoodService(repo, s3, nil)
	food := seedFood(repo, donorA.Email)
	food.Img = ""

	req := domain.UploadFoodImageRequest{
		FoodID: food.ID.String(),
		Image:  &multipart.FileHeader{Filename: "bread.png"},
	}

	_, err := service.UploadFoodImage(context.Background(), req, userC)
	assert.ErrorIs(t, err, domain.ErrNotResourceOwner)
	assert.Empty(t, s3.objects)

	res, err := service.UploadFoodImage(context.Background(), req, donorA)
	require.NoError(t, err)
	assert.Contains(t, res.ImageURL, "foods/food-"+food.ID.String())
	assert.Equal(t, res.ImageURL, repo.foods[food.ID.String()].Img)
}
