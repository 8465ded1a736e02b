package food

import (
	"ShareMeal-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.FoodItem) error
		GetFoodByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoods(ctx context.Context) ([]*entities.FoodItem, error)
		GetAvailableFoods(ctx context.Context, search string, sortDesc bool) ([]*entities.FoodItem, error)
		GetFoodsByDonor(ctx context.Context, donorEmail string) ([]*entities.FoodItem, error)
		UpdateFood(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
		UpdateFoodStatus(ctx context.Context, id string, status string, onlyAvailable bool) (int64, error)
		DeleteFood(ctx context.Context, id string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var food entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoods(ctx context.Context) ([]*entities.FoodItem, error) {
	var foods []*entities.FoodItem
	if err := r.db.WithContext(ctx).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetAvailableFoods(ctx context.Context, search string, sortDesc bool) ([]*entities.FoodItem, error) {
	var foods []*entities.FoodItem

	query := r.db.WithContext(ctx).Where("status = ?", entities.FoodStatusAvailable)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	order := "expire_at asc"
	if sortDesc {
		order = "expire_at desc"
	}

	if err := query.Order(order).Find(&foods).Error; err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepository) GetFoodsByDonor(ctx context.Context, donorEmail string) ([]*entities.FoodItem, error) {
	var foods []*entities.FoodItem
	if err := r.db.WithContext(ctx).Where("donor_email = ?", donorEmail).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

// onlyAvailable guards the transition with a status check; without it the
// write is last-write-wins.
func (r *foodRepository) UpdateFoodStatus(ctx context.Context, id string, status string, onlyAvailable bool) (int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Where("id = ?", id)
	if onlyAvailable {
		query = query.Where("status = ?", entities.FoodStatusAvailable)
	}

	tx := query.Updates(map[string]interface{}{"status": status})
	return tx.RowsAffected, tx.Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}
