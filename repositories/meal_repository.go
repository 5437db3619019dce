package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sambit-git/ai-nutri-journal/models"
)

type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

// Create persists the meal and its portions in one transaction.
func (r *MealRepository) Create(meal *models.Meal) error {
	if err := r.db.Create(meal).Error; err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	return nil
}

func (r *MealRepository) GetByID(ownerID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.
		Preload("Portions.Food.Nutrition").
		Where("id = ? AND owner_id = ?", mealID, ownerID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get meal: %w", err)
	}
	return &meal, nil
}

func (r *MealRepository) ListByOwner(ownerID uint, offset, limit int) ([]models.Meal, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var meals []models.Meal
	err := r.db.
		Preload("Portions.Food.Nutrition").
		Where("owner_id = ?", ownerID).
		Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// ListByOwnerAndRange returns the owner's meals with timestamp in
// [from, to).
func (r *MealRepository) ListByOwnerAndRange(ownerID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.
		Preload("Portions.Food.Nutrition").
		Where("owner_id = ? AND timestamp >= ? AND timestamp < ?", ownerID, from, to).
		Order("timestamp ASC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("list meals by range: %w", err)
	}
	return meals, nil
}

// Delete removes a meal and its portions.
func (r *MealRepository) Delete(ownerID, mealID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.Where("id = ? AND owner_id = ?", mealID, ownerID).First(&meal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("find meal: %w", err)
		}
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.Portion{}).Error; err != nil {
			return fmt.Errorf("delete portions: %w", err)
		}
		if err := tx.Delete(&meal).Error; err != nil {
			return fmt.Errorf("delete meal: %w", err)
		}
		return nil
	})
}
