package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sambit-git/ai-nutri-journal/models"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

// FoodRepository is the local food catalog.
type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// FindByName looks a food up by name, ignoring case and surrounding
// whitespace. Pure read.
func (r *FoodRepository) FindByName(name string) (*models.FoodItem, error) {
	var item models.FoodItem
	err := r.db.
		Preload("Nutrition").
		Where("name_key = ?", models.NormalizeName(name)).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find food by name: %w", err)
	}
	return &item, nil
}

func (r *FoodRepository) FindByID(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := r.db.Preload("Nutrition").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find food by id: %w", err)
	}
	return &item, nil
}

// InsertIfAbsent persists the candidate and its nutrition row in one
// transaction, unless a food with the same normalized name already
// exists, in which case the existing row is returned untouched. The
// race between two concurrent first-time inserts is settled by the
// unique index on name_key: the loser gets ErrDuplicatedKey and retries
// as a read.
func (r *FoodRepository) InsertIfAbsent(candidate *models.FoodItem) (*models.FoodItem, error) {
	candidate.NameKey = models.NormalizeName(candidate.Name)

	if existing, err := r.FindByName(candidate.Name); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	// Create saves the associated NutritionalValue in the same
	// transaction: either both rows commit or neither does.
	err := r.db.Create(candidate).Error
	if err == nil {
		return candidate, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost the insert race; the row exists now
		return r.FindByName(candidate.Name)
	}
	return nil, fmt.Errorf("insert food: %w", err)
}

// Search returns catalog foods whose name contains q, newest first.
func (r *FoodRepository) Search(q string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 {
		limit = 20
	}
	var items []models.FoodItem
	err := r.db.
		Preload("Nutrition").
		Where("name_key LIKE ?", "%"+models.NormalizeName(q)+"%").
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	return items, nil
}
