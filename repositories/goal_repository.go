package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sambit-git/ai-nutri-journal/models"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) GetGoal(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := r.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &goal, nil
}

func (r *GoalRepository) UpsertGoal(goal *models.DailyGoal) error {
	var existing models.DailyGoal
	err := r.db.Where("user_id = ?", goal.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.Create(goal).Error; err != nil {
			return fmt.Errorf("create goal: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("get goal: %w", err)
	}

	existing.Calories = goal.Calories
	existing.Protein = goal.Protein
	existing.Carbs = goal.Carbs
	existing.Fats = goal.Fats
	if err := r.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	*goal = existing
	return nil
}

// UpsertProgress records the day's consumed macros, one row per
// (user, day).
func (r *GoalRepository) UpsertProgress(p *models.DailyProgress) error {
	err := r.db.
		Where("user_id = ? AND date = ?", p.UserID, p.Date).
		Assign(models.DailyProgress{
			Calories: p.Calories,
			Protein:  p.Protein,
			Carbs:    p.Carbs,
			Fats:     p.Fats,
		}).
		FirstOrCreate(p).Error
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

func (r *GoalRepository) ListProgress(userID uint) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	err := r.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return rows, nil
}
