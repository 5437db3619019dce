package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyGoal holds a user's per-day macro targets in grams (kcal for
// calories). Zero means no target set for that metric.
type DailyGoal struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex;not null"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

func (DailyGoal) TableName() string {
	return "daily_goals"
}

// DailyProgress is a per-day snapshot of consumed macros, refreshed
// whenever the day's nutrition is queried. It is a convenience record
// for history views, never an input to aggregation.
type DailyProgress struct {
	gorm.Model
	UserID   uint      `gorm:"index:idx_progress_user_date,unique;not null"`
	Date     time.Time `gorm:"index:idx_progress_user_date,unique;not null"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

func (DailyProgress) TableName() string {
	return "daily_progress"
}
