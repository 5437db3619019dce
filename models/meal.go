package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal categories.
const (
	MealTypeBreakfast   = "breakfast"
	MealTypeLunch       = "lunch"
	MealTypeSnacks      = "snacks"
	MealTypeDinner      = "dinner"
	MealTypePreWorkout  = "pre-workout"
	MealTypePostWorkout = "post-workout"
)

var mealTypes = map[string]bool{
	MealTypeBreakfast:   true,
	MealTypeLunch:       true,
	MealTypeSnacks:      true,
	MealTypeDinner:      true,
	MealTypePreWorkout:  true,
	MealTypePostWorkout: true,
}

// ValidMealType reports whether s is one of the known meal categories.
func ValidMealType(s string) bool {
	return mealTypes[s]
}

// Meal belongs to exactly one owner. A meal with zero portions is valid
// (every component may have failed to resolve) and aggregates to empty
// nutrition.
type Meal struct {
	gorm.Model
	OwnerID   uint      `gorm:"index;not null"`
	MealType  string    `gorm:"size:20;not null"`
	Name      string    `gorm:"size:100"`
	ImageRef  string    `gorm:"size:255"`
	Timestamp time.Time `gorm:"index;not null"`

	Portions []Portion `gorm:"constraint:OnDelete:CASCADE"`
}

func (Meal) TableName() string {
	return "meals"
}

// Portion is one (food, quantity) component of a meal. Quantity is in
// grams and must be positive. Rows are owned by the parent meal and go
// away with it.
type Portion struct {
	gorm.Model
	MealID           uint    `gorm:"index;not null"`
	FoodID           uint    `gorm:"not null"`
	Quantity         float64 `gorm:"not null"`
	PreparationNotes string  `gorm:"size:200"`

	Food FoodItem
}

func (Portion) TableName() string {
	return "meal_portions"
}
