package models

import (
	"strings"

	"gorm.io/gorm"

	"github.com/sambit-git/ai-nutri-journal/nutrition"
)

// Food type categories, kept as plain strings in the row.
const (
	FoodTypeVegetable    = "vegetable"
	FoodTypeFruit        = "fruit"
	FoodTypeGrain        = "grain"
	FoodTypeProtein      = "protein"
	FoodTypeDairy        = "dairy"
	FoodTypeSnack        = "snack"
	FoodTypeBeverage     = "beverage"
	FoodTypePreparedMeal = "prepared_meal"
)

// Physical states.
const (
	StateRaw       = "raw"
	StateCooked    = "cooked"
	StateProcessed = "processed"
	StateDried     = "dried"
	StateFrozen    = "frozen"
)

// FoodItem is a catalog entry: identity plus physical metadata. The
// nutrient numbers live in the owned NutritionalValue row. NameKey is
// the lowercased, trimmed name and carries the uniqueness constraint,
// so "Rice" and "rice" are the same food at the storage layer.
type FoodItem struct {
	gorm.Model
	Name               string `gorm:"size:100;not null"`
	NameKey            string `gorm:"size:100;uniqueIndex;not null"`
	Description        string `gorm:"type:text"`
	FoodType           string `gorm:"size:20"`
	State              string `gorm:"size:20"`
	Density            float64
	TypicalServingSize float64
	ServingUnit        string `gorm:"size:20"`
	WaterContent       float64
	IsVerified         bool `gorm:"default:false"`

	Nutrition *NutritionalValue `gorm:"foreignKey:FoodID"`
}

func (FoodItem) TableName() string {
	return "food_items"
}

// NormalizeName maps a food name to its catalog lookup key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Profile returns the food's per-100g profile, or an empty profile when
// no nutrition row is attached.
func (f *FoodItem) Profile() nutrition.Profile {
	if f.Nutrition == nil {
		return nutrition.Profile{}
	}
	return f.Nutrition.Profile()
}

// NutritionalValue is the per-100g nutrient row for one food. Every
// column is nullable: NULL means unknown, which aggregation must keep
// distinct from an explicit 0.
type NutritionalValue struct {
	gorm.Model
	FoodID uint `gorm:"index;not null"`

	Calories      *float64
	Protein       *float64
	Carbs         *float64
	Fiber         *float64
	Sugars        *float64
	Fats          *float64
	SaturatedFats *float64

	VitaminA   *float64
	VitaminB1  *float64
	VitaminB2  *float64
	VitaminB3  *float64
	VitaminB6  *float64
	VitaminB7  *float64
	VitaminB9  *float64
	VitaminB12 *float64
	VitaminC   *float64
	VitaminD   *float64
	VitaminE   *float64
	VitaminK   *float64

	Calcium    *float64
	Iron       *float64
	Magnesium  *float64
	Phosphorus *float64
	Potassium  *float64
	Sodium     *float64
	Zinc       *float64
	Selenium   *float64
	Copper     *float64
	Manganese  *float64
}

func (NutritionalValue) TableName() string {
	return "nutritional_values"
}

// columns maps nutrient keys onto the row's fields so conversions in
// both directions share one table.
func (n *NutritionalValue) columns() map[nutrition.Key]**float64 {
	return map[nutrition.Key]**float64{
		nutrition.Calories:      &n.Calories,
		nutrition.Protein:       &n.Protein,
		nutrition.Carbs:         &n.Carbs,
		nutrition.Fiber:         &n.Fiber,
		nutrition.Sugars:        &n.Sugars,
		nutrition.Fats:          &n.Fats,
		nutrition.SaturatedFats: &n.SaturatedFats,
		nutrition.VitaminA:      &n.VitaminA,
		nutrition.VitaminB1:     &n.VitaminB1,
		nutrition.VitaminB2:     &n.VitaminB2,
		nutrition.VitaminB3:     &n.VitaminB3,
		nutrition.VitaminB6:     &n.VitaminB6,
		nutrition.VitaminB7:     &n.VitaminB7,
		nutrition.VitaminB9:     &n.VitaminB9,
		nutrition.VitaminB12:    &n.VitaminB12,
		nutrition.VitaminC:      &n.VitaminC,
		nutrition.VitaminD:      &n.VitaminD,
		nutrition.VitaminE:      &n.VitaminE,
		nutrition.VitaminK:      &n.VitaminK,
		nutrition.Calcium:       &n.Calcium,
		nutrition.Iron:          &n.Iron,
		nutrition.Magnesium:     &n.Magnesium,
		nutrition.Phosphorus:    &n.Phosphorus,
		nutrition.Potassium:     &n.Potassium,
		nutrition.Sodium:        &n.Sodium,
		nutrition.Zinc:          &n.Zinc,
		nutrition.Selenium:      &n.Selenium,
		nutrition.Copper:        &n.Copper,
		nutrition.Manganese:     &n.Manganese,
	}
}

// Profile converts the row to a sparse profile; NULL columns are left
// out entirely.
func (n *NutritionalValue) Profile() nutrition.Profile {
	p := nutrition.Profile{}
	for k, col := range n.columns() {
		if *col != nil {
			p[k] = **col
		}
	}
	return p
}

// NewNutritionalValue builds a row from a sparse profile. Keys missing
// from the profile become NULL columns.
func NewNutritionalValue(p nutrition.Profile) *NutritionalValue {
	nv := &NutritionalValue{}
	for k, col := range nv.columns() {
		if v, ok := p[k]; ok {
			val := v
			*col = &val
		}
	}
	return nv
}
