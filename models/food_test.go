package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambit-git/ai-nutri-journal/nutrition"
)

func TestNutritionalValueRoundTrip(t *testing.T) {
	in := nutrition.Profile{
		nutrition.Calories: 165,
		nutrition.Protein:  31,
		nutrition.Carbs:    0, // explicit zero, must survive as zero
		nutrition.Fats:     3.6,
	}

	nv := NewNutritionalValue(in)
	require.NotNil(t, nv.Calories)
	require.NotNil(t, nv.Carbs)
	assert.Equal(t, 0.0, *nv.Carbs)
	assert.Nil(t, nv.Fiber, "unset key must store as NULL")

	out := nv.Profile()
	assert.Equal(t, in, out)
}

func TestNutritionalValueAllAbsent(t *testing.T) {
	nv := NewNutritionalValue(nutrition.Profile{})
	assert.Empty(t, nv.Profile())
	assert.Nil(t, nv.Calories)
}

func TestFoodItemProfileWithoutNutritionRow(t *testing.T) {
	f := &FoodItem{Name: "mystery"}
	assert.Empty(t, f.Profile())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "rice", NormalizeName("  Rice "))
	assert.Equal(t, "chicken breast", NormalizeName("Chicken Breast"))
}

func TestValidMealType(t *testing.T) {
	assert.True(t, ValidMealType("breakfast"))
	assert.True(t, ValidMealType("post-workout"))
	assert.False(t, ValidMealType("brunch"))
	assert.False(t, ValidMealType(""))
}
