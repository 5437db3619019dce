package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambit-git/ai-nutri-journal/models"
	"github.com/sambit-git/ai-nutri-journal/nutrition"
)

func seedMeal(store *fakeMealStore, ownerID uint, ts time.Time, portions ...models.Portion) *models.Meal {
	meal := &models.Meal{
		OwnerID:   ownerID,
		MealType:  models.MealTypeLunch,
		Timestamp: ts,
		Portions:  portions,
	}
	_ = store.Create(meal)
	return meal
}

func TestAggregateDay(t *testing.T) {
	catalog := newFakeCatalog()
	oats := catalog.add(&models.FoodItem{
		Name: "oats",
		Nutrition: models.NewNutritionalValue(nutrition.Profile{
			nutrition.Calories: 389,
			nutrition.Protein:  16.9,
			nutrition.Carbs:    66,
			nutrition.Fats:     6.9,
		}),
	})
	chicken := catalog.add(&models.FoodItem{
		Name: "chicken breast",
		Nutrition: models.NewNutritionalValue(nutrition.Profile{
			nutrition.Calories: 165,
			nutrition.Protein:  31,
			nutrition.Fats:     3.6,
		}),
	})

	store := newFakeMealStore(catalog)
	mealSvc := NewMealService(store, catalog, &fakeResolver{}, &fakeClassifier{}, zerolog.Nop())
	svc := NewNutritionService(store, mealSvc, zerolog.Nop())

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	seedMeal(store, 1, day.Add(8*time.Hour), models.Portion{FoodID: oats.ID, Quantity: 50})
	seedMeal(store, 1, day.Add(13*time.Hour), models.Portion{FoodID: chicken.ID, Quantity: 200})

	got, err := svc.AggregateDay(1, day)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", got.Date)
	require.Len(t, got.Meals, 2)

	// folded total equals the element-wise sum of per-meal aggregates
	wantCalories := 389*0.5 + 165*2
	wantProtein := 16.9*0.5 + 31*2
	assert.InDelta(t, wantCalories, got.TotalCalories, 1e-9)
	assert.InDelta(t, wantProtein, got.TotalProtein, 1e-9)
	assert.InDelta(t, 66*0.5, got.TotalCarbs, 1e-9, "carbs known only for oats")
	assert.InDelta(t, 6.9*0.5+3.6*2, got.TotalFats, 1e-9)

	perMeal := nutrition.Fold([]nutrition.Profile{got.Meals[0].Nutrition, got.Meals[1].Nutrition})
	assert.InDelta(t, got.TotalCalories, perMeal[nutrition.Calories], 1e-9)
}

func TestAggregateDayWindowBoundaries(t *testing.T) {
	catalog := newFakeCatalog()
	rice := catalog.add(&models.FoodItem{
		Name:      "rice",
		Nutrition: models.NewNutritionalValue(nutrition.Profile{nutrition.Calories: 130}),
	})

	store := newFakeMealStore(catalog)
	mealSvc := NewMealService(store, catalog, &fakeResolver{}, &fakeClassifier{}, zerolog.Nop())
	svc := NewNutritionService(store, mealSvc, zerolog.Nop())

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	atMidnight := seedMeal(store, 1, day, models.Portion{FoodID: rice.ID, Quantity: 100})
	seedMeal(store, 1, day.Add(24*time.Hour), models.Portion{FoodID: rice.ID, Quantity: 100}) // next day
	seedMeal(store, 1, day.Add(-time.Second), models.Portion{FoodID: rice.ID, Quantity: 100}) // previous day

	got, err := svc.AggregateDay(1, day)
	require.NoError(t, err)

	require.Len(t, got.Meals, 1, "start inclusive, start+24h exclusive")
	assert.Equal(t, atMidnight.ID, got.Meals[0].ID)
	assert.InDelta(t, 130, got.TotalCalories, 1e-9)
}

func TestAggregateDayEmpty(t *testing.T) {
	catalog := newFakeCatalog()
	store := newFakeMealStore(catalog)
	mealSvc := NewMealService(store, catalog, &fakeResolver{}, &fakeClassifier{}, zerolog.Nop())
	svc := NewNutritionService(store, mealSvc, zerolog.Nop())

	got, err := svc.AggregateDay(7, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, got.Meals)
	assert.Empty(t, got.Nutrition)
	assert.Zero(t, got.TotalCalories)
}

func TestAggregateDayScopedToOwner(t *testing.T) {
	catalog := newFakeCatalog()
	rice := catalog.add(&models.FoodItem{
		Name:      "rice",
		Nutrition: models.NewNutritionalValue(nutrition.Profile{nutrition.Calories: 130}),
	})
	store := newFakeMealStore(catalog)
	mealSvc := NewMealService(store, catalog, &fakeResolver{}, &fakeClassifier{}, zerolog.Nop())
	svc := NewNutritionService(store, mealSvc, zerolog.Nop())

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	seedMeal(store, 1, day.Add(time.Hour), models.Portion{FoodID: rice.ID, Quantity: 100})
	seedMeal(store, 2, day.Add(time.Hour), models.Portion{FoodID: rice.ID, Quantity: 100})

	got, err := svc.AggregateDay(1, day)
	require.NoError(t, err)
	assert.Len(t, got.Meals, 1)
}
