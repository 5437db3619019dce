package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/sambit-git/ai-nutri-journal/nutrition"
)

// DailyNutrition is the presentation shape for one calendar day: the
// folded totals plus the per-meal breakdown, so callers can render
// either granularity without recomputation. The four macro totals
// treat absent as zero (they are fold outputs); the sparse Nutrition
// map keeps absence visible.
type DailyNutrition struct {
	Date          string            `json:"date"`
	TotalCalories float64           `json:"total_calories"`
	TotalProtein  float64           `json:"total_protein"`
	TotalCarbs    float64           `json:"total_carbs"`
	TotalFats     float64           `json:"total_fats"`
	Nutrition     nutrition.Profile `json:"nutrition"`
	Meals         []*MealResult     `json:"meals"`
}

// NutritionService folds per-meal aggregation across a calendar day.
type NutritionService struct {
	meals   MealStore
	mealSvc *MealService
	log     zerolog.Logger
}

func NewNutritionService(meals MealStore, mealSvc *MealService, log zerolog.Logger) *NutritionService {
	return &NutritionService{
		meals:   meals,
		mealSvc: mealSvc,
		log:     log.With().Str("component", "nutrition").Logger(),
	}
}

// AggregateDay sums nutrition across all of the owner's meals with
// timestamp in [00:00, +24h) of the given day. Date-range matching is
// done in UTC; callers supply dates already in that frame.
func (s *NutritionService) AggregateDay(ownerID uint, day time.Time) (*DailyNutrition, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	meals, err := s.meals.ListByOwnerAndRange(ownerID, start, end)
	if err != nil {
		return nil, err
	}

	results := make([]*MealResult, 0, len(meals))
	profiles := make([]nutrition.Profile, 0, len(meals))
	for i := range meals {
		r := s.mealSvc.FormatMeal(&meals[i])
		results = append(results, r)
		profiles = append(profiles, r.Nutrition)
	}
	total := nutrition.Fold(profiles)

	return &DailyNutrition{
		Date:          start.Format("2006-01-02"),
		TotalCalories: total.ValueOrZero(nutrition.Calories),
		TotalProtein:  total.ValueOrZero(nutrition.Protein),
		TotalCarbs:    total.ValueOrZero(nutrition.Carbs),
		TotalFats:     total.ValueOrZero(nutrition.Fats),
		Nutrition:     total,
		Meals:         results,
	}, nil
}
