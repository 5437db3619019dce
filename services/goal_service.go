package services

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sambit-git/ai-nutri-journal/models"
	"github.com/sambit-git/ai-nutri-journal/repositories"
)

// GoalStore persists per-user macro targets and daily snapshots.
type GoalStore interface {
	GetGoal(userID uint) (*models.DailyGoal, error)
	UpsertGoal(goal *models.DailyGoal) error
	UpsertProgress(p *models.DailyProgress) error
	ListProgress(userID uint) ([]models.DailyProgress, error)
}

// MetricProgress compares consumed against the target for one metric.
type MetricProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// GoalProgress is a day's nutrition set against the user's targets.
type GoalProgress struct {
	Date     string         `json:"date"`
	Calories MetricProgress `json:"calories"`
	Protein  MetricProgress `json:"protein"`
	Carbs    MetricProgress `json:"carbs"`
	Fats     MetricProgress `json:"fats"`
}

type GoalService struct {
	goals        GoalStore
	nutritionSvc *NutritionService
	log          zerolog.Logger
}

func NewGoalService(goals GoalStore, nutritionSvc *NutritionService, log zerolog.Logger) *GoalService {
	return &GoalService{
		goals:        goals,
		nutritionSvc: nutritionSvc,
		log:          log.With().Str("component", "goals").Logger(),
	}
}

func (s *GoalService) UpsertGoals(userID uint, calories, protein, carbs, fats float64) (*models.DailyGoal, error) {
	goal := &models.DailyGoal{
		UserID:   userID,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
	}
	if err := s.goals.UpsertGoal(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Progress computes the day's consumption against the user's goals and
// refreshes the DailyProgress snapshot for that day. A user without a
// stored goal gets zero targets rather than an error.
func (s *GoalService) Progress(userID uint, day time.Time) (*GoalProgress, error) {
	goal, err := s.goals.GetGoal(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		goal = &models.DailyGoal{UserID: userID}
	}

	daily, err := s.nutritionSvc.AggregateDay(userID, day)
	if err != nil {
		return nil, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	snapshot := &models.DailyProgress{
		UserID:   userID,
		Date:     start,
		Calories: daily.TotalCalories,
		Protein:  daily.TotalProtein,
		Carbs:    daily.TotalCarbs,
		Fats:     daily.TotalFats,
	}
	if err := s.goals.UpsertProgress(snapshot); err != nil {
		// snapshot is best-effort history; the computed progress is
		// still valid
		s.log.Warn().Err(err).Msg("failed to record daily progress snapshot")
	}

	return &GoalProgress{
		Date:     daily.Date,
		Calories: metric(daily.TotalCalories, goal.Calories),
		Protein:  metric(daily.TotalProtein, goal.Protein),
		Carbs:    metric(daily.TotalCarbs, goal.Carbs),
		Fats:     metric(daily.TotalFats, goal.Fats),
	}, nil
}

func (s *GoalService) History(userID uint) ([]models.DailyProgress, error) {
	return s.goals.ListProgress(userID)
}

func metric(consumed, target float64) MetricProgress {
	p := 0.0
	if target > 0 {
		p = consumed / target
		if p > 1 {
			p = 1
		}
	}
	return MetricProgress{Consumed: consumed, Goal: target, Percent: p}
}
