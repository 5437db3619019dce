// services/meal_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sambit-git/ai-nutri-journal/models"
	"github.com/sambit-git/ai-nutri-journal/nutrition"
	"github.com/sambit-git/ai-nutri-journal/repositories"
)

// MealStore is the persistence surface the assembler needs.
type MealStore interface {
	Create(meal *models.Meal) error
	GetByID(ownerID, mealID uint) (*models.Meal, error)
	ListByOwner(ownerID uint, offset, limit int) ([]models.Meal, error)
	ListByOwnerAndRange(ownerID uint, from, to time.Time) ([]models.Meal, error)
	Delete(ownerID, mealID uint) error
}

// Resolver maps a food name to a catalog record, possibly via external
// lookup.
type Resolver interface {
	Resolve(ctx context.Context, name, stateHint string) (*models.FoodItem, error)
}

// Classifier is the opaque image model: bytes in, best label and a
// confidence in [0,1] out.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (label string, confidence float64, err error)
}

// ImageStore persists an uploaded meal photo and returns its public
// reference.
type ImageStore interface {
	UploadImage(ctx context.Context, data []byte, contentType string) (string, error)
}

// ComponentInput is one requested (food, quantity) pair, validated
// against the catalog by ID.
type ComponentInput struct {
	FoodID           uint    `json:"food_id" binding:"required"`
	Quantity         float64 `json:"quantity" binding:"required"`
	PreparationNotes string  `json:"preparation_notes"`
}

// ComponentResult is the presentation shape of a stored portion.
type ComponentResult struct {
	FoodID           uint    `json:"food_id"`
	FoodName         string  `json:"food_name"`
	Quantity         float64 `json:"quantity"`
	PreparationNotes string  `json:"preparation_notes,omitempty"`
}

// ComponentWarning records a component dropped during assembly. The
// meal itself still commits; the warning is the caller's signal that
// its nutrition is incomplete.
type ComponentWarning struct {
	Food   string `json:"food"`
	Reason string `json:"reason"`
}

// MealResult is the API-ready meal: identity, fresh nutrition, and the
// resolved component list.
type MealResult struct {
	ID         uint               `json:"id"`
	MealType   string             `json:"meal_type"`
	Name       string             `json:"name,omitempty"`
	ImageRef   string             `json:"image_ref,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
	OwnerID    uint               `json:"owner_id"`
	Nutrition  nutrition.Profile  `json:"nutrition"`
	Components []ComponentResult  `json:"components"`
	Warnings   []ComponentWarning `json:"warnings,omitempty"`
}

// ValidationError marks caller mistakes rejected before any persistence.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// MealService assembles, fetches and deletes meals.
type MealService struct {
	meals      MealStore
	catalog    FoodCatalog
	resolver   Resolver
	classifier Classifier
	log        zerolog.Logger
}

func NewMealService(meals MealStore, catalog FoodCatalog, resolver Resolver, classifier Classifier, log zerolog.Logger) *MealService {
	return &MealService{
		meals:      meals,
		catalog:    catalog,
		resolver:   resolver,
		classifier: classifier,
		log:        log.With().Str("component", "meals").Logger(),
	}
}

// AssembleMeal persists one meal and a portion per component that
// validates against the catalog, all in one transaction. Components
// whose food ID is unknown are dropped with a warning rather than
// rolling back the meal.
func (s *MealService) AssembleMeal(ctx context.Context, ownerID uint, mealType, name, imageRef string, components []ComponentInput) (*MealResult, error) {
	if !models.ValidMealType(mealType) {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid meal_type %q", mealType)}
	}
	for _, c := range components {
		if c.Quantity <= 0 {
			return nil, &ValidationError{Msg: fmt.Sprintf("quantity must be positive, got %v for food %d", c.Quantity, c.FoodID)}
		}
	}

	meal := &models.Meal{
		OwnerID:   ownerID,
		MealType:  mealType,
		Name:      name,
		ImageRef:  imageRef,
		Timestamp: time.Now().UTC(),
	}

	var warnings []ComponentWarning
	for _, c := range components {
		food, err := s.catalog.FindByID(c.FoodID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				s.log.Warn().Uint("food_id", c.FoodID).Msg("dropping unknown food from meal")
				warnings = append(warnings, ComponentWarning{
					Food:   fmt.Sprintf("food_id=%d", c.FoodID),
					Reason: "not found in catalog",
				})
				continue
			}
			return nil, fmt.Errorf("validate component: %w", err)
		}
		meal.Portions = append(meal.Portions, models.Portion{
			FoodID:           food.ID,
			Quantity:         c.Quantity,
			PreparationNotes: c.PreparationNotes,
		})
	}

	if err := s.meals.Create(meal); err != nil {
		return nil, err
	}

	// reload with foods and nutrition attached
	stored, err := s.meals.GetByID(ownerID, meal.ID)
	if err != nil {
		return nil, err
	}
	res := s.FormatMeal(stored)
	res.Warnings = warnings
	return res, nil
}

// AssembleFromPhoto classifies the image, resolves the detected label
// and logs a single-portion meal with the food's typical serving size.
// Classifier and resolution failures degrade to an empty meal with a
// warning, matching the explicit-components path.
func (s *MealService) AssembleFromPhoto(ctx context.Context, ownerID uint, mealType, imageRef string, image []byte) (*MealResult, error) {
	if !models.ValidMealType(mealType) {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid meal_type %q", mealType)}
	}

	meal := &models.Meal{
		OwnerID:   ownerID,
		MealType:  mealType,
		ImageRef:  imageRef,
		Timestamp: time.Now().UTC(),
	}

	var warnings []ComponentWarning
	label, confidence, err := s.classifier.Classify(ctx, image)
	if err != nil {
		s.log.Warn().Err(err).Msg("image classification failed")
		warnings = append(warnings, ComponentWarning{Food: "(image)", Reason: "classification failed"})
	} else {
		meal.Name = label
		food, rerr := s.resolver.Resolve(ctx, label, models.StateCooked)
		if rerr != nil {
			s.log.Warn().Str("label", label).Float64("confidence", confidence).
				Msg("detected food could not be resolved")
			warnings = append(warnings, ComponentWarning{Food: label, Reason: "could not be resolved"})
		} else {
			qty := food.TypicalServingSize
			if qty <= 0 {
				qty = 100 // one reference portion
			}
			meal.Portions = append(meal.Portions, models.Portion{
				FoodID:   food.ID,
				Quantity: qty,
			})
		}
	}

	if err := s.meals.Create(meal); err != nil {
		return nil, err
	}
	stored, err := s.meals.GetByID(ownerID, meal.ID)
	if err != nil {
		return nil, err
	}
	res := s.FormatMeal(stored)
	res.Warnings = warnings
	return res, nil
}

func (s *MealService) GetMeal(ownerID, mealID uint) (*MealResult, error) {
	meal, err := s.meals.GetByID(ownerID, mealID)
	if err != nil {
		return nil, err
	}
	return s.FormatMeal(meal), nil
}

func (s *MealService) ListMeals(ownerID uint, offset, limit int) ([]*MealResult, error) {
	meals, err := s.meals.ListByOwner(ownerID, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*MealResult, 0, len(meals))
	for i := range meals {
		out = append(out, s.FormatMeal(&meals[i]))
	}
	return out, nil
}

func (s *MealService) DeleteMeal(ownerID, mealID uint) error {
	return s.meals.Delete(ownerID, mealID)
}

// FormatMeal computes fresh nutrition and the component list for a
// loaded meal. Aggregation is cheap enough to recompute on every call;
// nothing here is cached.
func (s *MealService) FormatMeal(meal *models.Meal) *MealResult {
	portions := make([]nutrition.PortionInput, 0, len(meal.Portions))
	components := make([]ComponentResult, 0, len(meal.Portions))
	for i := range meal.Portions {
		p := &meal.Portions[i]
		portions = append(portions, nutrition.PortionInput{
			Profile: p.Food.Profile(),
			Grams:   p.Quantity,
		})
		components = append(components, ComponentResult{
			FoodID:           p.FoodID,
			FoodName:         p.Food.Name,
			Quantity:         p.Quantity,
			PreparationNotes: p.PreparationNotes,
		})
	}

	return &MealResult{
		ID:         meal.ID,
		MealType:   meal.MealType,
		Name:       meal.Name,
		ImageRef:   meal.ImageRef,
		Timestamp:  meal.Timestamp,
		OwnerID:    meal.OwnerID,
		Nutrition:  nutrition.Aggregate(portions),
		Components: components,
	}
}
