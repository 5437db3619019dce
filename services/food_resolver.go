package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sambit-git/ai-nutri-journal/models"
	"github.com/sambit-git/ai-nutri-journal/repositories"
)

// ErrFoodNotFound is the degraded-success outcome of resolution: the
// food is known neither locally nor to the external provider (or the
// provider could not be reached). Callers proceed without the food
// rather than failing the whole operation.
var ErrFoodNotFound = errors.New("food not found")

// FoodCatalog is the local store consulted before any network call.
type FoodCatalog interface {
	FindByName(name string) (*models.FoodItem, error)
	FindByID(id uint) (*models.FoodItem, error)
	InsertIfAbsent(candidate *models.FoodItem) (*models.FoodItem, error)
}

// ExternalProvider is the food-composition database fallback.
type ExternalProvider interface {
	Search(ctx context.Context, query string, limit int) ([]FoodCandidate, error)
}

// FoodResolver maps a food name to a stored, nutrient-annotated food
// record, backfilling the catalog from the external provider on a local
// miss.
type FoodResolver struct {
	catalog  FoodCatalog
	provider ExternalProvider
	log      zerolog.Logger
}

func NewFoodResolver(catalog FoodCatalog, provider ExternalProvider, log zerolog.Logger) *FoodResolver {
	return &FoodResolver{
		catalog:  catalog,
		provider: provider,
		log:      log.With().Str("component", "resolver").Logger(),
	}
}

// Resolve returns the catalog record for name, fetching and persisting
// it from the external provider when the catalog misses. Local data
// always wins, even when some of its nutrient fields are null; there is
// no retroactive enrichment here. Any provider or persistence failure
// degrades to ErrFoodNotFound.
func (r *FoodResolver) Resolve(ctx context.Context, name, stateHint string) (*models.FoodItem, error) {
	if stateHint == "" {
		stateHint = models.StateRaw
	}

	item, err := r.catalog.FindByName(name)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		r.log.Error().Err(err).Str("food", name).Msg("catalog lookup failed")
		return nil, ErrFoodNotFound
	}

	// Fetch before persisting so no transaction is held open across
	// the network call.
	query := fmt.Sprintf("%s %s", stateHint, name)
	candidates, err := r.provider.Search(ctx, query, 5)
	if err != nil {
		r.log.Warn().Err(err).Str("food", name).Msg("external lookup failed, degrading to not found")
		return nil, ErrFoodNotFound
	}
	if len(candidates) == 0 {
		r.log.Info().Str("food", name).Msg("no qualifying external candidates")
		return nil, ErrFoodNotFound
	}
	best := candidates[0]

	// Persist even when every nutrient field came back absent, so the
	// next resolution of this name stays local.
	candidate := &models.FoodItem{
		Name:               name,
		Description:        best.Description,
		State:              stateHint,
		TypicalServingSize: best.ServingSize,
		ServingUnit:        best.ServingSizeUnit,
		IsVerified:         false,
		Nutrition:          models.NewNutritionalValue(best.Profile),
	}

	stored, err := r.catalog.InsertIfAbsent(candidate)
	if err != nil {
		r.log.Error().Err(err).Str("food", name).Msg("backfill insert failed")
		return nil, ErrFoodNotFound
	}
	r.log.Info().Str("food", name).Str("data_type", best.DataType).
		Int("nutrients", len(best.Profile)).Msg("backfilled food from external provider")
	return stored, nil
}
