package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sambit-git/ai-nutri-journal/models"
	"github.com/sambit-git/ai-nutri-journal/nutrition"
)

// FoodSearcher extends the catalog with a substring search for the
// browse endpoint.
type FoodSearcher interface {
	FoodCatalog
	Search(q string, limit int) ([]models.FoodItem, error)
}

// FoodMatch is one search hit: either a catalog row (with ID) or a
// provider candidate not yet backfilled (ID zero, Verified false).
type FoodMatch struct {
	FoodID    uint              `json:"food_id,omitempty"`
	Name      string            `json:"name"`
	State     string            `json:"state,omitempty"`
	Verified  bool              `json:"verified"`
	Local     bool              `json:"local"`
	Nutrition nutrition.Profile `json:"nutrition"`
}

// FoodService backs the food search/browse endpoint.
type FoodService struct {
	catalog  FoodSearcher
	provider ExternalProvider
	log      zerolog.Logger
}

func NewFoodService(catalog FoodSearcher, provider ExternalProvider, log zerolog.Logger) *FoodService {
	return &FoodService{
		catalog:  catalog,
		provider: provider,
		log:      log.With().Str("component", "foods").Logger(),
	}
}

// Search returns catalog matches for q; when the catalog has none, it
// falls through to provider candidates so the client can see what a
// meal component would resolve to. Provider failures degrade to an
// empty result, not an error.
func (s *FoodService) Search(ctx context.Context, q string, limit int) ([]FoodMatch, error) {
	items, err := s.catalog.Search(q, limit)
	if err != nil {
		return nil, err
	}

	out := make([]FoodMatch, 0, len(items))
	for i := range items {
		f := &items[i]
		out = append(out, FoodMatch{
			FoodID:    f.ID,
			Name:      f.Name,
			State:     f.State,
			Verified:  f.IsVerified,
			Local:     true,
			Nutrition: f.Profile(),
		})
	}
	if len(out) > 0 {
		return out, nil
	}

	candidates, err := s.provider.Search(ctx, q, limit)
	if err != nil {
		s.log.Warn().Err(err).Str("query", q).Msg("provider search failed")
		return []FoodMatch{}, nil
	}
	for _, c := range candidates {
		out = append(out, FoodMatch{
			Name:      c.Description,
			Nutrition: c.Profile,
		})
	}
	return out, nil
}
