package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/sambit-git/ai-nutri-journal/nutrition"
)

// FoodCandidate is one search hit from the external food-composition
// database, reduced to what the resolver needs.
type FoodCandidate struct {
	Description     string
	DataType        string
	ServingSize     float64
	ServingSizeUnit string
	Profile         nutrition.Profile
}

// fdcNutrientNumbers maps USDA FoodData Central nutrient numbers to
// internal keys. One distinct provider ID per key; an ID missing from a
// payload leaves the key absent, never zero.
var fdcNutrientNumbers = map[nutrition.Key]int{
	nutrition.Calories:      1008,
	nutrition.Protein:       1003,
	nutrition.Carbs:         1005,
	nutrition.Fiber:         1079,
	nutrition.Sugars:        2000,
	nutrition.Fats:          1004,
	nutrition.SaturatedFats: 1258,

	nutrition.VitaminA:   1106,
	nutrition.VitaminB1:  1165,
	nutrition.VitaminB2:  1166,
	nutrition.VitaminB3:  1167,
	nutrition.VitaminB6:  1175,
	nutrition.VitaminB7:  1176,
	nutrition.VitaminB9:  1177,
	nutrition.VitaminB12: 1178,
	nutrition.VitaminC:   1162,
	nutrition.VitaminD:   1114,
	nutrition.VitaminE:   1109,
	nutrition.VitaminK:   1185,

	nutrition.Calcium:    1087,
	nutrition.Iron:       1089,
	nutrition.Magnesium:  1090,
	nutrition.Phosphorus: 1091,
	nutrition.Potassium:  1092,
	nutrition.Sodium:     1093,
	nutrition.Zinc:       1095,
	nutrition.Selenium:   1103,
	nutrition.Copper:     1098,
	nutrition.Manganese:  1101,
}

// qualityTiers is the data-quality allow-list. Branded and other
// unvalidated entries are rejected even when the provider returns them.
var qualityTiers = map[string]bool{
	"Foundation":     true,
	"SR Legacy":      true,
	"Survey (FNDDS)": true,
}

// validateNutrientNumbers checks the static mapping once at startup:
// every internal key has an entry and no provider ID is reused for two
// keys.
func validateNutrientNumbers() error {
	seen := make(map[int]nutrition.Key, len(fdcNutrientNumbers))
	for _, k := range nutrition.Keys() {
		id, ok := fdcNutrientNumbers[k]
		if !ok {
			return fmt.Errorf("nutrient key %q has no FDC nutrient number", k)
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("FDC nutrient number %d mapped to both %q and %q", id, prev, k)
		}
		seen[id] = k
	}
	return nil
}

// USDAService talks to the USDA FoodData Central search API.
type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewUSDAService(apiKey, baseURL string, log zerolog.Logger) (*USDAService, error) {
	if err := validateNutrientNumbers(); err != nil {
		return nil, fmt.Errorf("nutrient mapping table: %w", err)
	}
	return &USDAService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("component", "usda").Logger(),
	}, nil
}

type fdcNutrient struct {
	NutrientID int     `json:"nutrientId"`
	Value      float64 `json:"value"`
}

type fdcFood struct {
	FdcID           int           `json:"fdcId"`
	Description     string        `json:"description"`
	DataType        string        `json:"dataType"`
	ServingSize     float64       `json:"servingSize"`
	ServingSizeUnit string        `json:"servingSizeUnit"`
	FoodNutrients   []fdcNutrient `json:"foodNutrients"`
}

type fdcSearchResponse struct {
	Foods []fdcFood `json:"foods"`
}

// Search queries FoodData Central and returns candidates that pass the
// data-quality allow-list, best match first. An empty slice with a nil
// error means the provider answered but nothing qualified.
func (s *USDAService) Search(ctx context.Context, query string, limit int) ([]FoodCandidate, error) {
	if limit <= 0 {
		limit = 5
	}
	u := fmt.Sprintf("%s/foods/search?api_key=%s&query=%s&pageSize=%s",
		s.baseURL,
		url.QueryEscape(s.apiKey),
		url.QueryEscape(query),
		strconv.Itoa(limit),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build FDC search request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call FDC search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read FDC search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FDC search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr fdcSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parse FDC search JSON: %w", err)
	}

	out := make([]FoodCandidate, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		if !qualityTiers[f.DataType] {
			s.log.Debug().Str("description", f.Description).Str("data_type", f.DataType).
				Msg("rejected candidate below quality tier")
			continue
		}
		out = append(out, FoodCandidate{
			Description:     f.Description,
			DataType:        f.DataType,
			ServingSize:     f.ServingSize,
			ServingSizeUnit: f.ServingSizeUnit,
			Profile:         mapFDCNutrients(f.FoodNutrients),
		})
	}
	return out, nil
}

func mapFDCNutrients(raw []fdcNutrient) nutrition.Profile {
	byID := make(map[int]float64, len(raw))
	for _, n := range raw {
		byID[n.NutrientID] = n.Value
	}

	p := nutrition.Profile{}
	for _, k := range nutrition.Keys() {
		if v, ok := byID[fdcNutrientNumbers[k]]; ok {
			p[k] = v
		}
	}
	return p
}
