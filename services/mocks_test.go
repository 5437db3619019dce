package services

import (
	"context"
	"strings"
	"time"

	"github.com/sambit-git/ai-nutri-journal/models"
	"github.com/sambit-git/ai-nutri-journal/repositories"
)

// in-memory FoodCatalog
type fakeCatalog struct {
	byKey     map[string]*models.FoodItem
	nextID    uint
	insertErr error
	inserts   int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{byKey: map[string]*models.FoodItem{}}
}

func (f *fakeCatalog) add(item *models.FoodItem) *models.FoodItem {
	f.nextID++
	item.ID = f.nextID
	item.NameKey = models.NormalizeName(item.Name)
	f.byKey[item.NameKey] = item
	return item
}

func (f *fakeCatalog) FindByName(name string) (*models.FoodItem, error) {
	if item, ok := f.byKey[models.NormalizeName(name)]; ok {
		return item, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCatalog) FindByID(id uint) (*models.FoodItem, error) {
	for _, item := range f.byKey {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCatalog) InsertIfAbsent(candidate *models.FoodItem) (*models.FoodItem, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if existing, ok := f.byKey[models.NormalizeName(candidate.Name)]; ok {
		return existing, nil
	}
	f.inserts++
	return f.add(candidate), nil
}

func (f *fakeCatalog) Search(q string, limit int) ([]models.FoodItem, error) {
	var out []models.FoodItem
	key := models.NormalizeName(q)
	for _, item := range f.byKey {
		if len(out) >= limit && limit > 0 {
			break
		}
		if strings.Contains(item.NameKey, key) {
			out = append(out, *item)
		}
	}
	return out, nil
}

// stub external provider
type fakeProvider struct {
	candidates []FoodCandidate
	err        error
	calls      int
	lastQuery  string
}

func (f *fakeProvider) Search(_ context.Context, query string, _ int) ([]FoodCandidate, error) {
	f.calls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

// stub resolver
type fakeResolver struct {
	items map[string]*models.FoodItem
	err   error
}

func (f *fakeResolver) Resolve(_ context.Context, name, _ string) (*models.FoodItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if item, ok := f.items[models.NormalizeName(name)]; ok {
		return item, nil
	}
	return nil, ErrFoodNotFound
}

// stub classifier
type fakeClassifier struct {
	label      string
	confidence float64
	err        error
}

func (f *fakeClassifier) Classify(_ context.Context, _ []byte) (string, float64, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	return f.label, f.confidence, nil
}

// in-memory MealStore; GetByID attaches foods from the catalog the way
// the real repository preloads them
type fakeMealStore struct {
	meals   map[uint]*models.Meal
	catalog *fakeCatalog
	nextID  uint
}

func newFakeMealStore(catalog *fakeCatalog) *fakeMealStore {
	return &fakeMealStore{meals: map[uint]*models.Meal{}, catalog: catalog}
}

func (f *fakeMealStore) Create(meal *models.Meal) error {
	f.nextID++
	meal.ID = f.nextID
	for i := range meal.Portions {
		meal.Portions[i].MealID = meal.ID
	}
	stored := *meal
	f.meals[meal.ID] = &stored
	return nil
}

func (f *fakeMealStore) load(meal *models.Meal) *models.Meal {
	out := *meal
	out.Portions = make([]models.Portion, len(meal.Portions))
	copy(out.Portions, meal.Portions)
	for i := range out.Portions {
		if food, err := f.catalog.FindByID(out.Portions[i].FoodID); err == nil {
			out.Portions[i].Food = *food
		}
	}
	return &out
}

func (f *fakeMealStore) GetByID(ownerID, mealID uint) (*models.Meal, error) {
	meal, ok := f.meals[mealID]
	if !ok || meal.OwnerID != ownerID {
		return nil, repositories.ErrNotFound
	}
	return f.load(meal), nil
}

func (f *fakeMealStore) ListByOwner(ownerID uint, offset, limit int) ([]models.Meal, error) {
	var out []models.Meal
	for _, m := range f.meals {
		if m.OwnerID == ownerID {
			out = append(out, *f.load(m))
		}
	}
	return out, nil
}

func (f *fakeMealStore) ListByOwnerAndRange(ownerID uint, from, to time.Time) ([]models.Meal, error) {
	var out []models.Meal
	for _, m := range f.meals {
		if m.OwnerID != ownerID {
			continue
		}
		if m.Timestamp.Before(from) || !m.Timestamp.Before(to) {
			continue
		}
		out = append(out, *f.load(m))
	}
	return out, nil
}

func (f *fakeMealStore) Delete(ownerID, mealID uint) error {
	meal, ok := f.meals[mealID]
	if !ok || meal.OwnerID != ownerID {
		return repositories.ErrNotFound
	}
	delete(f.meals, mealID)
	return nil
}

// in-memory GoalStore
type fakeGoalStore struct {
	goals    map[uint]*models.DailyGoal
	progress map[string]*models.DailyProgress
}

func newFakeGoalStore() *fakeGoalStore {
	return &fakeGoalStore{
		goals:    map[uint]*models.DailyGoal{},
		progress: map[string]*models.DailyProgress{},
	}
}

func (f *fakeGoalStore) GetGoal(userID uint) (*models.DailyGoal, error) {
	if g, ok := f.goals[userID]; ok {
		return g, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeGoalStore) UpsertGoal(goal *models.DailyGoal) error {
	f.goals[goal.UserID] = goal
	return nil
}

func (f *fakeGoalStore) UpsertProgress(p *models.DailyProgress) error {
	f.progress[p.Date.Format("2006-01-02")] = p
	return nil
}

func (f *fakeGoalStore) ListProgress(userID uint) ([]models.DailyProgress, error) {
	var out []models.DailyProgress
	for _, p := range f.progress {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}
