package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

// InMemoryDogRepository is an in-memory implementation of DogRepository.
type InMemoryDogRepository struct {
	mu   sync.RWMutex
	dogs []models.Dog
	byID map[string]int
}

func NewInMemoryDogRepository() *InMemoryDogRepository {
	return &InMemoryDogRepository{byID: make(map[string]int)}
}

func matchesFilter(d models.Dog, f DogFilter) bool {
	if len(f.Breeds) > 0 && !slices.Contains(f.Breeds, d.Breed) {
		return false
	}
	if len(f.ZipCodes) > 0 && !slices.Contains(f.ZipCodes, d.ZipCode) {
		return false
	}
	if f.AgeMin != nil && d.Age < *f.AgeMin {
		return false
	}
	if f.AgeMax != nil && d.Age > *f.AgeMax {
		return false
	}
	return true
}

func compareDogs(a, b models.Dog, s SortSpec) int {
	var c int
	switch s.Field {
	case "name":
		c = cmp.Compare(a.Name, b.Name)
	case "age":
		c = cmp.Compare(a.Age, b.Age)
	default:
		c = cmp.Compare(a.Breed, b.Breed)
	}
	if s.Desc {
		c = -c
	}
	if c == 0 {
		c = cmp.Compare(a.ID, b.ID)
	}
	return c
}

// Create stores dog, assigning an id when it has none.
func (r *InMemoryDogRepository) Create(ctx context.Context, dog models.Dog) (models.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dog.ID == "" {
		dog.ID = uuid.NewString()
	}
	if _, exists := r.byID[dog.ID]; exists {
		return models.Dog{}, ErrDuplicatedValueUnique
	}
	r.byID[dog.ID] = len(r.dogs)
	r.dogs = append(r.dogs, dog)
	return dog, nil
}

func (r *InMemoryDogRepository) Breeds(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	breeds := []string{}
	for _, d := range r.dogs {
		if _, ok := seen[d.Breed]; !ok {
			seen[d.Breed] = struct{}{}
			breeds = append(breeds, d.Breed)
		}
	}
	slices.Sort(breeds)
	return breeds, nil
}

func (r *InMemoryDogRepository) Search(ctx context.Context, f DogFilter) ([]string, int, error) {
	r.mu.RLock()
	var filtered []models.Dog
	for _, d := range r.dogs {
		if matchesFilter(d, f) {
			filtered = append(filtered, d)
		}
	}
	r.mu.RUnlock()

	sortSpec := f.Sort
	if sortSpec.Field == "" {
		sortSpec = DefaultSort
	}
	slices.SortFunc(filtered, func(a, b models.Dog) int { return compareDogs(a, b, sortSpec) })

	window := page(filtered, f.Offset, f.Limit)
	ids := make([]string, len(window))
	for i, d := range window {
		ids[i] = d.ID
	}
	return ids, len(filtered), nil
}

// GetByIDs returns the known dogs among ids, in the order asked.
func (r *InMemoryDogRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dogs := []models.Dog{}
	for _, id := range ids {
		if i, ok := r.byID[id]; ok {
			dogs = append(dogs, r.dogs[i])
		}
	}
	return dogs, nil
}

func (r *InMemoryDogRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dogs = nil
	r.byID = make(map[string]int)
}
