package repo

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

// InMemoryLocationRepository is an in-memory implementation of
// LocationRepository.
type InMemoryLocationRepository struct {
	mu        sync.RWMutex
	locations []models.Location
	byZip     map[string]int
}

func NewInMemoryLocationRepository() *InMemoryLocationRepository {
	return &InMemoryLocationRepository{byZip: make(map[string]int)}
}

func matchesLocation(l models.Location, f LocationFilter) bool {
	if f.City != "" && !strings.EqualFold(l.City, f.City) {
		return false
	}
	if len(f.States) > 0 && !slices.ContainsFunc(f.States, func(s string) bool { return strings.EqualFold(s, l.State) }) {
		return false
	}
	if f.Box != nil && !f.Box.Contains(l.Latitude, l.Longitude) {
		return false
	}
	return true
}

func (r *InMemoryLocationRepository) Create(ctx context.Context, loc models.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byZip[loc.ZipCode]; exists {
		return ErrDuplicatedValueUnique
	}
	r.byZip[loc.ZipCode] = len(r.locations)
	r.locations = append(r.locations, loc)
	return nil
}

func (r *InMemoryLocationRepository) GetByZipCodes(ctx context.Context, zipCodes []string) ([]models.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	locs := []models.Location{}
	for _, z := range zipCodes {
		if i, ok := r.byZip[z]; ok {
			locs = append(locs, r.locations[i])
		}
	}
	return locs, nil
}

func (r *InMemoryLocationRepository) Search(ctx context.Context, f LocationFilter) ([]models.Location, int, error) {
	r.mu.RLock()
	var filtered []models.Location
	for _, l := range r.locations {
		if matchesLocation(l, f) {
			filtered = append(filtered, l)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(filtered, func(a, b models.Location) int { return strings.Compare(a.ZipCode, b.ZipCode) })
	return slices.Clone(page(filtered, f.Offset, f.Limit)), len(filtered), nil
}
