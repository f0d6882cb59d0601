package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

var errMatchNotFound = errors.New("matched dog record not returned")

// Pending is a search request built from a snapshot of the filters.
type Pending struct {
	Page        int
	PageSize    int
	Filters     models.SearchFilters
	Generation  uint64
	ScrollToTop bool
}

// Outcome is the result of running a Pending search.
type Outcome struct {
	Pending
	Result models.SearchResult
	Dogs   []models.Dog
	Err    error
}

// Run performs the search and, when it found anything, loads the dog
// records. It does not touch any Machine and is safe to call from another
// goroutine.
func (p Pending) Run(ctx context.Context, api DogAPI) Outcome {
	out := Outcome{Pending: p}

	res, err := api.SearchDogs(ctx, p.Filters)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = res
	if len(res.ResultIDs) == 0 {
		return out
	}

	dogs, err := api.GetDogs(ctx, res.ResultIDs)
	if err != nil {
		out.Err = err
		return out
	}
	out.Dogs = inResultOrder(res.ResultIDs, dogs)
	return out
}

// inResultOrder lines the batch response up with the search order, since the
// batch endpoint does not promise to keep it.
func inResultOrder(ids []string, dogs []models.Dog) []models.Dog {
	byID := models.DogsByID(dogs)
	ordered := make([]models.Dog, 0, len(dogs))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			ordered = append(ordered, d)
		}
	}
	return ordered
}

// FetchMatch asks for a match among ids and loads the matched dog.
func FetchMatch(ctx context.Context, api DogAPI, ids []string) (models.Dog, error) {
	id, err := api.GetMatch(ctx, ids)
	if err != nil {
		return models.Dog{}, err
	}
	dogs, err := api.GetDogs(ctx, []string{id})
	if err != nil {
		return models.Dog{}, err
	}
	if d, ok := models.DogsByID(dogs)[id]; ok {
		return d, nil
	}
	return models.Dog{}, fmt.Errorf("dog %s: %w", id, errMatchNotFound)
}

// FetchBreeds loads the breed list for CompleteBreeds.
func FetchBreeds(ctx context.Context, api DogAPI) ([]string, error) {
	return api.ListBreeds(ctx)
}
