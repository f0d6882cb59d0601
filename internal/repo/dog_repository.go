package repo

import (
	"context"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

// DogRepository defines the data operations behind the /dogs endpoints.
type DogRepository interface {
	Create(ctx context.Context, dog models.Dog) (models.Dog, error)
	Breeds(ctx context.Context) ([]string, error)
	Search(ctx context.Context, f DogFilter) ([]string, int, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Dog, error)
}

// LocationRepository defines the data operations behind the /locations
// endpoints.
type LocationRepository interface {
	Create(ctx context.Context, loc models.Location) error
	GetByZipCodes(ctx context.Context, zipCodes []string) ([]models.Location, error)
	Search(ctx context.Context, f LocationFilter) ([]models.Location, int, error)
}
