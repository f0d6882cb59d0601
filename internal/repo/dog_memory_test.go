package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

func intPtr(v int) *int { return &v }

func seededDogs(t *testing.T) *InMemoryDogRepository {
	t.Helper()
	r := NewInMemoryDogRepository()
	for _, d := range []models.Dog{
		{ID: "a", Name: "Rex", Breed: "Boxer", Age: 2, ZipCode: "10001"},
		{ID: "b", Name: "Ace", Breed: "Beagle", Age: 7, ZipCode: "10002"},
		{ID: "c", Name: "Max", Breed: "Boxer", Age: 5, ZipCode: "10002"},
		{ID: "d", Name: "Bo", Breed: "Pug", Age: 1, ZipCode: "10001"},
	} {
		_, err := r.Create(context.Background(), d)
		require.NoError(t, err)
	}
	return r
}

func TestParseSort(t *testing.T) {
	s, err := ParseSort("age:desc")
	require.NoError(t, err)
	assert.Equal(t, SortSpec{Field: "age", Desc: true}, s)

	s, err = ParseSort("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSort, s)

	for _, bad := range []string{"age", "zip:asc", "age:up"} {
		_, err := ParseSort(bad)
		assert.ErrorIs(t, err, ErrInvalidSort, bad)
	}
}

func TestInMemoryDogSearch(t *testing.T) {
	r := seededDogs(t)
	ctx := context.Background()

	ids, total, err := r.Search(ctx, DogFilter{Breeds: []string{"Boxer"}, Sort: SortSpec{Field: "age", Desc: true}})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"c", "a"}, ids)

	ids, total, err = r.Search(ctx, DogFilter{AgeMin: intPtr(2), AgeMax: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.ElementsMatch(t, []string{"a", "c"}, ids)

	ids, total, err = r.Search(ctx, DogFilter{ZipCodes: []string{"10001"}, Sort: SortSpec{Field: "name"}})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"d", "a"}, ids)
}

func TestInMemoryDogSearchPaging(t *testing.T) {
	r := seededDogs(t)
	ctx := context.Background()

	ids, total, err := r.Search(ctx, DogFilter{Offset: intPtr(1), Limit: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"a", "c"}, ids, "breed:asc then id")

	ids, total, err = r.Search(ctx, DogFilter{Offset: intPtr(10), Limit: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Empty(t, ids)
}

func TestInMemoryDogBreedsAndBatch(t *testing.T) {
	r := seededDogs(t)
	ctx := context.Background()

	breeds, err := r.Breeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beagle", "Boxer", "Pug"}, breeds)

	dogs, err := r.GetByIDs(ctx, []string{"d", "missing", "a"})
	require.NoError(t, err)
	require.Len(t, dogs, 2)
	assert.Equal(t, "d", dogs[0].ID)
	assert.Equal(t, "a", dogs[1].ID)

	_, err = r.Create(ctx, models.Dog{ID: "a"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	created, err := r.Create(ctx, models.Dog{Name: "New", Breed: "Pug"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestInMemoryLocationSearch(t *testing.T) {
	r := NewInMemoryLocationRepository()
	ctx := context.Background()
	for _, l := range []models.Location{
		{ZipCode: "10001", City: "New York", State: "NY", Latitude: 40.75, Longitude: -73.99},
		{ZipCode: "94105", City: "San Francisco", State: "CA", Latitude: 37.78, Longitude: -122.39},
		{ZipCode: "66952", City: "Lebanon", State: "KS", Latitude: 39.81, Longitude: -98.55},
	} {
		require.NoError(t, r.Create(ctx, l))
	}

	locs, total, err := r.Search(ctx, LocationFilter{Box: &BoxEdges{Top: 41, Left: -100, Bottom: 39, Right: -97}})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "66952", locs[0].ZipCode)

	locs, total, err = r.Search(ctx, LocationFilter{States: []string{"ny", "CA"}, Limit: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, locs, 1)
	assert.Equal(t, "10001", locs[0].ZipCode)

	got, err := r.GetByZipCodes(ctx, []string{"94105", "00000"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "San Francisco", got[0].City)
}
