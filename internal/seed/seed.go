// Package seed fills the sandbox repositories with a fixed, reproducible set
// of locations and dogs.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/dogfinder/internal/models"
	"github.com/rogerio-castellano/dogfinder/internal/repo"
)

// namespace makes dog ids stable across runs.
var namespace = uuid.MustParse("6f1d3c4e-8a55-4a44-9b0e-0c2f1f7a9d10")

var Breeds = []string{
	"Affenpinscher", "Afghan Hound", "Airedale", "Akita", "Basenji",
	"Beagle", "Bernese Mountain Dog", "Border Collie", "Boston Terrier", "Boxer",
	"Bull Terrier", "Chihuahua", "Cocker Spaniel", "Dachshund", "Dalmatian",
	"Doberman", "German Shepherd", "Golden Retriever", "Great Dane", "Greyhound",
	"Husky", "Labrador Retriever", "Maltese", "Newfoundland", "Papillon",
	"Pomeranian", "Poodle", "Pug", "Rottweiler", "Samoyed",
	"Shiba Inu", "Shih Tzu", "Vizsla", "Weimaraner", "Whippet",
}

var names = []string{
	"Ace", "Bailey", "Bella", "Biscuit", "Bo", "Buddy", "Charlie", "Coco",
	"Daisy", "Duke", "Finn", "Gus", "Hazel", "Juno", "Koda", "Lola",
	"Louie", "Luna", "Max", "Milo", "Nala", "Ollie", "Pepper", "Remy",
	"Rex", "Rosie", "Sadie", "Scout", "Teddy", "Tucker", "Winnie", "Ziggy",
}

// Locations is a spread of real US zip codes across the country.
var Locations = []models.Location{
	{ZipCode: "02108", Latitude: 42.3576, Longitude: -71.0684, City: "Boston", State: "MA", County: "Suffolk"},
	{ZipCode: "10001", Latitude: 40.7506, Longitude: -73.9972, City: "New York", State: "NY", County: "New York"},
	{ZipCode: "19103", Latitude: 39.9525, Longitude: -75.1744, City: "Philadelphia", State: "PA", County: "Philadelphia"},
	{ZipCode: "20001", Latitude: 38.9101, Longitude: -77.0147, City: "Washington", State: "DC", County: "District of Columbia"},
	{ZipCode: "30303", Latitude: 33.7525, Longitude: -84.3888, City: "Atlanta", State: "GA", County: "Fulton"},
	{ZipCode: "33101", Latitude: 25.7791, Longitude: -80.1978, City: "Miami", State: "FL", County: "Miami-Dade"},
	{ZipCode: "37203", Latitude: 36.1505, Longitude: -86.7916, City: "Nashville", State: "TN", County: "Davidson"},
	{ZipCode: "43215", Latitude: 39.9653, Longitude: -83.0045, City: "Columbus", State: "OH", County: "Franklin"},
	{ZipCode: "48226", Latitude: 42.3314, Longitude: -83.0458, City: "Detroit", State: "MI", County: "Wayne"},
	{ZipCode: "60601", Latitude: 41.8858, Longitude: -87.6181, City: "Chicago", State: "IL", County: "Cook"},
	{ZipCode: "64105", Latitude: 39.1025, Longitude: -94.5868, City: "Kansas City", State: "MO", County: "Jackson"},
	{ZipCode: "66952", Latitude: 39.8283, Longitude: -98.5795, City: "Lebanon", State: "KS", County: "Smith"},
	{ZipCode: "67202", Latitude: 37.6872, Longitude: -97.3301, City: "Wichita", State: "KS", County: "Sedgwick"},
	{ZipCode: "68102", Latitude: 41.2587, Longitude: -95.9378, City: "Omaha", State: "NE", County: "Douglas"},
	{ZipCode: "73102", Latitude: 35.4720, Longitude: -97.5210, City: "Oklahoma City", State: "OK", County: "Oklahoma"},
	{ZipCode: "75201", Latitude: 32.7876, Longitude: -96.7994, City: "Dallas", State: "TX", County: "Dallas"},
	{ZipCode: "78701", Latitude: 30.2711, Longitude: -97.7437, City: "Austin", State: "TX", County: "Travis"},
	{ZipCode: "80202", Latitude: 39.7527, Longitude: -104.9992, City: "Denver", State: "CO", County: "Denver"},
	{ZipCode: "84101", Latitude: 40.7566, Longitude: -111.8990, City: "Salt Lake City", State: "UT", County: "Salt Lake"},
	{ZipCode: "85004", Latitude: 33.4514, Longitude: -112.0687, City: "Phoenix", State: "AZ", County: "Maricopa"},
	{ZipCode: "87102", Latitude: 35.0820, Longitude: -106.6482, City: "Albuquerque", State: "NM", County: "Bernalillo"},
	{ZipCode: "90012", Latitude: 34.0614, Longitude: -118.2385, City: "Los Angeles", State: "CA", County: "Los Angeles"},
	{ZipCode: "94105", Latitude: 37.7898, Longitude: -122.3942, City: "San Francisco", State: "CA", County: "San Francisco"},
	{ZipCode: "97204", Latitude: 45.5183, Longitude: -122.6742, City: "Portland", State: "OR", County: "Multnomah"},
	{ZipCode: "98101", Latitude: 47.6114, Longitude: -122.3305, City: "Seattle", State: "WA", County: "King"},
}

// Dogs returns n dogs. The same n always gives the same dogs.
func Dogs(n int) []models.Dog {
	rng := rand.New(rand.NewPCG(42, uint64(n)))
	dogs := make([]models.Dog, n)
	for i := range dogs {
		breed := Breeds[rng.IntN(len(Breeds))]
		dogs[i] = models.Dog{
			ID:      uuid.NewSHA1(namespace, fmt.Appendf(nil, "dog-%d", i)).String(),
			Img:     fmt.Sprintf("https://images.dog.ceo/breeds/%s/%d.jpg", slug(breed), i),
			Name:    names[rng.IntN(len(names))],
			Age:     rng.IntN(15),
			ZipCode: Locations[rng.IntN(len(Locations))].ZipCode,
			Breed:   breed,
		}
	}
	return dogs
}

// Load writes the locations and n dogs into the repositories.
func Load(ctx context.Context, dogs repo.DogRepository, locs repo.LocationRepository, n int) error {
	for _, l := range Locations {
		if err := locs.Create(ctx, l); err != nil {
			return fmt.Errorf("seed location %s: %w", l.ZipCode, err)
		}
	}
	for _, d := range Dogs(n) {
		if _, err := dogs.Create(ctx, d); err != nil {
			return fmt.Errorf("seed dog %s: %w", d.ID, err)
		}
	}
	return nil
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
