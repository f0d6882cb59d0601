package fetchapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

// ListBreeds returns every breed name known to the service.
func (c *Client) ListBreeds(ctx context.Context) ([]string, error) {
	var breeds []string
	if err := c.doRequest(ctx, OpListBreeds, http.MethodGet, "/dogs/breeds", nil, &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

// SearchDogs runs a filtered search and returns one page of dog ids.
func (c *Client) SearchDogs(ctx context.Context, f models.SearchFilters) (models.SearchResult, error) {
	path := "/dogs/search"
	if q := EncodeFilters(f); q != "" {
		path += "?" + q
	}
	return c.search(ctx, path)
}

// FollowPage loads the page a previous result points at through its Next or
// Prev cursor. The cursor is a path relative to the base URL.
func (c *Client) FollowPage(ctx context.Context, cursor string) (models.SearchResult, error) {
	if !strings.HasPrefix(cursor, "/") {
		cursor = "/" + cursor
	}
	return c.search(ctx, cursor)
}

func (c *Client) search(ctx context.Context, path string) (models.SearchResult, error) {
	var res models.SearchResult
	if err := c.doRequest(ctx, OpSearchDogs, http.MethodGet, path, nil, &res); err != nil {
		return models.SearchResult{}, err
	}
	return res, nil
}

// EncodeFilters turns search filters into a query string. List filters are
// repeated parameters and unset optional filters are left out.
func EncodeFilters(f models.SearchFilters) string {
	params := url.Values{}
	for _, b := range f.Breeds {
		params.Add("breeds", b)
	}
	for _, z := range f.ZipCodes {
		params.Add("zipCodes", z)
	}
	if f.AgeMin != nil {
		params.Set("ageMin", strconv.Itoa(*f.AgeMin))
	}
	if f.AgeMax != nil {
		params.Set("ageMax", strconv.Itoa(*f.AgeMax))
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}
	if f.Size != nil {
		params.Set("size", strconv.Itoa(*f.Size))
	}
	if f.From != nil {
		params.Set("from", strconv.Itoa(*f.From))
	}
	return params.Encode()
}

// GetDogs fetches full records for up to MaxBatch ids. The order of the
// returned dogs is not guaranteed to follow ids.
func (c *Client) GetDogs(ctx context.Context, ids []string) ([]models.Dog, error) {
	if len(ids) > MaxBatch {
		return nil, &RequestFailedError{Operation: OpGetDogs, Err: ErrTooManyIDs}
	}
	var dogs []models.Dog
	if err := c.doRequest(ctx, OpGetDogs, http.MethodPost, "/dogs", ids, &dogs); err != nil {
		return nil, err
	}
	return dogs, nil
}

// GetMatch asks the service to pick one dog out of favoriteIDs.
func (c *Client) GetMatch(ctx context.Context, favoriteIDs []string) (string, error) {
	if len(favoriteIDs) < 2 {
		return "", &RequestFailedError{Operation: OpGetMatch, Err: ErrTooFewIDs}
	}
	var m models.Match
	if err := c.doRequest(ctx, OpGetMatch, http.MethodPost, "/dogs/match", favoriteIDs, &m); err != nil {
		return "", err
	}
	return m.Match, nil
}
