package fetchapi

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

// GetLocations resolves up to MaxBatch zip codes.
func (c *Client) GetLocations(ctx context.Context, zipCodes []string) ([]models.Location, error) {
	if len(zipCodes) > MaxBatch {
		return nil, &RequestFailedError{Operation: OpGetLocations, Err: ErrTooManyIDs}
	}
	var locs []models.Location
	if err := c.doRequest(ctx, OpGetLocations, http.MethodPost, "/locations", zipCodes, &locs); err != nil {
		return nil, err
	}
	return locs, nil
}

func (c *Client) SearchLocations(ctx context.Context, params models.LocationSearch) (models.LocationSearchResult, error) {
	var res models.LocationSearchResult
	if err := c.doRequest(ctx, OpSearchLocations, http.MethodPost, "/locations/search", params, &res); err != nil {
		return models.LocationSearchResult{}, err
	}
	return res, nil
}

// SearchLocationsByArea lists the locations inside box.
func (c *Client) SearchLocationsByArea(ctx context.Context, box models.BoundingBox) (models.LocationSearchResult, error) {
	return c.SearchLocations(ctx, models.LocationSearch{GeoBoundingBox: &box})
}
