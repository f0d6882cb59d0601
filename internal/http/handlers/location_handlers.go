package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/dogfinder/internal/models"
	repo "github.com/rogerio-castellano/dogfinder/internal/repo"
)

// GetLocationsHandler godoc
// @Summary Fetch locations by zip code
// @Tags locations
// @Accept json
// @Produce json
// @Param zipCodes body []string true "up to 100 zip codes"
// @Success 200 {array} models.Location
// @Failure 400 {array} ValidationError
// @Router /locations [post]
func GetLocationsHandler(w http.ResponseWriter, r *http.Request) {
	zips, ok := readIDs(w, r)
	if !ok {
		return
	}
	locs, err := locationRepo.GetByZipCodes(r.Context(), zips)
	if err != nil {
		logger.Error("location batch failed", zap.Error(err))
		http.Error(w, "could not fetch locations", http.StatusInternalServerError)
		return
	}
	if locs == nil {
		locs = []models.Location{}
	}
	respond(w, http.StatusOK, locs)
}

// SearchLocationsHandler godoc
// @Summary Search locations
// @Description Filters by city, states and a geo bounding box given as edges or corners.
// @Tags locations
// @Accept json
// @Produce json
// @Param query body LocationSearchRequest true "search"
// @Success 200 {object} LocationSearchResult
// @Failure 400 {string} string "Invalid query"
// @Router /locations/search [post]
func SearchLocationsHandler(w http.ResponseWriter, r *http.Request) {
	var req LocationSearchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	f := repo.LocationFilter{City: req.City, States: req.States}
	if req.GeoBoundingBox != nil {
		top, left, bottom, right, ok := req.GeoBoundingBox.Edges()
		if !ok {
			http.Error(w, "geoBoundingBox needs four edges or two opposite corners", http.StatusBadRequest)
			return
		}
		f.Box = &repo.BoxEdges{Top: top, Left: left, Bottom: bottom, Right: right}
	}

	size, from := DefaultSearchSize, 0
	if req.Size != nil {
		size = *req.Size
	}
	if req.From != nil {
		from = *req.From
	}
	if size < 1 || size > MaxLocationSize || from < 0 {
		http.Error(w, "size must be 1-100 and from non-negative", http.StatusBadRequest)
		return
	}
	f.Offset, f.Limit = &from, &size

	locs, total, err := locationRepo.Search(r.Context(), f)
	if err != nil {
		logger.Error("location search failed", zap.Error(err))
		http.Error(w, "could not search locations", http.StatusInternalServerError)
		return
	}
	if locs == nil {
		locs = []models.Location{}
	}
	respond(w, http.StatusOK, LocationSearchResult{Results: locs, Total: total})
}
