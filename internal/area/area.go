// Package area turns a map viewport into the bounding box used to look up zip
// codes for the search filter.
package area

import (
	"context"
	"math"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

const (
	DefaultLat  = 39.8283
	DefaultLng  = -98.5795
	DefaultZoom = 4

	MinZoom = 1
	MaxZoom = 18

	maxLat = 85.0
)

type LatLng struct {
	Lat float64
	Lng float64
}

// LocationSearcher resolves a bounding box to locations.
type LocationSearcher interface {
	SearchLocationsByArea(ctx context.Context, box models.BoundingBox) (models.LocationSearchResult, error)
}

// Offsets returns the half height and half width of the selection rectangle
// at zoom, in degrees. The rectangle halves in size with each zoom level.
func Offsets(zoom int) (lat, lng float64) {
	scale := math.Pow(2, float64(zoom-DefaultZoom))
	return 1 / scale, 2 / scale
}

// BoundsAt is the fixed-size rectangle centred on center at zoom.
func BoundsAt(center LatLng, zoom int) models.BoundingBox {
	latOff, lngOff := Offsets(zoom)
	return models.NewBoundingBox(
		center.Lat+latOff,
		center.Lng-lngOff,
		center.Lat-latOff,
		center.Lng+lngOff,
	)
}

// Selector is the viewport state behind the area overlay.
type Selector struct {
	center LatLng
	zoom   int
}

func NewSelector() *Selector {
	return &Selector{center: LatLng{Lat: DefaultLat, Lng: DefaultLng}, zoom: DefaultZoom}
}

func (s *Selector) Center() LatLng { return s.center }
func (s *Selector) Zoom() int      { return s.zoom }

func (s *Selector) Bounds() models.BoundingBox {
	return BoundsAt(s.center, s.zoom)
}

// Pan moves the centre by dLat and dLng rectangle half-sizes, so one step
// covers the same share of the view at every zoom level.
func (s *Selector) Pan(dLat, dLng float64) {
	latOff, lngOff := Offsets(s.zoom)
	s.center.Lat = math.Max(-maxLat, math.Min(maxLat, s.center.Lat+dLat*latOff))
	s.center.Lng = wrapLng(s.center.Lng + dLng*lngOff)
}

// ZoomBy changes the zoom level, staying within [MinZoom, MaxZoom].
func (s *Selector) ZoomBy(delta int) {
	s.zoom = min(max(s.zoom+delta, MinZoom), MaxZoom)
}

func (s *Selector) Reset() {
	*s = *NewSelector()
}

// Resolve returns the zip codes inside the current rectangle.
func (s *Selector) Resolve(ctx context.Context, api LocationSearcher) ([]string, error) {
	res, err := api.SearchLocationsByArea(ctx, s.Bounds())
	if err != nil {
		return nil, err
	}
	return res.ZipCodes(), nil
}

func wrapLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}
