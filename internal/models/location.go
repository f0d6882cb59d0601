package models

// Location describes a US zip code.
type Location struct {
	ZipCode   string  `json:"zip_code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	County    string  `json:"county"`
}

// Coordinates is a single lat/lon pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BoundingBox is a rectangular lat/lon region. Corner points are accepted by
// the service as an alternative to the four edges.
type BoundingBox struct {
	Top         *float64     `json:"top,omitempty"`
	Left        *float64     `json:"left,omitempty"`
	Bottom      *float64     `json:"bottom,omitempty"`
	Right       *float64     `json:"right,omitempty"`
	BottomLeft  *Coordinates `json:"bottom_left,omitempty"`
	TopRight    *Coordinates `json:"top_right,omitempty"`
	BottomRight *Coordinates `json:"bottom_right,omitempty"`
	TopLeft     *Coordinates `json:"top_left,omitempty"`
}

// NewBoundingBox builds a box from its four edges.
func NewBoundingBox(top, left, bottom, right float64) BoundingBox {
	return BoundingBox{Top: &top, Left: &left, Bottom: &bottom, Right: &right}
}

// Edges resolves the box to top, left, bottom, right, preferring explicit
// edges and falling back to corner points. ok is false when the box does not
// describe a full rectangle.
func (b BoundingBox) Edges() (top, left, bottom, right float64, ok bool) {
	if b.Top != nil && b.Left != nil && b.Bottom != nil && b.Right != nil {
		return *b.Top, *b.Left, *b.Bottom, *b.Right, true
	}
	switch {
	case b.BottomLeft != nil && b.TopRight != nil:
		return b.TopRight.Lat, b.BottomLeft.Lon, b.BottomLeft.Lat, b.TopRight.Lon, true
	case b.TopLeft != nil && b.BottomRight != nil:
		return b.TopLeft.Lat, b.TopLeft.Lon, b.BottomRight.Lat, b.BottomRight.Lon, true
	}
	return 0, 0, 0, 0, false
}

// Contains reports whether a point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lon float64) bool {
	top, left, bottom, right, ok := b.Edges()
	if !ok {
		return false
	}
	return lat <= top && lat >= bottom && lon >= left && lon <= right
}

// LocationSearch is the body of POST /locations/search.
type LocationSearch struct {
	City           string       `json:"city,omitempty"`
	States         []string     `json:"states,omitempty"`
	GeoBoundingBox *BoundingBox `json:"geoBoundingBox,omitempty"`
	Size           *int         `json:"size,omitempty"`
	From           *int         `json:"from,omitempty"`
}

// LocationSearchResult is the response of POST /locations/search.
type LocationSearchResult struct {
	Results []Location `json:"results"`
	Total   int        `json:"total"`
}

// ZipCodes returns the zip codes of the result in order.
func (r LocationSearchResult) ZipCodes() []string {
	zips := make([]string, 0, len(r.Results))
	for _, l := range r.Results {
		zips = append(zips, l.ZipCode)
	}
	return zips
}
