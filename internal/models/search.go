package models

// SearchFilters are the query parameters of GET /dogs/search. Nil pointers and
// nil slices are left off the wire.
type SearchFilters struct {
	Breeds   []string
	ZipCodes []string
	AgeMin   *int
	AgeMax   *int
	Sort     string
	Size     *int
	From     *int
}

// SearchResult is the response of GET /dogs/search. Next and Prev are the
// service's cursors for the adjacent pages.
type SearchResult struct {
	ResultIDs []string `json:"resultIds"`
	Total     int      `json:"total"`
	Next      string   `json:"next,omitempty"`
	Prev      string   `json:"prev,omitempty"`
}

// Pagination is derived from the last successful search.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalDogs   int `json:"totalDogs"`
}

// FirstPage is the pagination shown before any result has been loaded, and
// after an empty result.
func FirstPage() Pagination {
	return Pagination{CurrentPage: 1, TotalPages: 1, TotalDogs: 0}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
