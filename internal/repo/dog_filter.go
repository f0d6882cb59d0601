package repo

import (
	"strings"
)

// DogFilter narrows a dog search. Nil pointers and empty lists mean no
// constraint.
type DogFilter struct {
	Breeds   []string
	ZipCodes []string
	AgeMin   *int
	AgeMax   *int
	Sort     SortSpec
	Offset   *int
	Limit    *int
}

type SortSpec struct {
	Field string
	Desc  bool
}

var DefaultSort = SortSpec{Field: "breed"}

// ParseSort reads "field:dir". An empty string means DefaultSort.
func ParseSort(s string) (SortSpec, error) {
	if s == "" {
		return DefaultSort, nil
	}
	field, dir, ok := strings.Cut(s, ":")
	if !ok {
		return SortSpec{}, ErrInvalidSort
	}
	switch field {
	case "breed", "name", "age":
	default:
		return SortSpec{}, ErrInvalidSort
	}
	switch dir {
	case "asc":
		return SortSpec{Field: field}, nil
	case "desc":
		return SortSpec{Field: field, Desc: true}, nil
	}
	return SortSpec{}, ErrInvalidSort
}

func (s SortSpec) String() string {
	if s.Desc {
		return s.Field + ":desc"
	}
	return s.Field + ":asc"
}

type LocationFilter struct {
	City   string
	States []string
	Box    *BoxEdges
	Offset *int
	Limit  *int
}

// BoxEdges is a resolved bounding box.
type BoxEdges struct {
	Top, Left, Bottom, Right float64
}

func (b BoxEdges) Contains(lat, lon float64) bool {
	return lat <= b.Top && lat >= b.Bottom && lon >= b.Left && lon <= b.Right
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// page slices a filtered result by offset and limit.
func page[T any](items []T, offset, limit *int) []T {
	start := 0
	if offset != nil {
		start = clamp(*offset, 0, len(items))
	}
	end := len(items)
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, len(items))
	}
	return items[start:end]
}
