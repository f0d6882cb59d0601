package search

import (
	"errors"
	"slices"
	"strings"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

const (
	DefaultSort     = "breed:asc"
	DefaultPageSize = 20

	MinAge = 0
	MaxAge = 20
)

var ErrInvalidSort = errors.New("sort must be breed, name or age followed by :asc or :desc")

// SortOptions are the sort keys offered to the user, in display order.
var SortOptions = []SortOption{
	{Key: "breed:asc", Label: "Breed (A-Z)"},
	{Key: "breed:desc", Label: "Breed (Z-A)"},
	{Key: "age:asc", Label: "Age (Youngest)"},
	{Key: "age:desc", Label: "Age (Oldest)"},
}

type SortOption struct {
	Key   string
	Label string
}

// ValidSort reports whether s has the form <field>:<asc|desc> for a field the
// service can sort on.
func ValidSort(s string) bool {
	field, dir, ok := strings.Cut(s, ":")
	if !ok {
		return false
	}
	switch field {
	case "breed", "name", "age":
	default:
		return false
	}
	return dir == "asc" || dir == "desc"
}

// SortLabel returns the display label of a sort key, or the key itself.
func SortLabel(key string) string {
	for _, o := range SortOptions {
		if o.Key == key {
			return o.Label
		}
	}
	return key
}

type AgeRange struct {
	Min int
	Max int
}

func DefaultAgeRange() AgeRange {
	return AgeRange{Min: MinAge, Max: MaxAge}
}

// Clamp keeps both bounds inside [MinAge, MaxAge] with Min <= Max.
func (a AgeRange) Clamp() AgeRange {
	a.Min = min(max(a.Min, MinAge), MaxAge)
	a.Max = min(max(a.Max, MinAge), MaxAge)
	if a.Min > a.Max {
		a.Min, a.Max = a.Max, a.Min
	}
	return a
}

// FilterState is the filter selection being edited, before it is turned into
// a request.
type FilterState struct {
	ZipQuery string
	Breeds   []string
	Age      AgeRange
	Sort     string
}

func DefaultFilterState() FilterState {
	return FilterState{Age: DefaultAgeRange(), Sort: DefaultSort}
}

// Dirty reports whether the selection differs from DefaultFilterState.
func (f FilterState) Dirty() bool {
	def := DefaultFilterState()
	return f.ZipQuery != def.ZipQuery ||
		len(f.Breeds) > 0 ||
		f.Age != def.Age ||
		f.Sort != def.Sort
}

func (f FilterState) HasBreed(breed string) bool {
	return slices.Contains(f.Breeds, breed)
}

// Filters builds the request for one page. A zero age bound is never sent, so
// a minimum of 0 means "no lower bound" on the wire.
func (f FilterState) Filters(page, pageSize int) models.SearchFilters {
	if page < 1 {
		page = 1
	}
	sf := models.SearchFilters{
		Sort: f.Sort,
		Size: models.IntPtr(pageSize),
		From: models.IntPtr((page - 1) * pageSize),
	}
	if len(f.Breeds) > 0 {
		sf.Breeds = slices.Clone(f.Breeds)
	}
	if zips := ParseZipQuery(f.ZipQuery); len(zips) > 0 {
		sf.ZipCodes = zips
	}
	if f.Age.Min != 0 {
		sf.AgeMin = models.IntPtr(f.Age.Min)
	}
	if f.Age.Max != 0 {
		sf.AgeMax = models.IntPtr(f.Age.Max)
	}
	return sf
}

// ParseZipQuery splits a comma separated zip list, dropping blanks.
func ParseZipQuery(q string) []string {
	var zips []string
	for _, z := range strings.Split(q, ",") {
		if z = strings.TrimSpace(z); z != "" {
			zips = append(zips, z)
		}
	}
	return zips
}

// FilterBreedsByText narrows a breed list to the names containing query,
// ignoring case. It does not touch the selection.
func FilterBreedsByText(breeds []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(breeds)
	}
	var out []string
	for _, b := range breeds {
		if strings.Contains(strings.ToLower(b), q) {
			out = append(out, b)
		}
	}
	return out
}
