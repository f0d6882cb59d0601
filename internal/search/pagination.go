package search

import "github.com/rogerio-castellano/dogfinder/internal/models"

// Gap marks elided pages in a PageWindow.
const Gap = 0

func totalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	return max(pages, 1)
}

// PageWindow lists the page buttons to render: the first and last page and
// two pages either side of the current one, with Gap where pages are skipped.
func PageWindow(p models.Pagination) []int {
	var pages []int
	prev := 0
	for page := 1; page <= p.TotalPages; page++ {
		if page != 1 && page != p.TotalPages && (page < p.CurrentPage-2 || page > p.CurrentPage+2) {
			continue
		}
		if prev != 0 && page-prev > 1 {
			pages = append(pages, Gap)
		}
		pages = append(pages, page)
		prev = page
	}
	return pages
}

// ShowingRange returns the 1-based positions of the first and last dog on
// the current page and the total, for "Showing X - Y of N dogs".
func ShowingRange(p models.Pagination, pageSize int) (first, last, total int) {
	if p.TotalDogs == 0 {
		return 0, 0, 0
	}
	first = (p.CurrentPage-1)*pageSize + 1
	last = min(p.CurrentPage*pageSize, p.TotalDogs)
	return first, last, p.TotalDogs
}
