package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rogerio-castellano/dogfinder/internal/models"
	"github.com/rogerio-castellano/dogfinder/internal/search"
)

const breedRows = 8

func (a App) viewSearch() string {
	p := a.search
	s := a.styles

	if dog, ok := p.machine.Matched(); ok {
		return renderMatch(s, dog)
	}
	if p.showArea {
		return a.viewArea()
	}

	filters := a.viewFilters()
	results := a.viewResults()
	body := lipgloss.JoinHorizontal(lipgloss.Top, filters, "  ", results)

	help := "tab: focus • enter/ctrl+s: search • space: favorite • c: clear favorites • [ ]: page • s: sort • r: reset • m: match • a: map area • ctrl+o: logout"
	return lipgloss.JoinVertical(lipgloss.Left, body, s.Help.Render(help))
}

func (a App) label(f focus, text string) string {
	if a.search.focus == f {
		return a.styles.Focused.Render("▸ " + text)
	}
	return a.styles.Label.Render("  " + text)
}

func (a App) viewFilters() string {
	p := a.search
	s := a.styles
	f := p.machine.Filters()
	var b strings.Builder

	b.WriteString(a.label(focusBreeds, "Breeds"))
	b.WriteString("\n")
	b.WriteString(p.breedQuery.View())
	b.WriteString("\n")
	breeds := p.visibleBreeds()
	start := max(0, min(p.breedCursor-breedRows/2, len(breeds)-breedRows))
	for i := start; i < len(breeds) && i < start+breedRows; i++ {
		box := "[ ]"
		if f.HasBreed(breeds[i]) {
			box = "[x]"
		}
		line := box + " " + breeds[i]
		if p.focus == focusBreeds && i == p.breedCursor {
			line = s.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(breeds) == 0 {
		b.WriteString(s.Muted.Render("no breeds") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(a.label(focusAge, "Age"))
	b.WriteString(fmt.Sprintf("  %d - %d years\n", f.Age.Min, f.Age.Max))

	b.WriteString("\n")
	b.WriteString(a.label(focusZip, "Zip codes"))
	b.WriteString("\n")
	b.WriteString(p.zip.View())
	b.WriteString("\n\n")

	b.WriteString(s.Label.Render("Sort: ") + search.SortLabel(f.Sort) + "\n")
	b.WriteString(s.Label.Render("Favorites: ") + strconv.Itoa(len(p.machine.Favorites())))
	if p.machine.IsDirty() {
		b.WriteString("\n" + s.Muted.Render("filters changed (r to reset)"))
	}
	return s.Panel.Width(36).Render(b.String())
}

func (a App) viewResults() string {
	p := a.search
	s := a.styles
	var b strings.Builder

	b.WriteString(a.label(focusGrid, "Dogs"))
	if p.busy() {
		b.WriteString(" " + a.spinner.View())
	}
	b.WriteString("\n")

	dogs := p.machine.Dogs()
	if len(dogs) == 0 {
		b.WriteString(s.Muted.Render("No dogs to show"))
		return s.Panel.Render(b.String())
	}

	for i, d := range dogs {
		heart := "  "
		if p.machine.IsFavorite(d.ID) {
			heart = s.Favorite.Render("♥ ")
		}
		line := fmt.Sprintf("%-18s %-22s %3s  %s", truncate(d.Name, 18), truncate(d.Breed, 22), ageText(d.Age), d.ZipCode)
		if p.focus == focusGrid && i == p.dogCursor {
			line = s.Selected.Render(line)
		}
		b.WriteString(heart + line + "\n")
	}

	first, last, total := p.machine.ShowingRange()
	b.WriteString("\n")
	b.WriteString(renderPager(p.machine.Pagination()))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("Showing %d - %d of %d dogs", first, last, total)))
	return s.Panel.Render(b.String())
}

// renderPager draws "Prev 1 … 4 5 [6] 7 8 … 12 Next".
func renderPager(p models.Pagination) string {
	parts := []string{"Prev"}
	for _, n := range search.PageWindow(p) {
		switch {
		case n == search.Gap:
			parts = append(parts, "…")
		case n == p.CurrentPage:
			parts = append(parts, "["+strconv.Itoa(n)+"]")
		default:
			parts = append(parts, strconv.Itoa(n))
		}
	}
	parts = append(parts, "Next")
	return strings.Join(parts, " ")
}

func renderMatch(s Styles, d models.Dog) string {
	body := strings.Join([]string{
		s.Title.Render("It's a Match!"),
		s.Label.Render(d.Name),
		"Breed: " + d.Breed,
		"Age:   " + ageText(d.Age),
		"Zip:   " + d.ZipCode,
		"",
		s.Muted.Render("esc to close"),
	}, "\n")
	return s.Modal.Render(body)
}

func (a App) viewArea() string {
	p := a.search
	s := a.styles
	c := p.selector.Center()
	top, left, bottom, right, _ := p.selector.Bounds().Edges()
	body := strings.Join([]string{
		s.Title.Render("Select an area"),
		fmt.Sprintf("Centre: %.4f, %.4f   Zoom: %d", c.Lat, c.Lng, p.selector.Zoom()),
		fmt.Sprintf("Top %.4f  Bottom %.4f", top, bottom),
		fmt.Sprintf("Left %.4f  Right %.4f", left, right),
		"",
		s.Muted.Render("arrows: pan • +/-: zoom • enter: use area • esc: cancel"),
	}, "\n")
	if p.resolving {
		body += "\n" + a.spinner.View() + " Looking up zip codes..."
	}
	return s.Modal.Render(body)
}

func ageText(age int) string {
	if age == 1 {
		return "1 yr"
	}
	return strconv.Itoa(age) + " yrs"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
