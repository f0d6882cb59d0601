package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/dogfinder/internal/area"
	"github.com/rogerio-castellano/dogfinder/internal/notice"
	"github.com/rogerio-castellano/dogfinder/internal/search"
)

type focus int

const (
	focusGrid focus = iota
	focusBreeds
	focusAge
	focusZip
	focusCount
)

func (f focus) String() string {
	switch f {
	case focusBreeds:
		return "breeds"
	case focusAge:
		return "age"
	case focusZip:
		return "zip"
	default:
		return "dogs"
	}
}

type searchPage struct {
	machine *search.Machine

	breedQuery  textinput.Model
	zip         textinput.Model
	focus       focus
	breedCursor int
	dogCursor   int

	selector   *area.Selector
	showArea   bool
	resolving  bool
	matching   bool
	loggingOut bool
}

func newSearchPage(m *search.Machine) *searchPage {
	bq := textinput.New()
	bq.Placeholder = "Search breeds"
	bq.Prompt = "Breed: "
	bq.CharLimit = 60

	zip := textinput.New()
	zip.Placeholder = "e.g. 10001, 10002"
	zip.Prompt = "Zip:   "
	zip.CharLimit = 600

	return &searchPage{
		machine:    m,
		breedQuery: bq,
		zip:        zip,
		selector:   area.NewSelector(),
	}
}

func (p *searchPage) busy() bool {
	return p.machine.Loading() || p.resolving || p.matching || p.loggingOut
}

func (p *searchPage) setFocus(f focus) {
	p.focus = (f + focusCount) % focusCount
	p.breedQuery.Blur()
	p.zip.Blur()
	switch p.focus {
	case focusBreeds:
		p.breedQuery.Focus()
	case focusZip:
		p.zip.Focus()
	}
}

// syncZip copies the zip input into the machine before a search is built.
func (p *searchPage) syncZip() {
	p.machine.SetZipQuery(p.zip.Value())
}

func (p *searchPage) visibleBreeds() []string {
	return p.machine.VisibleBreeds(p.breedQuery.Value())
}

func (a *App) updateSearch(msg tea.Msg) tea.Cmd {
	p := a.search
	if e, ok := msg.(epochMsg); ok && e.epochOf() != a.epoch {
		// reply to a search page from an earlier login
		return nil
	}
	switch msg := msg.(type) {
	case breedsMsg:
		p.machine.CompleteBreeds(msg.breeds, msg.err)
		return nil

	case searchDoneMsg:
		if p.machine.Complete(msg.outcome) {
			if len(p.machine.Dogs()) == 0 || msg.outcome.ScrollToTop || p.dogCursor >= len(p.machine.Dogs()) {
				p.dogCursor = 0
			}
		}
		return nil

	case matchDoneMsg:
		p.matching = false
		p.machine.CompleteMatch(msg.dog, msg.err)
		return nil

	case areaDoneMsg:
		p.resolving = false
		if msg.err != nil {
			a.logger.Warn("area lookup failed", zap.Error(msg.err))
			a.notify(notice.Error, MsgAreaFailed)
			return nil
		}
		if len(msg.zipCodes) == 0 {
			a.notify(notice.Info, MsgAreaEmpty)
			return nil
		}
		p.showArea = false
		p.machine.ApplyArea(msg.zipCodes)
		p.zip.SetValue(p.machine.Filters().ZipQuery)
		return nil

	case tea.KeyMsg:
		return a.handleSearchKey(msg)
	}

	var cmd tea.Cmd
	switch p.focus {
	case focusBreeds:
		p.breedQuery, cmd = p.breedQuery.Update(msg)
	case focusZip:
		p.zip, cmd = p.zip.Update(msg)
	}
	return cmd
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	p := a.search

	if _, ok := p.machine.Matched(); ok {
		if key.Matches(msg, keys.Close) || key.Matches(msg, keys.Submit) {
			p.machine.CloseMatch()
		}
		return nil
	}
	if p.showArea {
		return a.handleAreaKey(msg)
	}

	switch {
	case key.Matches(msg, keys.NextFocus):
		p.setFocus(p.focus + 1)
		return nil
	case key.Matches(msg, keys.PrevFocus):
		p.setFocus(p.focus - 1)
		return nil
	case key.Matches(msg, keys.Close):
		p.setFocus(focusGrid)
		return nil
	case key.Matches(msg, keys.Search):
		return a.runSearch(1)
	case key.Matches(msg, keys.Logout):
		if p.loggingOut {
			return nil
		}
		p.loggingOut = true
		return a.logoutCmd(a.session)
	}

	switch p.focus {
	case focusBreeds:
		return a.handleBreedKey(msg)
	case focusZip:
		if key.Matches(msg, keys.Submit) {
			return a.runSearch(1)
		}
		var cmd tea.Cmd
		p.zip, cmd = p.zip.Update(msg)
		return cmd
	case focusAge:
		return a.handleAgeKey(msg)
	default:
		return a.handleGridKey(msg)
	}
}

func (a *App) runSearch(page int) tea.Cmd {
	p := a.search
	p.syncZip()
	return a.searchCmd(p.machine.Begin(page))
}

func (a *App) handleBreedKey(msg tea.KeyMsg) tea.Cmd {
	p := a.search
	breeds := p.visibleBreeds()
	switch {
	case msg.Type == tea.KeyUp:
		p.breedCursor = max(p.breedCursor-1, 0)
		return nil
	case msg.Type == tea.KeyDown:
		p.breedCursor = min(p.breedCursor+1, max(len(breeds)-1, 0))
		return nil
	case key.Matches(msg, keys.ToggleItem):
		if p.breedCursor < len(breeds) {
			p.machine.ToggleBreed(breeds[p.breedCursor])
		}
		return nil
	}
	var cmd tea.Cmd
	p.breedQuery, cmd = p.breedQuery.Update(msg)
	p.breedCursor = 0
	return cmd
}

func (a *App) handleAgeKey(msg tea.KeyMsg) tea.Cmd {
	p := a.search
	age := p.machine.Filters().Age
	switch {
	case key.Matches(msg, keys.Left):
		p.machine.SetAgeRange(age.Min-1, age.Max)
	case key.Matches(msg, keys.Right):
		p.machine.SetAgeRange(min(age.Min+1, age.Max), age.Max)
	case key.Matches(msg, keys.Down):
		p.machine.SetAgeRange(age.Min, max(age.Max-1, age.Min))
	case key.Matches(msg, keys.Up):
		p.machine.SetAgeRange(age.Min, age.Max+1)
	case key.Matches(msg, keys.Submit):
		return a.runSearch(1)
	}
	return nil
}

func (a *App) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	p := a.search
	dogs := p.machine.Dogs()
	switch {
	case key.Matches(msg, keys.Up), key.Matches(msg, keys.Left):
		p.dogCursor = max(p.dogCursor-1, 0)
	case key.Matches(msg, keys.Down), key.Matches(msg, keys.Right):
		p.dogCursor = min(p.dogCursor+1, max(len(dogs)-1, 0))
	case key.Matches(msg, keys.Favorite):
		if p.dogCursor < len(dogs) {
			p.machine.ToggleFavorite(dogs[p.dogCursor].ID)
		}
	case key.Matches(msg, keys.Submit):
		return a.runSearch(1)
	case key.Matches(msg, keys.NextPage):
		return a.changePage(p.machine.Pagination().CurrentPage + 1)
	case key.Matches(msg, keys.PrevPage):
		return a.changePage(p.machine.Pagination().CurrentPage - 1)
	case key.Matches(msg, keys.Sort):
		p.syncZip()
		pending, err := p.machine.BeginChangeSort(nextSort(p.machine.Filters().Sort))
		if err != nil {
			return nil
		}
		return a.searchCmd(pending)
	case key.Matches(msg, keys.ClearFavs):
		p.machine.ClearFavorites()
	case key.Matches(msg, keys.Reset):
		p.syncZip()
		pending, ok := p.machine.BeginReset()
		if !ok {
			return nil
		}
		p.zip.SetValue("")
		p.breedQuery.SetValue("")
		return a.searchCmd(pending)
	case key.Matches(msg, keys.Match):
		if p.matching {
			return nil
		}
		ids, err := p.machine.BeginMatch()
		if err != nil {
			return nil
		}
		p.matching = true
		return a.matchCmd(ids)
	case key.Matches(msg, keys.Area):
		p.showArea = true
	}
	return nil
}

func (a *App) changePage(target int) tea.Cmd {
	p := a.search
	p.syncZip()
	pending, ok := p.machine.BeginChangePage(target)
	if !ok {
		return nil
	}
	return a.searchCmd(pending)
}

func (a *App) handleAreaKey(msg tea.KeyMsg) tea.Cmd {
	p := a.search
	switch {
	case key.Matches(msg, keys.Close):
		p.showArea = false
	case msg.Type == tea.KeyUp:
		p.selector.Pan(1, 0)
	case msg.Type == tea.KeyDown:
		p.selector.Pan(-1, 0)
	case msg.Type == tea.KeyLeft:
		p.selector.Pan(0, -1)
	case msg.Type == tea.KeyRight:
		p.selector.Pan(0, 1)
	case key.Matches(msg, keys.ZoomIn):
		p.selector.ZoomBy(1)
	case key.Matches(msg, keys.ZoomOut):
		p.selector.ZoomBy(-1)
	case key.Matches(msg, keys.Submit):
		if p.resolving {
			return nil
		}
		p.resolving = true
		return a.areaCmd(*p.selector)
	}
	return nil
}

func nextSort(current string) string {
	for i, o := range search.SortOptions {
		if o.Key == current {
			return search.SortOptions[(i+1)%len(search.SortOptions)].Key
		}
	}
	return search.DefaultSort
}
