package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rogerio-castellano/dogfinder/internal/models"
	"github.com/rogerio-castellano/dogfinder/internal/search"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeAPI struct {
	loginErr  error
	logoutErr error
	logins    int

	breeds   []string
	total    int
	searches []models.SearchFilters

	matchID string
	zips    []string
	areaErr error
}

func (f *fakeAPI) Login(ctx context.Context, name, email string) error {
	f.logins++
	return f.loginErr
}

func (f *fakeAPI) Logout(ctx context.Context) error { return f.logoutErr }

func (f *fakeAPI) ListBreeds(ctx context.Context) ([]string, error) { return f.breeds, nil }

func (f *fakeAPI) SearchDogs(ctx context.Context, sf models.SearchFilters) (models.SearchResult, error) {
	f.searches = append(f.searches, sf)
	from, size := 0, 20
	if sf.From != nil {
		from = *sf.From
	}
	if sf.Size != nil {
		size = *sf.Size
	}
	var ids []string
	for i := from; i < f.total && i < from+size; i++ {
		ids = append(ids, fmt.Sprintf("dog-%d", i))
	}
	return models.SearchResult{ResultIDs: ids, Total: f.total}, nil
}

func (f *fakeAPI) GetDogs(ctx context.Context, ids []string) ([]models.Dog, error) {
	dogs := make([]models.Dog, 0, len(ids))
	for _, id := range ids {
		dogs = append(dogs, models.Dog{ID: id, Name: "Name " + id, Breed: "Beagle", Age: 2, ZipCode: "10001"})
	}
	return dogs, nil
}

func (f *fakeAPI) GetMatch(ctx context.Context, ids []string) (string, error) {
	return f.matchID, nil
}

func (f *fakeAPI) SearchLocationsByArea(ctx context.Context, box models.BoundingBox) (models.LocationSearchResult, error) {
	if f.areaErr != nil {
		return models.LocationSearchResult{}, f.areaErr
	}
	var res models.LocationSearchResult
	for _, z := range f.zips {
		res.Results = append(res.Results, models.Location{ZipCode: z})
	}
	res.Total = len(res.Results)
	return res, nil
}

func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	require.True(t, ok)
	return app
}

func typeText(t *testing.T, a App, s string) App {
	t.Helper()
	for _, r := range s {
		a = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}

func press(t *testing.T, a App, kt tea.KeyType) App {
	t.Helper()
	return send(t, a, tea.KeyMsg{Type: kt})
}

func pressRune(t *testing.T, a App, r rune) App {
	t.Helper()
	return send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// completeSearch runs the newest search for page synchronously, as the
// program would on a command goroutine.
func completeSearch(t *testing.T, a App, page int) App {
	t.Helper()
	a.search.syncZip()
	return send(t, a, a.searchCmd(a.search.machine.Begin(page))())
}

// keyCmd delivers a key to the search page and returns the command it
// issued, without the ticker commands Update batches on top.
func keyCmd(t *testing.T, a App, msg tea.KeyMsg) (App, tea.Cmd) {
	t.Helper()
	cmd := a.updateSearch(msg)
	return a, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runSearch executes cmd, which must be exactly one search, applies its
// reply and returns the filters it sent.
func runSearch(t *testing.T, a App, api *fakeAPI, cmd tea.Cmd) (App, models.SearchFilters) {
	t.Helper()
	require.NotNil(t, cmd)
	before := len(api.searches)
	msg := cmd()
	_, ok := msg.(searchDoneMsg)
	require.True(t, ok, "expected a search reply, got %T", msg)
	require.Len(t, api.searches, before+1)
	return send(t, a, msg), api.searches[before]
}

func loggedIn(t *testing.T, api *fakeAPI) App {
	t.Helper()
	a := New(api, Options{})
	a = send(t, a, tea.WindowSizeMsg{Width: 140, Height: 50})
	a = typeText(t, a, "Ann")
	a = press(t, a, tea.KeyEnter)
	a = typeText(t, a, "ann@example.com")
	a = press(t, a, tea.KeyEnter)
	require.True(t, a.login.submitting)

	a = send(t, a, a.loginCmd(a.session, a.login.name.Value(), a.login.email.Value())())
	require.Equal(t, pageSearch, a.page)
	a = send(t, a, a.breedsCmd()())
	return completeSearch(t, a, 1)
}

func TestLoginFlow(t *testing.T) {
	api := &fakeAPI{breeds: []string{"Beagle", "Boxer"}, total: 45}
	a := loggedIn(t, api)

	assert.Equal(t, 1, api.logins)
	assert.True(t, a.session.Authenticated())
	view := a.View()
	assert.Contains(t, view, MsgWelcome)
	assert.Contains(t, view, "Ann")
	assert.Contains(t, view, "Showing 1 - 20 of 45 dogs")
	assert.Contains(t, view, "Prev [1] 2 3 Next")
	assert.Contains(t, view, "Boxer")
}

func TestLoginValidationError(t *testing.T) {
	api := &fakeAPI{}
	a := New(api, Options{})
	a = typeText(t, a, "Ann")
	a = press(t, a, tea.KeyEnter)
	a = typeText(t, a, "not-an-email")
	a = press(t, a, tea.KeyEnter)

	a = send(t, a, a.loginCmd(a.session, a.login.name.Value(), a.login.email.Value())())

	assert.Equal(t, pageLogin, a.page)
	assert.Equal(t, 0, api.logins)
	assert.Contains(t, a.View(), "Email is not valid")
}

func TestLoginRejected(t *testing.T) {
	api := &fakeAPI{loginErr: errors.New("401")}
	a := New(api, Options{})
	a = send(t, a, a.loginCmd(a.session, "Ann", "ann@example.com")())

	assert.Equal(t, pageLogin, a.page)
	assert.False(t, a.login.submitting)
	assert.Contains(t, a.View(), MsgLoginFailed)
}

func TestFavoriteAndPaging(t *testing.T) {
	api := &fakeAPI{total: 45}
	a := loggedIn(t, api)

	a = pressRune(t, a, ' ')
	assert.True(t, a.search.machine.IsFavorite("dog-0"))
	assert.Contains(t, a.View(), "♥")

	a, cmd := keyCmd(t, a, runeKey(']'))
	a, sent := runSearch(t, a, api, cmd)
	assert.Equal(t, 20, *sent.From)
	assert.Equal(t, 20, *sent.Size)
	assert.Equal(t, 2, a.search.machine.Pagination().CurrentPage)
	assert.Contains(t, a.View(), "Showing 21 - 40 of 45 dogs")

	a, cmd = keyCmd(t, a, runeKey(']'))
	a, sent = runSearch(t, a, api, cmd)
	assert.Equal(t, 40, *sent.From)
	assert.Contains(t, a.View(), "Showing 41 - 45 of 45 dogs")

	before := len(api.searches)
	a, cmd = keyCmd(t, a, runeKey(']'))
	assert.Nil(t, cmd, "no request past the last page")
	assert.Len(t, api.searches, before)
	assert.False(t, a.search.machine.Loading())

	a, cmd = keyCmd(t, a, runeKey('['))
	_, sent = runSearch(t, a, api, cmd)
	assert.Equal(t, 20, *sent.From)
}

func TestPrevPageOnFirstPageIssuesNothing(t *testing.T) {
	api := &fakeAPI{total: 45}
	a := loggedIn(t, api)

	a, cmd := keyCmd(t, a, runeKey('['))
	assert.Nil(t, cmd)
	assert.False(t, a.search.machine.Loading())
}

func TestSortCyclesAndRestartsAtFirstPage(t *testing.T) {
	api := &fakeAPI{total: 100}
	a := loggedIn(t, api)
	a = completeSearch(t, a, 4)
	require.Equal(t, 4, a.search.machine.Pagination().CurrentPage)

	a, cmd := keyCmd(t, a, runeKey('s'))
	assert.True(t, a.search.machine.Loading())
	a, sent := runSearch(t, a, api, cmd)
	assert.Equal(t, "breed:desc", sent.Sort)
	assert.Equal(t, 0, *sent.From)
	assert.Equal(t, 1, a.search.machine.Pagination().CurrentPage)

	a, cmd = keyCmd(t, a, runeKey('s'))
	_, sent = runSearch(t, a, api, cmd)
	assert.Equal(t, "age:asc", sent.Sort)
}

func TestResetKeyClearsTypedZip(t *testing.T) {
	api := &fakeAPI{total: 5}
	a := loggedIn(t, api)

	a = press(t, a, tea.KeyShiftTab)
	require.Equal(t, focusZip, a.search.focus)
	a = typeText(t, a, "10001")
	a = press(t, a, tea.KeyTab)
	require.Equal(t, focusGrid, a.search.focus)
	require.Equal(t, "10001", a.search.zip.Value())

	a, cmd := keyCmd(t, a, runeKey('r'))
	assert.Empty(t, a.search.zip.Value())
	a, sent := runSearch(t, a, api, cmd)
	assert.Nil(t, sent.ZipCodes)
	assert.Equal(t, search.DefaultSort, sent.Sort)
	assert.Equal(t, 0, *sent.From)
	assert.False(t, a.search.machine.IsDirty())
	assert.Empty(t, a.search.machine.Filters().ZipQuery)
}

func TestResetKeyOnDefaultsIssuesNothing(t *testing.T) {
	api := &fakeAPI{total: 5}
	a := loggedIn(t, api)

	before := len(api.searches)
	_, cmd := keyCmd(t, a, runeKey('r'))
	assert.Nil(t, cmd)
	assert.Len(t, api.searches, before)
}

func TestClearFavoritesKey(t *testing.T) {
	api := &fakeAPI{breeds: []string{"Beagle"}, total: 5}
	a := loggedIn(t, api)

	a = pressRune(t, a, ' ')
	a = press(t, a, tea.KeyDown)
	a = pressRune(t, a, ' ')
	a = press(t, a, tea.KeyTab)
	a = press(t, a, tea.KeyEnter)
	a = press(t, a, tea.KeyEsc)
	require.Len(t, a.search.machine.Favorites(), 2)
	filters := a.search.machine.Filters()
	before := len(api.searches)

	a, cmd := keyCmd(t, a, runeKey('c'))
	assert.Nil(t, cmd)
	assert.Empty(t, a.search.machine.Favorites())
	assert.Equal(t, filters, a.search.machine.Filters())
	assert.Equal(t, []string{"Beagle"}, a.search.machine.Filters().Breeds)
	assert.Len(t, api.searches, before)
	assert.True(t, a.session.Authenticated())
	assert.Equal(t, pageSearch, a.page)
	assert.NotContains(t, a.View(), "♥")
}

func TestMatchNeedsTwoFavorites(t *testing.T) {
	api := &fakeAPI{total: 5, matchID: "dog-1"}
	a := loggedIn(t, api)

	a = pressRune(t, a, ' ')
	a = pressRune(t, a, 'm')
	assert.False(t, a.search.matching)
	assert.Contains(t, a.View(), search.MsgNeedTwoFavorites)

	a = press(t, a, tea.KeyDown)
	a = pressRune(t, a, ' ')
	a = pressRune(t, a, 'm')
	require.True(t, a.search.matching)

	a = send(t, a, a.matchCmd(a.search.machine.Favorites())())
	view := a.View()
	assert.Contains(t, view, "It's a Match!")
	assert.Contains(t, view, "Name dog-1")

	a = press(t, a, tea.KeyEsc)
	assert.NotContains(t, a.View(), "It's a Match!")
	assert.Len(t, a.search.machine.Favorites(), 2)
}

func TestBreedFilterToggle(t *testing.T) {
	api := &fakeAPI{breeds: []string{"Beagle", "Boxer", "Pug"}, total: 3}
	a := loggedIn(t, api)

	a = press(t, a, tea.KeyTab)
	require.Equal(t, focusBreeds, a.search.focus)
	a = typeText(t, a, "bo")
	a = press(t, a, tea.KeyEnter)
	assert.Equal(t, []string{"Boxer"}, a.search.machine.Filters().Breeds)

	a, cmd := keyCmd(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	a, sent := runSearch(t, a, api, cmd)
	assert.Equal(t, []string{"Boxer"}, sent.Breeds)

	a = press(t, a, tea.KeyEsc)
	a, cmd = keyCmd(t, a, runeKey('r'))
	a, sent = runSearch(t, a, api, cmd)
	assert.Nil(t, sent.Breeds)
	assert.Empty(t, a.search.breedQuery.Value())
	assert.False(t, a.search.machine.IsDirty())
}

func TestAreaOverlayFillsZip(t *testing.T) {
	api := &fakeAPI{total: 2, zips: []string{"66952", "66953"}}
	a := loggedIn(t, api)

	a = pressRune(t, a, 'a')
	require.True(t, a.search.showArea)
	assert.Contains(t, a.View(), "Zoom: 4")
	a = pressRune(t, a, '+')
	assert.Contains(t, a.View(), "Zoom: 5")
	a = press(t, a, tea.KeyEnter)
	require.True(t, a.search.resolving)

	a = send(t, a, a.areaCmd(*a.search.selector)())
	assert.False(t, a.search.showArea)
	assert.Equal(t, "66952, 66953", a.search.zip.Value())

	a = completeSearch(t, a, 1)
	assert.Equal(t, []string{"66952", "66953"}, api.searches[len(api.searches)-1].ZipCodes)
}

func TestAreaLookupFailureKeepsOverlay(t *testing.T) {
	api := &fakeAPI{total: 1, areaErr: errors.New("down")}
	a := loggedIn(t, api)
	a = pressRune(t, a, 'a')
	a = send(t, a, a.areaCmd(*a.search.selector)())

	assert.True(t, a.search.showArea)
	assert.Contains(t, a.View(), MsgAreaFailed)
}

func TestLogoutReturnsToLogin(t *testing.T) {
	api := &fakeAPI{total: 5, logoutErr: errors.New("500")}
	a := loggedIn(t, api)
	a = pressRune(t, a, ' ')

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.True(t, a.search.loggingOut)
	a = send(t, a, a.logoutCmd(a.session)())

	assert.Equal(t, pageLogin, a.page)
	assert.Nil(t, a.search)
	assert.False(t, a.session.Authenticated())
	assert.Contains(t, a.View(), MsgLogoutFailed)
}

func TestRepliesFromEarlierLoginAreDropped(t *testing.T) {
	api := &fakeAPI{total: 5}
	a := loggedIn(t, api)
	stale := a.searchCmd(a.search.machine.Begin(1))()

	a = send(t, a, a.logoutCmd(a.session)())
	a = send(t, a, a.loginCmd(a.session, "Bo", "bo@example.com")())
	api.total = 0
	a = completeSearch(t, a, 1)
	require.Empty(t, a.search.machine.Dogs())

	a = send(t, a, stale)
	assert.Empty(t, a.search.machine.Dogs())
}

func TestQuit(t *testing.T) {
	a := New(&fakeAPI{}, Options{})
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderPager(t *testing.T) {
	got := renderPager(models.Pagination{CurrentPage: 6, TotalPages: 12, TotalDogs: 240})
	assert.Equal(t, "Prev 1 … 4 5 [6] 7 8 … 12 Next", got)
	assert.True(t, strings.HasPrefix(renderPager(models.FirstPage()), "Prev [1]"))
}
