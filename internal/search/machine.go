// Package search holds the filter, pagination and favorites state behind the
// dog search screen.
//
// A Machine is owned by a single goroutine (the UI loop). Network work is
// split out so it can run elsewhere: Begin* builds a Pending request from the
// current state, Pending.Run talks to the service without touching the
// Machine, and Complete applies the Outcome back on the owning goroutine.
package search

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/dogfinder/internal/models"
	"github.com/rogerio-castellano/dogfinder/internal/notice"
)

const (
	MsgNoResults        = "No dogs found matching your criteria"
	MsgSearchFailed     = "Failed to search dogs"
	MsgBreedsFailed     = "Failed to fetch breeds"
	MsgMatchFailed      = "Failed to find a match"
	MsgNeedTwoFavorites = "Please select at least 2 dogs to find a match"
)

var ErrNotEnoughFavorites = errors.New(MsgNeedTwoFavorites)

// DogAPI is the part of the Fetch client the search screen uses.
type DogAPI interface {
	ListBreeds(ctx context.Context) ([]string, error)
	SearchDogs(ctx context.Context, f models.SearchFilters) (models.SearchResult, error)
	GetDogs(ctx context.Context, ids []string) ([]models.Dog, error)
	GetMatch(ctx context.Context, favoriteIDs []string) (string, error)
}

type Option func(*Machine)

func WithNotifier(n notice.Notifier) Option {
	return func(m *Machine) {
		m.notifier = n
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		m.logger = l
	}
}

func WithPageSize(size int) Option {
	return func(m *Machine) {
		if size > 0 {
			m.pageSize = size
		}
	}
}

type Machine struct {
	api      DogAPI
	notifier notice.Notifier
	logger   *zap.Logger
	pageSize int

	filters    FilterState
	breeds     []string
	dogs       []models.Dog
	pagination models.Pagination
	favorites  map[string]struct{}
	matched    *models.Dog

	issued    uint64
	completed uint64
}

func NewMachine(api DogAPI, opts ...Option) *Machine {
	m := &Machine{
		api:        api,
		notifier:   notice.Discard,
		logger:     zap.NewNop(),
		pageSize:   DefaultPageSize,
		filters:    DefaultFilterState(),
		pagination: models.FirstPage(),
		favorites:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) PageSize() int {
	return m.pageSize
}

// Filters returns a copy of the selection being edited.
func (m *Machine) Filters() FilterState {
	f := m.filters
	f.Breeds = slices.Clone(m.filters.Breeds)
	return f
}

func (m *Machine) IsDirty() bool {
	return m.filters.Dirty()
}

func (m *Machine) Dogs() []models.Dog {
	return m.dogs
}

func (m *Machine) Pagination() models.Pagination {
	return m.pagination
}

// Loading reports whether the newest search has not completed yet.
func (m *Machine) Loading() bool {
	return m.completed < m.issued
}

func (m *Machine) ShowingRange() (first, last, total int) {
	return ShowingRange(m.pagination, m.pageSize)
}

func (m *Machine) SetZipQuery(q string) {
	m.filters.ZipQuery = q
}

// ApplyArea fills the zip filter with the zip codes of a selected map area.
func (m *Machine) ApplyArea(zipCodes []string) {
	m.filters.ZipQuery = strings.Join(zipCodes, ", ")
}

func (m *Machine) SetAgeRange(minAge, maxAge int) {
	m.filters.Age = AgeRange{Min: minAge, Max: maxAge}.Clamp()
}

// ToggleBreed adds breed to the selection or removes it if present.
func (m *Machine) ToggleBreed(breed string) {
	if i := slices.Index(m.filters.Breeds, breed); i >= 0 {
		m.filters.Breeds = slices.Delete(m.filters.Breeds, i, i+1)
		return
	}
	m.filters.Breeds = append(m.filters.Breeds, breed)
}

// Begin builds the request for page from the current filters.
func (m *Machine) Begin(page int) Pending {
	if page < 1 {
		page = 1
	}
	m.issued++
	return Pending{
		Page:       page,
		PageSize:   m.pageSize,
		Filters:    m.filters.Filters(page, m.pageSize),
		Generation: m.issued,
	}
}

// Complete applies a finished search. Outcomes of searches superseded by a
// newer Begin are dropped, so a slow early response never overwrites a later
// one. It reports whether the outcome was applied.
func (m *Machine) Complete(o Outcome) bool {
	if o.Generation < m.issued {
		m.logger.Debug("dropping stale search outcome",
			zap.Uint64("generation", o.Generation), zap.Uint64("latest", m.issued))
		return false
	}
	m.completed = o.Generation

	if o.Err != nil {
		m.logger.Warn("search failed", zap.Int("page", o.Page), zap.Error(o.Err))
		m.notify(notice.Error, MsgSearchFailed)
		return true
	}

	if len(o.Result.ResultIDs) == 0 {
		m.dogs = nil
		m.pagination = models.FirstPage()
		m.notify(notice.Info, MsgNoResults)
		return true
	}

	m.dogs = o.Dogs
	m.pagination = models.Pagination{
		CurrentPage: o.Page,
		TotalPages:  totalPages(o.Result.Total, o.PageSize),
		TotalDogs:   o.Result.Total,
	}
	m.logger.Debug("search applied",
		zap.Int("page", o.Page), zap.Int("dogs", len(o.Dogs)), zap.Int("total", o.Result.Total))
	return true
}

// ExecuteSearch runs a search for page and applies it.
func (m *Machine) ExecuteSearch(ctx context.Context, page int) bool {
	return m.Complete(m.Begin(page).Run(ctx, m.api))
}

// BeginChangeSort switches the sort key and restarts at page 1.
func (m *Machine) BeginChangeSort(sortKey string) (Pending, error) {
	if !ValidSort(sortKey) {
		return Pending{}, ErrInvalidSort
	}
	m.filters.Sort = sortKey
	return m.Begin(1), nil
}

func (m *Machine) ChangeSort(ctx context.Context, sortKey string) error {
	p, err := m.BeginChangeSort(sortKey)
	if err != nil {
		return err
	}
	m.Complete(p.Run(ctx, m.api))
	return nil
}

// BeginChangePage returns false, and issues nothing, when target is outside
// the known page range.
func (m *Machine) BeginChangePage(target int) (Pending, bool) {
	if target < 1 || target > m.pagination.TotalPages {
		return Pending{}, false
	}
	p := m.Begin(target)
	p.ScrollToTop = true
	return p, true
}

func (m *Machine) ChangePage(ctx context.Context, target int) bool {
	p, ok := m.BeginChangePage(target)
	if !ok {
		return false
	}
	m.Complete(p.Run(ctx, m.api))
	return true
}

// BeginReset restores the default filters and searches page 1. It does
// nothing while the filters are already at their defaults.
func (m *Machine) BeginReset() (Pending, bool) {
	if !m.IsDirty() {
		return Pending{}, false
	}
	m.filters = DefaultFilterState()
	return m.Begin(1), true
}

func (m *Machine) ResetFilters(ctx context.Context) bool {
	p, ok := m.BeginReset()
	if !ok {
		return false
	}
	m.Complete(p.Run(ctx, m.api))
	return true
}

// LoadBreeds fetches the breed list. On failure the list stays empty and the
// rest of the filter panel keeps working.
func (m *Machine) LoadBreeds(ctx context.Context) {
	breeds, err := m.api.ListBreeds(ctx)
	m.CompleteBreeds(breeds, err)
}

func (m *Machine) CompleteBreeds(breeds []string, err error) {
	if err != nil {
		m.logger.Warn("breed list unavailable", zap.Error(err))
		m.notify(notice.Error, MsgBreedsFailed)
		return
	}
	m.breeds = breeds
}

func (m *Machine) Breeds() []string {
	return m.breeds
}

// VisibleBreeds is the breed list narrowed by the breed search box.
func (m *Machine) VisibleBreeds(query string) []string {
	return FilterBreedsByText(m.breeds, query)
}

func (m *Machine) ToggleFavorite(dogID string) {
	if _, ok := m.favorites[dogID]; ok {
		delete(m.favorites, dogID)
		return
	}
	m.favorites[dogID] = struct{}{}
}

func (m *Machine) IsFavorite(dogID string) bool {
	_, ok := m.favorites[dogID]
	return ok
}

// Favorites returns the favorite ids sorted.
func (m *Machine) Favorites() []string {
	ids := make([]string, 0, len(m.favorites))
	for id := range m.favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ClearFavorites forgets every favorite. Filters and results are untouched.
func (m *Machine) ClearFavorites() {
	clear(m.favorites)
}

// BeginMatch checks that a match can be requested and returns the ids to
// send. With fewer than two favorites it emits a notice and returns
// ErrNotEnoughFavorites.
func (m *Machine) BeginMatch() ([]string, error) {
	if len(m.favorites) < 2 {
		m.notify(notice.Error, MsgNeedTwoFavorites)
		return nil, ErrNotEnoughFavorites
	}
	return m.Favorites(), nil
}

// CompleteMatch records the matched dog for display. Favorites are kept.
func (m *Machine) CompleteMatch(dog models.Dog, err error) {
	if err != nil {
		m.logger.Warn("match failed", zap.Error(err))
		m.notify(notice.Error, MsgMatchFailed)
		return
	}
	m.matched = &dog
}

// RequestMatch asks the service to pick one dog out of all favorites and
// loads its record.
func (m *Machine) RequestMatch(ctx context.Context) (models.Dog, error) {
	ids, err := m.BeginMatch()
	if err != nil {
		return models.Dog{}, err
	}
	dog, err := FetchMatch(ctx, m.api, ids)
	m.CompleteMatch(dog, err)
	return dog, err
}

func (m *Machine) Matched() (models.Dog, bool) {
	if m.matched == nil {
		return models.Dog{}, false
	}
	return *m.matched, true
}

func (m *Machine) CloseMatch() {
	m.matched = nil
}

func (m *Machine) notify(level notice.Level, text string) {
	m.notifier.Notify(notice.New(level, text))
}
