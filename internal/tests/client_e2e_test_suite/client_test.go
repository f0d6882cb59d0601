package client_e2e_test_suite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/rogerio-castellano/dogfinder/internal/area"
	"github.com/rogerio-castellano/dogfinder/internal/auth"
	"github.com/rogerio-castellano/dogfinder/internal/fetchapi"
	api "github.com/rogerio-castellano/dogfinder/internal/http"
	handler "github.com/rogerio-castellano/dogfinder/internal/http/handlers"
	"github.com/rogerio-castellano/dogfinder/internal/notice"
	"github.com/rogerio-castellano/dogfinder/internal/repo"
	"github.com/rogerio-castellano/dogfinder/internal/search"
	"github.com/rogerio-castellano/dogfinder/internal/seed"
	"github.com/rogerio-castellano/dogfinder/internal/session"
)

const seedDogs = 60

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newSandbox serves the in-memory sandbox and returns a client pointed at it.
func newSandbox(t *testing.T) *fetchapi.Client {
	t.Helper()
	ctx := context.Background()

	dogs := repo.NewInMemoryDogRepository()
	locs := repo.NewInMemoryLocationRepository()
	require.NoError(t, seed.Load(ctx, dogs, locs, seedDogs))
	handler.SetDogRepo(dogs)
	handler.SetLocationRepo(locs)

	tokens := auth.NewTokenService("e2e-secret", time.Hour, auth.NewMemoryRevocationStore())
	srv := httptest.NewServer(api.NewRouter(api.RouterOptions{Tokens: tokens, Logger: zaptest.NewLogger(t)}))

	hc := &http.Client{}
	t.Cleanup(func() {
		hc.CloseIdleConnections()
		srv.Close()
	})

	client, err := fetchapi.NewClient(srv.URL, fetchapi.WithHTTPClient(hc), fetchapi.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return client
}

func TestClientAgainstSandbox(t *testing.T) {
	client := newSandbox(t)
	ctx := context.Background()

	_, err := client.ListBreeds(ctx)
	require.True(t, fetchapi.IsUnauthorized(err), "expected 401 before login, got %v", err)

	sess := session.New(client, zaptest.NewLogger(t))
	require.NoError(t, sess.Login(ctx, "Ada", "ada@example.com"))
	require.True(t, sess.Authenticated())

	breeds, err := client.ListBreeds(ctx)
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(breeds))

	rec := &notice.Recorder{}
	m := search.NewMachine(client, search.WithPageSize(10), search.WithNotifier(rec))

	require.True(t, m.ExecuteSearch(ctx, 1))
	assert.Len(t, m.Dogs(), 10)
	assert.Equal(t, 6, m.Pagination().TotalPages)
	assert.Equal(t, seedDogs, m.Pagination().TotalDogs)

	require.True(t, m.ChangePage(ctx, 6))
	assert.Equal(t, 6, m.Pagination().CurrentPage)

	require.NoError(t, m.ChangeSort(ctx, "age:desc"))
	ages := make([]int, 0, len(m.Dogs()))
	for _, d := range m.Dogs() {
		ages = append(ages, d.Age)
	}
	assert.True(t, slices.IsSortedFunc(ages, func(a, b int) int { return b - a }), "ages %v not descending", ages)

	first, second := m.Dogs()[0].ID, m.Dogs()[1].ID
	m.ToggleFavorite(first)
	m.ToggleFavorite(second)
	match, err := m.RequestMatch(ctx)
	require.NoError(t, err)
	assert.Contains(t, []string{first, second}, match.ID)

	zips, err := area.NewSelector().Resolve(ctx, client)
	require.NoError(t, err)
	require.Contains(t, zips, "66952")

	m.ApplyArea(zips)
	m.ExecuteSearch(ctx, 1)
	for _, d := range m.Dogs() {
		assert.Contains(t, zips, d.ZipCode)
	}

	require.NoError(t, sess.Logout(ctx))
	_, err = client.ListBreeds(ctx)
	assert.True(t, fetchapi.IsUnauthorized(err), "expected 401 after logout, got %v", err)
}
