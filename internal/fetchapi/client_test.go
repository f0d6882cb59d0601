package fetchapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestEncodeFilters_OmitsUnsetAndRepeatsLists(t *testing.T) {
	got, err := url.ParseQuery(EncodeFilters(models.SearchFilters{
		Breeds:   []string{"Boxer", "Pug"},
		ZipCodes: []string{"10001"},
		AgeMax:   models.IntPtr(5),
		Sort:     "age:desc",
		Size:     models.IntPtr(20),
		From:     models.IntPtr(0),
	}))
	require.NoError(t, err)

	want := url.Values{
		"breeds":   {"Boxer", "Pug"},
		"zipCodes": {"10001"},
		"ageMax":   {"5"},
		"sort":     {"age:desc"},
		"size":     {"20"},
		"from":     {"0"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeFilters_Empty(t *testing.T) {
	assert.Equal(t, "", EncodeFilters(models.SearchFilters{}))
}

func TestLoginCookieIsReplayed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body loginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ana", body.Name)
		assert.Equal(t, "ana@example.com", body.Email)
		http.SetCookie(w, &http.Cookie{Name: "fetch-access-token", Value: "tok", Path: "/", HttpOnly: true})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /dogs/breeds", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("fetch-access-token"); err != nil || c.Value != "tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode([]string{"Beagle", "Boxer"})
	})
	c := newTestClient(t, mux)

	_, err := c.ListBreeds(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	require.NoError(t, c.Login(context.Background(), "Ana", "ana@example.com"))
	breeds, err := c.ListBreeds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Beagle", "Boxer"}, breeds)
}

func TestSearchDogsSendsQuery(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dogs/search", r.URL.Path)
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(models.SearchResult{
			ResultIDs: []string{"a", "b"},
			Total:     45,
			Next:      "/dogs/search?size=20&from=20",
		})
	}))

	res, err := c.SearchDogs(context.Background(), models.SearchFilters{
		Breeds: []string{"Boxer"},
		AgeMin: models.IntPtr(2),
		Size:   models.IntPtr(20),
		From:   models.IntPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.ResultIDs)
	assert.Equal(t, 45, res.Total)
	assert.Equal(t, "/dogs/search?size=20&from=20", res.Next)

	assert.Equal(t, []string{"Boxer"}, gotQuery["breeds"])
	assert.Equal(t, "2", gotQuery.Get("ageMin"))
	assert.NotContains(t, gotQuery, "ageMax")
	assert.NotContains(t, gotQuery, "zipCodes")
	assert.NotContains(t, gotQuery, "sort")
}

func TestFollowPage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dogs/search", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("from"))
		_ = json.NewEncoder(w).Encode(models.SearchResult{ResultIDs: []string{"z"}, Total: 26})
	}))

	res, err := c.FollowPage(context.Background(), "dogs/search?size=25&from=25")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, res.ResultIDs)
}

func TestGetDogsPostsIDs(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var ids []string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		assert.Equal(t, []string{"a", "b"}, ids)
		_ = json.NewEncoder(w).Encode([]models.Dog{
			{ID: "b", Name: "Rex", Age: 3, Breed: "Boxer", ZipCode: "10001"},
			{ID: "a", Name: "Fido", Age: 1, Breed: "Pug", ZipCode: "10002"},
		})
	}))

	dogs, err := c.GetDogs(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	idx := models.DogsByID(dogs)
	assert.Equal(t, "Fido", idx["a"].Name)
	assert.Equal(t, "Rex", idx["b"].Name)
}

func TestGetDogsRejectsOversizedBatch(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1")
	require.NoError(t, err)

	ids := make([]string, MaxBatch+1)
	_, err = c.GetDogs(context.Background(), ids)
	assert.ErrorIs(t, err, ErrTooManyIDs)
}

func TestGetMatch(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/dogs/match", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Match{Match: "b"})
	}))

	_, err := c.GetMatch(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, ErrTooFewIDs)
	assert.Equal(t, 0, calls)

	id, err := c.GetMatch(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", id)
	assert.Equal(t, 1, calls)
}

func TestNonSuccessStatusIsRequestFailed(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))

	_, err := c.ListBreeds(context.Background())
	var rf *RequestFailedError
	require.True(t, errors.As(err, &rf))
	assert.Equal(t, OpListBreeds, rf.Operation)
	assert.Equal(t, http.StatusTooManyRequests, rf.StatusCode)
	assert.Contains(t, rf.Error(), "slow down")
	assert.Equal(t, http.StatusTooManyRequests, StatusCode(err))
}

func TestTransportErrorIsRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	err = c.Logout(context.Background())
	var rf *RequestFailedError
	require.True(t, errors.As(err, &rf))
	assert.Equal(t, OpLogout, rf.Operation)
	assert.Zero(t, rf.StatusCode)
	assert.NotNil(t, rf.Err)
}

func TestSearchLocationsByArea(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations/search", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		var body map[string]map[string]float64
		assert.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, map[string]float64{"top": 41, "left": -75, "bottom": 40, "right": -73}, body["geoBoundingBox"])
		_ = json.NewEncoder(w).Encode(models.LocationSearchResult{
			Results: []models.Location{{ZipCode: "10001"}, {ZipCode: "10002"}},
			Total:   2,
		})
	}))

	res, err := c.SearchLocationsByArea(context.Background(), models.NewBoundingBox(41, -75, 40, -73))
	require.NoError(t, err)
	assert.Equal(t, []string{"10001", "10002"}, res.ZipCodes())
}

func TestGetLocationsPostsZipCodes(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/locations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `["66952","10001"]`, string(raw))
		_, _ = io.WriteString(w, `[{"zip_code":"66952","latitude":39.8283,"longitude":-98.5795,"city":"Lebanon","state":"KS","county":"Smith"}]`)
	}))

	locs, err := c.GetLocations(context.Background(), []string{"66952", "10001"})
	require.NoError(t, err)
	want := []models.Location{{ZipCode: "66952", Latitude: 39.8283, Longitude: -98.5795, City: "Lebanon", State: "KS", County: "Smith"}}
	if diff := cmp.Diff(want, locs); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}
}

func TestGetLocationsRejectsOversizedBatch(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	_, err := c.GetLocations(context.Background(), make([]string, MaxBatch+1))
	assert.ErrorIs(t, err, ErrTooManyIDs)
	var rf *RequestFailedError
	require.True(t, errors.As(err, &rf))
	assert.Equal(t, OpGetLocations, rf.Operation)
	assert.Zero(t, calls)
}

func TestOptionsDoNotTouchCallerClient(t *testing.T) {
	hc := &http.Client{Timeout: 7 * time.Second}

	c, err := NewClient("http://127.0.0.1:1", WithTimeout(3*time.Second), WithHTTPClient(hc))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout, "timeout given before the client must still apply")
	assert.NotNil(t, c.httpClient.Jar)

	assert.Equal(t, 7*time.Second, hc.Timeout)
	assert.Nil(t, hc.Jar)
	assert.NotSame(t, hc, c.httpClient)
}

func TestWithHTTPClientNilKeepsDefault(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1", WithHTTPClient(nil))
	require.NoError(t, err)
	require.NotNil(t, c.httpClient)
	assert.NotNil(t, c.httpClient.Jar)
}
