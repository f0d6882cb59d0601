package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/dogfinder/internal/auth"
	api "github.com/rogerio-castellano/dogfinder/internal/http"
	handler "github.com/rogerio-castellano/dogfinder/internal/http/handlers"
	"github.com/rogerio-castellano/dogfinder/internal/models"
	"github.com/rogerio-castellano/dogfinder/internal/repo"
)

var (
	cookie   *http.Cookie
	dogRepo  *repo.InMemoryDogRepository
	locRepo  *repo.InMemoryLocationRepository
	tokens   *auth.TokenService
	testDogs = []models.Dog{
		{ID: "d1", Name: "Rex", Age: 3, Breed: "Beagle", ZipCode: "10001"},
		{ID: "d2", Name: "Ace", Age: 7, Breed: "Akita", ZipCode: "10001"},
		{ID: "d3", Name: "Max", Age: 1, Breed: "Beagle", ZipCode: "60601"},
		{ID: "d4", Name: "Bo", Age: 12, Breed: "Boxer", ZipCode: "94105"},
		{ID: "d5", Name: "Zed", Age: 5, Breed: "Akita", ZipCode: "60601"},
	}
	testLocations = []models.Location{
		{ZipCode: "10001", Latitude: 40.75, Longitude: -73.99, City: "New York", State: "NY"},
		{ZipCode: "60601", Latitude: 41.88, Longitude: -87.62, City: "Chicago", State: "IL"},
		{ZipCode: "94105", Latitude: 37.79, Longitude: -122.39, City: "San Francisco", State: "CA"},
	}
)

func init() {
	setupTestRepos()
	tokens = auth.NewTokenService("test-secret", auth.DefaultTTL, auth.NewMemoryRevocationStore())

	var err error
	cookie, err = login(newRouter(), "Ada", "ada@example.com")
	if err != nil {
		panic(fmt.Sprintf("error logging in: %v", err))
	}
}

func newRouter() http.Handler {
	return api.NewRouter(api.RouterOptions{Tokens: tokens})
}

func setupTestRepos() {
	dogRepo = repo.NewInMemoryDogRepository()
	handler.SetDogRepo(dogRepo)
	locRepo = repo.NewInMemoryLocationRepository()
	handler.SetLocationRepo(locRepo)

	for _, d := range testDogs {
		dogRepo.Create(context.Background(), d)
	}
	for _, l := range testLocations {
		locRepo.Create(context.Background(), l)
	}
}

func login(r http.Handler, name, email string) (*http.Cookie, error) {
	body, _ := json.Marshal(handler.LoginRequest{Name: name, Email: email})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return nil, fmt.Errorf("login returned %d: %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no %s cookie in login response", auth.CookieName)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func post(r http.Handler, target string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("id-%d", i)
	}
	return out
}
