package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rogerio-castellano/dogfinder/internal/auth"
	"github.com/rogerio-castellano/dogfinder/internal/db"
	api "github.com/rogerio-castellano/dogfinder/internal/http"
	handler "github.com/rogerio-castellano/dogfinder/internal/http/handlers"
	"github.com/rogerio-castellano/dogfinder/internal/repo"
	"github.com/rogerio-castellano/dogfinder/internal/seed"
)

const seedDogs = 120

var (
	database *sql.DB
	tokens   *auth.TokenService
	cookie   *http.Cookie
)

func TestMain(m *testing.M) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Println("DATABASE_URL not set, skipping postgres handler tests")
		os.Exit(0)
	}
	if err := setupTestRepos(dsn); err != nil {
		fmt.Println("could not set up postgres:", err)
		os.Exit(1)
	}
	code := m.Run()
	database.Close()
	os.Exit(code)
}

func setupTestRepos(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	database, err = db.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		return err
	}
	if _, err := database.ExecContext(ctx, "TRUNCATE TABLE dogs, locations"); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	dogs := repo.NewPostgresDogRepository(database)
	locs := repo.NewPostgresLocationRepository(database)
	if err := seed.Load(ctx, dogs, locs, seedDogs); err != nil {
		return err
	}
	handler.SetDogRepo(dogs)
	handler.SetLocationRepo(locs)

	tokens = auth.NewTokenService("integration-secret", auth.DefaultTTL, auth.NewMemoryRevocationStore())
	cookie, err = login(newRouter(), "Ada", "ada@example.com")
	return err
}

func newRouter() http.Handler {
	return api.NewRouter(api.RouterOptions{Tokens: tokens})
}

func login(r http.Handler, name, email string) (*http.Cookie, error) {
	body, _ := json.Marshal(handler.LoginRequest{Name: name, Email: email})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return nil, fmt.Errorf("login returned %d", w.Code)
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
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
