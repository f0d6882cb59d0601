package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientDefaults(t *testing.T) {
	c, err := LoadClient(New())
	require.NoError(t, err)
	assert.Equal(t, "https://frontend-take-home-service.fetch.com", c.BaseURL)
	assert.Equal(t, 20, c.PageSize)
	assert.Equal(t, "dogfinder.log", c.LogFile)
	assert.Zero(t, c.Timeout)
}

func TestLoadClientFromEnv(t *testing.T) {
	t.Setenv("DOGFINDER_API_BASE_URL", "http://localhost:8080/")
	t.Setenv("DOGFINDER_CLIENT_TIMEOUT", "5s")
	t.Setenv("DOGFINDER_SEARCH_PAGE_SIZE", "10")

	c, err := LoadClient(New())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.Equal(t, 10, c.PageSize)
}

func TestLoadClientRejectsBadValues(t *testing.T) {
	v := New()
	v.Set(KeyBaseURL, "not a url")
	_, err := LoadClient(v)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)

	v = New()
	v.Set(KeyPageSize, 0)
	_, err = LoadClient(v)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestLoadFileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "dogfinder.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("search:\n  page_size: 50\nsandbox:\n  addr: \":9090\"\n"), 0o600))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DOGFINDER_SANDBOX_JWT_SECRET=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DOGFINDER_SANDBOX_JWT_SECRET") })

	v := New()
	require.NoError(t, Load(v, cfgPath, envPath))

	c, err := LoadClient(v)
	require.NoError(t, err)
	assert.Equal(t, 50, c.PageSize)

	s, err := LoadSandbox(v)
	require.NoError(t, err)
	assert.Equal(t, ":9090", s.Addr)
	assert.Equal(t, "from-dotenv", s.JWTSecret)
	assert.Equal(t, time.Hour, s.TokenTTL)
}

func TestLoadMissingDotEnvIsFine(t *testing.T) {
	assert.NoError(t, Load(New(), "", filepath.Join(t.TempDir(), "nope.env")))
}

func TestLoadSandboxNeedsSecret(t *testing.T) {
	_, err := LoadSandbox(New())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestBindFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("base-url", "", "")
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Parse([]string{"--base-url", "http://127.0.0.1:9999"}))

	v := New()
	require.NoError(t, BindFlags(v, fs, map[string]string{"base-url": KeyBaseURL}))
	c, err := LoadClient(v)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", c.BaseURL)

	assert.Error(t, BindFlags(v, fs, map[string]string{"missing": KeyLogFile}))
}
