// Package config loads settings for the dogfinder client and the sandbox
// service from defaults, an optional config file, .env files, the
// environment (DOGFINDER_ prefix) and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "DOGFINDER"

const (
	KeyBaseURL  = "api.base_url"
	KeyTimeout  = "client.timeout"
	KeyPageSize = "search.page_size"
	KeyLogFile  = "log.file"
	KeyLogLevel = "log.level"

	KeySandboxAddr           = "sandbox.addr"
	KeySandboxJWTSecret      = "sandbox.jwt_secret"
	KeySandboxTokenTTL       = "sandbox.token_ttl"
	KeySandboxDatabaseURL    = "sandbox.database_url"
	KeySandboxRedisAddr      = "sandbox.redis_addr"
	KeySandboxSeedDogs       = "sandbox.seed_dogs"
	KeySandboxRateLimit      = "sandbox.rate_limit"
	KeySandboxRateBurst      = "sandbox.rate_burst"
	KeySandboxAllowedOrigins = "sandbox.allowed_origins"
)

var (
	ErrInvalidBaseURL  = errors.New("api base url must be an absolute http(s) url")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")
	ErrMissingSecret   = errors.New("sandbox jwt secret is required")
)

// Client holds the terminal app settings.
type Client struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
	LogFile  string
	LogLevel string
}

// Sandbox holds the local Fetch service settings.
type Sandbox struct {
	Addr           string
	JWTSecret      string
	TokenTTL       time.Duration
	DatabaseURL    string
	RedisAddr      string
	SeedDogs       int
	RateLimit      float64
	RateBurst      int
	AllowedOrigins []string
	LogLevel       string
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBaseURL, "https://frontend-take-home-service.fetch.com")
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyPageSize, 20)
	v.SetDefault(KeyLogFile, "dogfinder.log")
	v.SetDefault(KeyLogLevel, "info")

	v.SetDefault(KeySandboxAddr, ":8080")
	v.SetDefault(KeySandboxJWTSecret, "")
	v.SetDefault(KeySandboxTokenTTL, time.Hour)
	v.SetDefault(KeySandboxDatabaseURL, "")
	v.SetDefault(KeySandboxRedisAddr, "")
	v.SetDefault(KeySandboxSeedDogs, 500)
	v.SetDefault(KeySandboxRateLimit, 20.0)
	v.SetDefault(KeySandboxRateBurst, 40)
	v.SetDefault(KeySandboxAllowedOrigins, []string{"http://localhost:3000"})
	return v
}

// Load reads .env files (a missing file is not an error) and, when path is
// set, the config file at path.
func Load(v *viper.Viper, path string, envFiles ...string) error {
	if err := loadDotEnv(envFiles...); err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// BindFlags maps command line flags onto config keys. Flags only override
// the config when set explicitly.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		f := flags.Lookup(flag)
		if f == nil {
			return fmt.Errorf("unknown flag %q", flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

func LoadClient(v *viper.Viper) (Client, error) {
	c := Client{
		BaseURL:  strings.TrimRight(v.GetString(KeyBaseURL), "/"),
		Timeout:  v.GetDuration(KeyTimeout),
		PageSize: v.GetInt(KeyPageSize),
		LogFile:  v.GetString(KeyLogFile),
		LogLevel: v.GetString(KeyLogLevel),
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Client{}, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return Client{}, fmt.Errorf("%w: %d", ErrInvalidPageSize, c.PageSize)
	}
	return c, nil
}

func LoadSandbox(v *viper.Viper) (Sandbox, error) {
	s := Sandbox{
		Addr:           v.GetString(KeySandboxAddr),
		JWTSecret:      v.GetString(KeySandboxJWTSecret),
		TokenTTL:       v.GetDuration(KeySandboxTokenTTL),
		DatabaseURL:    v.GetString(KeySandboxDatabaseURL),
		RedisAddr:      v.GetString(KeySandboxRedisAddr),
		SeedDogs:       v.GetInt(KeySandboxSeedDogs),
		RateLimit:      v.GetFloat64(KeySandboxRateLimit),
		RateBurst:      v.GetInt(KeySandboxRateBurst),
		AllowedOrigins: v.GetStringSlice(KeySandboxAllowedOrigins),
		LogLevel:       v.GetString(KeyLogLevel),
	}
	if s.JWTSecret == "" {
		return Sandbox{}, ErrMissingSecret
	}
	if s.TokenTTL <= 0 {
		s.TokenTTL = time.Hour
	}
	return s, nil
}
