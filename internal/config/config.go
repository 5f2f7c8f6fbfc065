package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultDatabaseURL    = "findmygym.db"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultJWTAccessTTL   = "24h"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultRateLimitRPS   = "5"
	defaultRateLimitBurst = "10"
	defaultFeaturedTTL    = "5m"
	defaultRecentTTL      = "720h"
	defaultTimezone       = "Asia/Kolkata"
)

type Config struct {
	AppEnv    string          `yaml:"app_env"`
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Redis     RedisConfig     `yaml:"redis"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`

	// Timezone is the zone gym opening hours are written in.
	Timezone string         `yaml:"timezone"`
	Location *time.Location `yaml:"-"`
}

type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"`
	JWTAccessTTL time.Duration `yaml:"jwt_access_ttl"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type CacheConfig struct {
	FeaturedTTL time.Duration `yaml:"featured_ttl"`
	RecentTTL   time.Duration `yaml:"recent_ttl"`
}

// Load reads .env (when present), an optional YAML file named by CONFIG_PATH, then applies
// environment overrides and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := defaults()
	if err != nil {
		return nil, err
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() (*Config, error) {
	cfg := &Config{
		AppEnv:   "dev",
		Timezone: defaultTimezone,
		HTTP:     HTTPConfig{Addr: defaultHTTPAddr},
		Database: DatabaseConfig{URL: defaultDatabaseURL},
		Auth:     AuthConfig{JWTSecret: defaultJWTSecret},
		Logging:  LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat, Output: "stdout"},
	}

	var err error
	if cfg.Auth.JWTAccessTTL, err = time.ParseDuration(defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	if cfg.Cache.FeaturedTTL, err = time.ParseDuration(defaultFeaturedTTL); err != nil {
		return nil, err
	}
	if cfg.Cache.RecentTTL, err = time.ParseDuration(defaultRecentTTL); err != nil {
		return nil, err
	}
	if cfg.RateLimit.RPS, err = strconv.ParseFloat(defaultRateLimitRPS, 64); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = strconv.Atoi(defaultRateLimitBurst); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := firstEnv("APP_ENV", "ENV"); v != "" {
		cfg.AppEnv = v
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	cfg.HTTP.Addr = strings.TrimSpace(getEnv("HTTP_ADDR", cfg.HTTP.Addr))
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.HTTP.AllowedOrigins = append(cfg.HTTP.AllowedOrigins, o)
			}
		}
	}

	cfg.Database.URL = strings.TrimSpace(getEnv("DATABASE_URL", cfg.Database.URL))
	cfg.Timezone = strings.TrimSpace(getEnv("TIMEZONE", cfg.Timezone))
	cfg.Auth.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", cfg.Auth.JWTSecret))
	cfg.Redis.Addr = strings.TrimSpace(getEnv("REDIS_ADDR", cfg.Redis.Addr))
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Logging.Level = strings.TrimSpace(getEnv("LOG_LEVEL", cfg.Logging.Level))
	cfg.Logging.Format = strings.TrimSpace(getEnv("LOG_FORMAT", cfg.Logging.Format))
	if path := strings.TrimSpace(os.Getenv("LOG_FILE")); path != "" {
		cfg.Logging.Output = "file"
		cfg.Logging.FilePath = path
	}

	var err error
	if cfg.Redis.DB, err = parseIntEnv("REDIS_DB", cfg.Redis.DB); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = parseIntEnv("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); v != "" {
		if cfg.RateLimit.RPS, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS value %q: %w", v, err)
		}
	}
	if cfg.Auth.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", cfg.Auth.JWTAccessTTL); err != nil {
		return err
	}
	if cfg.Cache.FeaturedTTL, err = parseDurationEnv("FEATURED_CACHE_TTL", cfg.Cache.FeaturedTTL); err != nil {
		return err
	}
	if cfg.Cache.RecentTTL, err = parseDurationEnv("RECENT_VIEWS_TTL", cfg.Cache.RecentTTL); err != nil {
		return err
	}
	return nil
}

func validateConfig(cfg *Config) error {
	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if cfg.HTTP.Addr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	if cfg.Auth.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.Cache.FeaturedTTL <= 0 {
		return fmt.Errorf("FEATURED_CACHE_TTL must be > 0")
	}
	if cfg.Cache.RecentTTL <= 0 {
		return fmt.Errorf("RECENT_VIEWS_TTL must be > 0")
	}
	if cfg.RateLimit.RPS <= 0 || cfg.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be > 0")
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.Auth.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if !strings.HasPrefix(cfg.Database.URL, "postgres") {
			return fmt.Errorf("in prod/release DATABASE_URL must point to PostgreSQL")
		}
	}

	return nil
}

// IsProd reports whether the app runs in a production-like environment.
func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(os.Getenv(n)); v != "" {
			return v
		}
	}
	return ""
}
