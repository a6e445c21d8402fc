package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Seed       SeedConfig
	Database   DatabaseConfig
	Attendance AttendanceConfig
	CORS       CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name              string
	Version           string
	Port              int
	Env               string
	LogLevel          string
	Timezone          string
	ClockTickInterval time.Duration
}

// SeedConfig selects where the initial snapshot is bulk-loaded from
type SeedConfig struct {
	Source   string // none, json, postgres
	FilePath string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AttendanceConfig holds attendance calculation settings
type AttendanceConfig struct {
	StandardWorkHours float64
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	SeedSourceNone     = "none"
	SeedSourceJSON     = "json"
	SeedSourcePostgres = "postgres"
)

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using environment", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	tickInterval, err := time.ParseDuration(getEnv("CLOCK_TICK_INTERVAL", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLOCK_TICK_INTERVAL: %w", err)
	}

	config.App = AppConfig{
		Name:              getEnv("APP_NAME", "attendance-dashboard"),
		Version:           getEnv("APP_VERSION", "v1.0.0"),
		Port:              appPort,
		Env:               getEnv("APP_ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Timezone:          getEnv("APP_TIMEZONE", "Local"),
		ClockTickInterval: tickInterval,
	}

	// Seed configuration
	config.Seed = SeedConfig{
		Source:   strings.ToLower(getEnv("SEED_SOURCE", SeedSourceNone)),
		FilePath: getEnv("SEED_FILE", "seed.json"),
	}

	// Database configuration, only used by the postgres seed source
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Attendance configuration
	standardHours, err := strconv.ParseFloat(getEnv("STANDARD_WORK_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_WORK_HOURS: %w", err)
	}
	config.Attendance = AttendanceConfig{
		StandardWorkHours: standardHours,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.App.ClockTickInterval <= 0 {
		return fmt.Errorf("CLOCK_TICK_INTERVAL must be positive")
	}
	switch c.Seed.Source {
	case SeedSourceNone:
	case SeedSourceJSON:
		if c.Seed.FilePath == "" {
			return fmt.Errorf("SEED_FILE is required when SEED_SOURCE=json")
		}
	case SeedSourcePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when SEED_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unsupported SEED_SOURCE: %s", c.Seed.Source)
	}
	if c.Attendance.StandardWorkHours <= 0 || c.Attendance.StandardWorkHours > 24 {
		return fmt.Errorf("STANDARD_WORK_HOURS must be between 0 and 24")
	}
	return nil
}

// Location returns the time zone "today" is evaluated in
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
