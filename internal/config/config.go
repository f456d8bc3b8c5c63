package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"noir/pkg/game/generator"
)

type Config struct {
	Environment string
	LogLevel    slog.Level

	Seed                   int64
	Suspects               int
	Clues                  int
	KillerTell             bool
	AllowIncidentalOverlap bool
	HonestSuspects         bool
	MarkerAttempts         int

	LocalePath string
	Language   string
}

// Load reads the configuration from the environment, after loading envFiles
// (".env" when none are given). Missing env files are ignored; variables
// already set in the environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var errs []error
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),

		Seed:                   getInt64(&errs, "NOIR_SEED", 0),
		Suspects:               getInt(&errs, "NOIR_SUSPECTS", 3),
		Clues:                  getInt(&errs, "NOIR_CLUES", 3),
		KillerTell:             getBool(&errs, "NOIR_KILLER_TELL", false),
		AllowIncidentalOverlap: getBool(&errs, "NOIR_ALLOW_OVERLAP", true),
		HonestSuspects:         getBool(&errs, "NOIR_HONEST_SUSPECTS", false),
		MarkerAttempts:         getInt(&errs, "NOIR_MARKER_ATTEMPTS", 1000),

		LocalePath: getEnv("NOIR_LOCALE_PATH", "locales"),
		Language:   getEnv("NOIR_LANGUAGE", "en"),
	}

	if err := cfg.Generation().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Generation returns the mystery generator settings.
func (c *Config) Generation() generator.Config {
	return generator.Config{
		SuspectCount:           c.Suspects,
		ClueCount:              c.Clues,
		KillerTell:             c.KillerTell,
		AllowIncidentalOverlap: c.AllowIncidentalOverlap,
		HonestSuspects:         c.HonestSuspects,
		MarkerAttempts:         c.MarkerAttempts,
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(errs *[]error, key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return n
}

func getInt64(errs *[]error, key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return n
}

func getBool(errs *[]error, key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return b
}
