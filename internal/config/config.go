// Package config resolves runtime settings from the environment, optionally
// seeded by a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDB           = "ITINERA_DB"
	EnvCatalog      = "ITINERA_CATALOG"
	EnvLogUseCases  = "ITINERA_LOG_USE_CASES"
	EnvTimezone     = "ITINERA_TZ"
	DefaultTimezone = "America/Bahia"
	defaultDirName  = ".itinera"
	defaultDBName   = "itinera.db"
)

type Config struct {
	// DBPath is the SQLite file holding the catalog.
	DBPath string
	// CatalogPath, when set, is imported on startup if the store is empty
	// instead of the embedded catalog.
	CatalogPath string
	LogUseCases bool
	Location    *time.Location
}

// Load reads .env (if present) and then the process environment. Variables
// already set in the environment win over .env entries.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an
// error.
func LoadFrom(dotenvPath string) (*Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", dotenvPath, err)
	}

	cfg := &Config{
		DBPath:      os.Getenv(EnvDB),
		CatalogPath: os.Getenv(EnvCatalog),
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, defaultDirName, defaultDBName)
	}

	if raw := os.Getenv(EnvLogUseCases); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean %q", EnvLogUseCases, raw)
		}
		cfg.LogUseCases = on
	}

	tz := os.Getenv(EnvTimezone)
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvTimezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}
