package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvAPIBase   = "PRICESCOPE_API_BASE"
	EnvAssetID   = "PRICESCOPE_ASSET_ID"
	EnvExportDir = "PRICESCOPE_EXPORT_DIR"
)

// ApplyEnv overrides config values from a .env file and the process
// environment. The process environment wins over the file. A missing
// .env file is not an error.
func (c *Config) ApplyEnv(envFile string) error {
	fileVals := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", envFile, err)
		}
		if vals != nil {
			fileVals = vals
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok && v != ""
	}

	if v, ok := lookup(EnvAPIBase); ok {
		c.API.BaseURL = v
	}
	if v, ok := lookup(EnvAssetID); ok {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return fmt.Errorf("%s: invalid asset id %q", EnvAssetID, v)
		}
		c.API.AssetID = id
	}
	if v, ok := lookup(EnvExportDir); ok {
		c.Export.Dir = v
	}
	return nil
}
