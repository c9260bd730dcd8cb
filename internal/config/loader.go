package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/fixerconf/internal/version"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"fixerconf.yml",
	"fixerconf.yaml",
	".fixerconf.yml",
	".fixerconf.yaml",
}

// Environment variables that override config file values.
const (
	EnvPHPVersion = "FIXERCONF_PHP_VERSION"
	EnvRisky      = "FIXERCONF_RISKY"
	EnvLogLevel   = "FIXERCONF_LOG_LEVEL"
	EnvLogFormat  = "FIXERCONF_LOG_FORMAT"
)

// Discover returns the path of the first config file found in dir,
// following the standard search order. It returns an empty string if
// no config file is found.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses a fixerconf config file. If configPath is non-empty,
// that file is loaded directly. Otherwise, Load searches the current working
// directory using Discover. If no config file is found, DefaultConfig is
// returned. Environment overrides are applied in every case.
//
// Partial YAML files are supported: any fields not specified in the YAML
// retain their default values.
func Load(configPath string) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(wd, configPath)
}

// LoadFrom is Load with discovery rooted at dir instead of the working
// directory. A relative configPath is resolved against dir.
func LoadFrom(dir, configPath string) (*Config, error) {
	switch {
	case configPath == "":
		configPath = Discover(dir)
	case !filepath.IsAbs(configPath):
		configPath = filepath.Join(dir, configPath)
	}

	cfg := DefaultConfig()
	if configPath != "" {
		if err := loadFile(configPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := Validate(data); err != nil {
		return fmt.Errorf("validating config file %s: %w", path, err)
	}

	// Decode over defaults so missing YAML fields retain non-zero defaults.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPHPVersion); v != "" {
		tag, err := version.Parse(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPHPVersion, err)
		}
		cfg.PHPVersion = tag
	}
	if v := os.Getenv(EnvRisky); v != "" {
		risky, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRisky, err)
		}
		cfg.Risky = risky
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	return nil
}
