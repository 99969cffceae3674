// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "COMPENDIUM_"

// Config holds every setting of the compendium CLI.
// Values come from defaults, then the TOML file, then COMPENDIUM_* variables;
// command-line flags are applied last by the caller.
type Config struct {
	// FoundryRoot is the local checkout of the Foundry pf2e system.
	FoundryRoot string `toml:"foundry_root" env:"FOUNDRY_ROOT"`

	// TranslationRoot is the local checkout of the pf2-fr translations.
	// Empty means entries keep their original-language text.
	TranslationRoot string `toml:"translation_root" env:"TRANSLATION_ROOT"`

	// DataDir is where the persisted snapshot lives.
	DataDir string `toml:"data_dir" env:"DATA_DIR"`

	// InMemory keeps the snapshot in memory only; nothing survives the process.
	InMemory bool `toml:"in_memory" env:"IN_MEMORY"`

	// Workers is the size of the resolution worker pool. 0 picks from the CPU count.
	Workers int `toml:"workers" env:"WORKERS"`

	// CacheSize bounds the parsed translation documents kept in memory.
	CacheSize int64 `toml:"cache_size" env:"CACHE_SIZE"`

	// Limit is the default number of search results shown.
	Limit int `toml:"limit" env:"LIMIT"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`

	Rebuild Rebuild `toml:"rebuild" envPrefix:"REBUILD_"`
}

// Rebuild holds the batching and retry settings of a rebuild.
type Rebuild struct {
	BatchSize      int           `toml:"batch_size" env:"BATCH_SIZE"`
	ReportInterval int           `toml:"report_interval" env:"REPORT_INTERVAL"`
	MaxRetries     int           `toml:"max_retries" env:"MAX_RETRIES"`
	RetryDelay     time.Duration `toml:"retry_delay" env:"RETRY_DELAY"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:   DefaultDataDir(),
		CacheSize: 4096,
		Limit:     20,
		LogLevel:  "warn",
		Rebuild: Rebuild{
			BatchSize:      500,
			ReportInterval: 1000,
			MaxRetries:     3,
			RetryDelay:     100 * time.Millisecond,
		},
	}
}

// Load builds the configuration from defaults, the TOML file at path and the
// environment. An empty path reads DefaultPath() when it exists; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		if candidate := DefaultPath(); fileExists(candidate) {
			path = candidate
		}
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("%w: %s in %s", ErrUnknownKey, strings.Join(keys, ", "), path)
	}
	return nil
}

// Normalize cleans paths and the log level.
func (c *Config) Normalize() {
	c.FoundryRoot = cleanPath(c.FoundryRoot)
	c.TranslationRoot = cleanPath(c.TranslationRoot)
	c.DataDir = cleanPath(c.DataDir)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	if !c.InMemory && c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is required unless in_memory is set", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalid)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("%w: cache_size must be positive", ErrInvalid)
	}
	if c.Limit < 1 {
		return fmt.Errorf("%w: limit must be positive", ErrInvalid)
	}
	if c.Rebuild.BatchSize < 1 || c.Rebuild.ReportInterval < 1 || c.Rebuild.MaxRetries < 1 {
		return fmt.Errorf("%w: rebuild batch_size, report_interval and max_retries must be positive", ErrInvalid)
	}
	if c.Rebuild.RetryDelay < 0 {
		return fmt.Errorf("%w: rebuild retry_delay must not be negative", ErrInvalid)
	}
	return nil
}

// RequireSources reports whether a rebuild can run.
func (c *Config) RequireSources() error {
	if c.FoundryRoot == "" {
		return ErrNoFoundryRoot
	}
	return nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/compendium/config.toml first (XDG style),
// then falls back to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "compendium", "config.toml")
		if fileExists(xdgPath) {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "compendium", "config.toml")
	}

	return filepath.Join(".", "compendium.toml")
}

// DefaultDataDir returns where snapshots are stored by default.
func DefaultDataDir() string {
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "compendium")
	}
	return filepath.Join(".", ".compendium")
}

func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return filepath.Clean(p)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
