package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/mahmoudabadi/portfolio/internal/locale"
)

// EnvPrefix marks environment variables that override the config file.
const EnvPrefix = "PORTFOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: PORTFOLIO_PORT -> port,
	// PORTFOLIO_PROFILE_NAME -> profile.name.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "profile_"); ok {
		return "profile." + rest
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}

	if _, err := c.Language(); err != nil {
		return fmt.Errorf("invalid default_language: %w", err)
	}

	if _, err := c.TTL(); err != nil {
		return err
	}

	if c.ContentDir != "" {
		info, err := os.Stat(c.ContentDir)
		if err != nil {
			return fmt.Errorf("content_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("content_dir %s is not a directory", c.ContentDir)
		}
	}

	return nil
}

// Language returns the parsed default language. An empty value selects
// locale.Default.
func (c *Config) Language() (locale.Code, error) {
	if c.DefaultLanguage == "" {
		return locale.Default, nil
	}
	return locale.ParseCode(c.DefaultLanguage)
}

// TTL returns the parsed session idle timeout.
func (c *Config) TTL() (time.Duration, error) {
	if c.SessionTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid session_ttl %q: %w", c.SessionTTL, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("session_ttl must be non-negative")
	}
	return d, nil
}
