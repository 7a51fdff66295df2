// Package config holds enroll.yaml configuration types and loading.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/initializ/enroll/internal/form"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "enroll.yaml"

// Defaults.
const (
	DefaultEndpoint = "http://localhost:8080/register.jsp"
	DefaultTimeout  = 15 * time.Second
)

var (
	knownThemes     = map[string]bool{"": true, "auto": true, "dark": true, "light": true}
	knownLogLevels  = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
	knownLogFormats = map[string]bool{"": true, "text": true, "json": true}
)

// Config represents the top-level enroll.yaml configuration.
type Config struct {
	Endpoint          string        `yaml:"endpoint"`
	Timeout           time.Duration `yaml:"timeout"`
	Theme             string        `yaml:"theme,omitempty"`
	Log               LogRef        `yaml:"log,omitempty"`
	Countries         []form.Option `yaml:"countries,omitempty"`
	SecurityQuestions []form.Option `yaml:"security_questions,omitempty"`
}

// LogRef configures logging output.
type LogRef struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"` // text, json
	File   string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Endpoint:          DefaultEndpoint,
		Timeout:           DefaultTimeout,
		Theme:             "auto",
		Log:               LogRef{Level: "info", Format: "text"},
		Countries:         form.DefaultCountries,
		SecurityQuestions: form.DefaultSecurityQuestions,
	}
}

// Parse parses raw YAML bytes on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing enroll config: %w", err)
	}
	if len(cfg.Countries) == 0 {
		cfg.Countries = form.DefaultCountries
	}
	if len(cfg.SecurityQuestions) == 0 {
		cfg.SecurityQuestions = form.DefaultSecurityQuestions
	}
	return cfg, nil
}

// Load reads path, applies .env and ENROLL_* overrides and validates the
// result. A missing file is only an error when required is true.
func Load(path string, required bool) (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = Parse(data)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("reading enroll config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ENROLL_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("ENROLL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ENROLL_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("ENROLL_THEME"); v != "" {
		c.Theme = strings.ToLower(v)
	}
	if v := os.Getenv("ENROLL_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("ENROLL_LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	return nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("config error: endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config error: endpoint %q must be an http or https URL", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("config error: endpoint %q has no host", c.Endpoint)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config error: timeout must be positive, got %s", c.Timeout)
	}
	if !knownThemes[c.Theme] {
		return fmt.Errorf("config error: theme %q must be one of: auto, dark, light", c.Theme)
	}
	if !knownLogLevels[c.Log.Level] {
		return fmt.Errorf("config error: log.level %q must be one of: debug, info, warn, error", c.Log.Level)
	}
	if !knownLogFormats[c.Log.Format] {
		return fmt.Errorf("config error: log.format %q must be one of: text, json", c.Log.Format)
	}
	for i, o := range c.Countries {
		if o.Value == "" {
			return fmt.Errorf("config error: countries[%d]: value is required", i)
		}
	}
	for i, o := range c.SecurityQuestions {
		if o.Value == "" {
			return fmt.Errorf("config error: security_questions[%d]: value is required", i)
		}
	}
	return nil
}
