package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "RECON_"

// Config holds all application configuration values
type Config struct {
	Port           string   `koanf:"port"`
	Mode           string   `koanf:"mode"`
	StaticDir      string   `koanf:"static_dir"`
	AllowedOrigins []string `koanf:"allowed_origins"`
	LogLevel       string   `koanf:"log_level"`
	SiteTitle      string   `koanf:"site_title"`
	Description    string   `koanf:"description"`
	Stylesheet     string   `koanf:"stylesheet"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() *Config {
	return &Config{
		Port:           "8080",
		Mode:           "release",
		StaticDir:      "static",
		AllowedOrigins: []string{"*"},
		LogLevel:       "info",
		SiteTitle:      "ReCon - Reciclaje Circular de Hormigón",
		Description:    "Reciclaje avanzado de hormigón con biocarbonatación y carbonatación acelerada.",
	}
}

// LoadConfig reads configuration from an optional .env file, an optional YAML
// file and RECON_* environment variables, in that order of precedence.
// PORT is honoured when RECON_PORT is unset.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("error reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error accessing config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" && os.Getenv(envPrefix+"PORT") == "" {
		if err := k.Set("port", port); err != nil {
			return nil, fmt.Errorf("error applying PORT: %w", err)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("error loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envValue maps RECON_FOO_BAR to foo_bar. List keys take comma separated values.
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if key == "allowed_origins" {
		var origins []string
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return key, origins
	}
	return key, value
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	p, err := strconv.Atoi(c.Port)
	if err != nil || p < 0 || p > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
