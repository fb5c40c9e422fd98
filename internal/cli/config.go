package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from the optional config file at
// ~/.config/edgekit/config.toml. Flags always override config values.
type Config struct {
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
	Cache  CacheConfig  `toml:"cache"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Format string `toml:"format"` // dot, svg, or png
	Layout string `toml:"layout"` // graphviz layout engine
	Labels bool   `toml:"labels"` // draw weight labels on edges
}

// ServeConfig holds defaults for the serve command.
type ServeConfig struct {
	Addr      string `toml:"addr"`       // listen address
	Store     string `toml:"store"`      // memory or redis
	RedisAddr string `toml:"redis_addr"` // redis host:port
}

// CacheConfig holds defaults for the render artifact cache.
type CacheConfig struct {
	Disabled bool   `toml:"disabled"`
	TTLHours int    `toml:"ttl_hours"`
	Dir      string `toml:"dir"` // overrides the XDG cache directory
}

// defaultConfig returns the built-in defaults used when no config file exists.
func defaultConfig() Config {
	return Config{
		Render: RenderConfig{Format: "svg", Layout: "neato", Labels: true},
		Serve:  ServeConfig{Addr: ":8080", Store: "memory", RedisAddr: "localhost:6379"},
		Cache:  CacheConfig{TTLHours: 7 * 24},
	}
}

// configPath returns the config file location using XDG conventions.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path over the built-in defaults.
// A missing file is not an error; malformed TOML is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadConfigOrDefaults loads the user config, falling back to defaults when
// the file is missing or unreadable. Command flags take precedence either way.
func loadConfigOrDefaults() Config {
	path, err := configPath()
	if err != nil {
		return defaultConfig()
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return defaultConfig()
	}
	return cfg
}
