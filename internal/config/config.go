// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Default values.
const (
	DefaultTheme     = "classic"
	DefaultCharLimit = 200
	DefaultLogLevel  = "info"
	DefaultAltScreen = true

	FileName = "todos.toml"
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// Config holds the full configuration for todos.
type Config struct {
	// Appearance
	Theme     string `toml:"theme"`
	NoColor   bool   `toml:"no_color"`
	AltScreen bool   `toml:"alt_screen"`

	// Input
	CharLimit int `toml:"char_limit"`

	// Export of the final list on exit; empty disables it.
	ExportFile string `toml:"export_file"`

	// Logging
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`

	// Files that contributed to this config, in load order.
	Sources []string `toml:"-"`
}

// Default returns a config with every default applied.
func Default() *Config {
	return &Config{
		Theme:     DefaultTheme,
		AltScreen: DefaultAltScreen,
		CharLimit: DefaultCharLimit,
		LogLevel:  DefaultLogLevel,
	}
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file ($XDG_CONFIG_HOME/todos/todos.toml or ~/.config/todos/todos.toml)
// 3. Project config file (todos.toml or .todos.toml in the current directory)
// 4. Explicit file (--config), when given
// 5. Environment variables
//
// Flags are applied by the caller on top of the result, then Validate runs.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	if p := findUserConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}
	if p := findProjectConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", p, err)
		}
	}
	if explicit != "" {
		if err := loadConfigFile(cfg, explicit); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", explicit, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	valid := false
	for _, t := range Themes {
		if t == c.Theme {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(Themes, ", "))
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("char_limit must be >= 0, got %d", c.CharLimit)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.Sources = append(cfg.Sources, path)
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODOS_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODOS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODOS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODOS_EXPORT"); v != "" {
		cfg.ExportFile = v
	}
	if v := os.Getenv("TODOS_ALT_SCREEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TODOS_ALT_SCREEN: %w", err)
		}
		cfg.AltScreen = b
	}
	if v := os.Getenv("TODOS_CHAR_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TODOS_CHAR_LIMIT: %w", err)
		}
		cfg.CharLimit = n
	}
	// https://no-color.org: any non-empty value disables colour.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return nil
}

func findUserConfigFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return existing(filepath.Join(dir, "todos", FileName))
}

func findProjectConfigFile() string {
	for _, name := range []string{FileName, "." + FileName} {
		if p := existing(name); p != "" {
			return p
		}
	}
	return ""
}

func existing(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}
