package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bryanchriswhite/pixwin/internal/logger"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults used by the pixwin command line tools.
type Config struct {
	Display  string       `json:"display" yaml:"display"`
	LogLevel string       `json:"log_level" yaml:"log_level"`
	FPS      int          `json:"fps" yaml:"fps"`
	Window   WindowConfig `json:"window" yaml:"window"`
	Overlay  bool         `json:"overlay" yaml:"overlay"`
}

// WindowConfig describes the demo window.
type WindowConfig struct {
	Title      string `json:"title" yaml:"title"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Scale      int    `json:"scale" yaml:"scale"`
	Resizable  bool   `json:"resizable" yaml:"resizable"`
	Borderless bool   `json:"borderless" yaml:"borderless"`
	TitleBar   bool   `json:"title_bar" yaml:"title_bar"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Manager handles configuration
type Manager struct {
	configPath string
	config     *Config
	mu         sync.RWMutex
}

// DefaultPath returns $HOME/.config/pixwin/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "pixwin", "config.yaml"), nil
}

// NewManager loads configFile, or the default path when it is empty. A
// missing file is created with defaults.
func NewManager(configFile string) (*Manager, error) {
	path := configFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	m := &Manager{configPath: path}

	if err := m.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		logger.WithComponent("config").Info().
			Str("path", m.configPath).
			Msg("Config file not found, creating new config")
		m.config = Defaults()
		if err := m.Save(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	logger.WithComponent("config").Debug().
		Str("path", m.configPath).
		Msg("Config loaded")

	return m, nil
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		LogLevel: "info",
		FPS:      60,
		Overlay:  true,
		Window: WindowConfig{
			Title:    "pixwin",
			Width:    320,
			Height:   240,
			Scale:    2,
			TitleBar: true,
		},
	}
}

// load reads the configuration from disk
func (m *Manager) load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (use: debug, info, warn, error)", c.LogLevel)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale < -1 {
		return fmt.Errorf("window scale must be -1 (fit screen) or positive, got %d", c.Window.Scale)
	}
	return nil
}

// Get returns a copy of the current configuration
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return Defaults()
	}
	cfg := *m.config
	return &cfg
}

// Update replaces the configuration and saves it.
func (m *Manager) Update(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	c := *cfg
	m.config = &c
	m.mu.Unlock()
	return m.Save()
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	cfg := m.Get()

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logger.WithComponent("config").Debug().
		Str("path", m.configPath).
		Msg("Config saved")
	return nil
}

// GetConfigPath returns the configuration file path
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// field binds a dotted key to a Config field.
type field struct {
	get func(*Config) any
	set func(*Config, string) error
}

func stringField(p func(*Config) *string) field {
	return field{
		get: func(c *Config) any { return *p(c) },
		set: func(c *Config, v string) error { *p(c) = v; return nil },
	}
}

func intField(p func(*Config) *int) field {
	return field{
		get: func(c *Config) any { return *p(c) },
		set: func(c *Config, v string) error {
			n, err := cast.ToIntE(v)
			if err != nil {
				return fmt.Errorf("invalid number: %s", v)
			}
			*p(c) = n
			return nil
		},
	}
}

func boolField(p func(*Config) *bool) field {
	return field{
		get: func(c *Config) any { return *p(c) },
		set: func(c *Config, v string) error {
			b, err := cast.ToBoolE(v)
			if err != nil {
				return fmt.Errorf("invalid boolean: %s (use: true or false)", v)
			}
			*p(c) = b
			return nil
		},
	}
}

var fields = map[string]field{
	"display":           stringField(func(c *Config) *string { return &c.Display }),
	"log_level":         stringField(func(c *Config) *string { return &c.LogLevel }),
	"fps":               intField(func(c *Config) *int { return &c.FPS }),
	"overlay":           boolField(func(c *Config) *bool { return &c.Overlay }),
	"window.title":      stringField(func(c *Config) *string { return &c.Window.Title }),
	"window.width":      intField(func(c *Config) *int { return &c.Window.Width }),
	"window.height":     intField(func(c *Config) *int { return &c.Window.Height }),
	"window.scale":      intField(func(c *Config) *int { return &c.Window.Scale }),
	"window.resizable":  boolField(func(c *Config) *bool { return &c.Window.Resizable }),
	"window.borderless": boolField(func(c *Config) *bool { return &c.Window.Borderless }),
	"window.title_bar":  boolField(func(c *Config) *bool { return &c.Window.TitleBar }),
}

// Keys lists the settable configuration keys.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Value returns the value stored under a dotted key such as window.width.
func (m *Manager) Value(key string) (any, error) {
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return nil, fmt.Errorf("configuration key not found: %s", key)
	}
	return f.get(m.Get()), nil
}

// Set parses value for the dotted key, validates the result and saves it.
func (m *Manager) Set(key, value string) error {
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("configuration key not found: %s", key)
	}
	cfg := m.Get()
	if err := f.set(cfg, value); err != nil {
		return err
	}
	return m.Update(cfg)
}
