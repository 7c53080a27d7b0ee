package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"podium/internal/eventbus"
)

// FileName is the per-directory config file looked up next to a deck
const FileName = ".podium.toml"

// ErrInvalidConfig wraps validation failures
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	Theme      string            `toml:"theme"` // glamour style: auto, dark, light, notty, ...
	WordWrap   int               `toml:"word_wrap"`
	Animations map[string]string `toml:"animations"` // slide number (0-based) -> effect
	UISettings UISettings        `toml:"ui"`
	Watch      WatchSettings     `toml:"watch"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	CrossfadeMS  int  `toml:"crossfade_ms"`
	ShowProgress bool `toml:"show_progress"`
	ShowMenu     bool `toml:"show_menu"`
	ShowControls bool `toml:"show_controls"`
}

// WatchSettings controls deck live reload
type WatchSettings struct {
	Enabled    bool `toml:"enabled"`
	DebounceMS int  `toml:"debounce_ms"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "podium", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields defaults.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:  cs.filePath,
			Theme: cfg.Theme,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Animations == nil {
		cfg.Animations = make(map[string]string)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.WordWrap < 0 {
		return fmt.Errorf("%w: word_wrap must not be negative", ErrInvalidConfig)
	}
	if c.UISettings.CrossfadeMS < 0 {
		return fmt.Errorf("%w: ui.crossfade_ms must not be negative", ErrInvalidConfig)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("%w: watch.debounce_ms must not be negative", ErrInvalidConfig)
	}
	for key := range c.Animations {
		if _, err := strconv.Atoi(key); err != nil {
			return fmt.Errorf("%w: animations key %q is not a slide index", ErrInvalidConfig, key)
		}
	}
	return nil
}

// AnimationTable returns the [animations] table keyed by slide index.
// Keys that are not slide indexes are left out and reported.
func (c *Config) AnimationTable() (map[int]string, []error) {
	out := make(map[int]string, len(c.Animations))
	var errs []error
	for key, effect := range c.Animations {
		index, err := strconv.Atoi(key)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: animations key %q is not a slide index", ErrInvalidConfig, key))
			continue
		}
		out[index] = effect
	}
	return out, errs
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Theme:      "auto",
		WordWrap:   0, // follow terminal width
		Animations: make(map[string]string),
		UISettings: UISettings{
			CrossfadeMS:  50,
			ShowProgress: true,
			ShowMenu:     false,
			ShowControls: true,
		},
		Watch: WatchSettings{
			Enabled:    true,
			DebounceMS: 250,
		},
	}
}
