package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"wayfind/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Venue      VenueConfig    `toml:"venue"`
	Directory  DirectoryConfig `toml:"directory"`
	Categories []Category     `toml:"categories"`
	UI         UISettings     `toml:"ui"`
}

// VenueConfig holds the map data provider credentials
type VenueConfig struct {
	Key     string `toml:"key"`
	Secret  string `toml:"secret"`
	VenueID string `toml:"venue_id"`
}

// DirectoryConfig controls how the store catalog is built
type DirectoryConfig struct {
	ExcludeKeywords []string `toml:"exclude_keywords"` // case-insensitive substring denylist
	FeaturedCount   int      `toml:"featured_count"`   // stores promoted with markers
}

// Category is a directory filter pill with its name-match keywords
type Category struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	FocusFirstMatch bool `toml:"focus_first_match"` // camera focus on first text search hit
	AutosaveOnExit  bool `toml:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
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

	wayfindDir := filepath.Join(configDir, "wayfind")
	os.MkdirAll(wayfindDir, 0755)

	return &configService{
		filePath: filepath.Join(wayfindDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cs.filePath)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

func (cs *configService) publishLoaded(path string) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
}

// applyDefaults fills in fields a hand-written config file commonly omits
func applyDefaults(cfg *Config) {
	if len(cfg.Directory.ExcludeKeywords) == 0 {
		cfg.Directory.ExcludeKeywords = defaultExcludeKeywords()
	}
	if cfg.Directory.FeaturedCount == 0 {
		cfg.Directory.FeaturedCount = 5
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Venue: VenueConfig{
			VenueID: "demo",
		},
		Directory: DirectoryConfig{
			ExcludeKeywords: defaultExcludeKeywords(),
			FeaturedCount:   5,
		},
		Categories: DefaultCategories(),
		UI: UISettings{
			FocusFirstMatch: true,
			AutosaveOnExit:  true,
		},
	}
}

func defaultExcludeKeywords() []string {
	return []string{"washroom", "corridor"}
}

// DefaultCategories returns the built-in mall category pills with the
// name keywords each one matches against.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Fashion & Apparel", Keywords: []string{"fashion", "clothing", "apparel", "shoes"}},
		{Name: "Electronics", Keywords: []string{"electronics", "tech", "phone", "computer"}},
		{Name: "Food & Dining", Keywords: []string{"restaurant", "cafe", "food", "dining"}},
		{Name: "Beauty & Health", Keywords: []string{"beauty", "health", "pharmacy", "salon"}},
		{Name: "Home & Garden", Keywords: []string{"home", "furniture", "garden"}},
		{Name: "Entertainment", Keywords: []string{"cinema", "games", "entertainment"}},
		{Name: "Services", Keywords: []string{"bank", "service", "repair"}},
	}
}
