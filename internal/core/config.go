package core

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/taskdeck/pkg/models"
)

// ConfigLoader defines the interface for loading taskdeck settings.
type ConfigLoader interface {
	Load() (*models.Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper to read an
// optional .taskdeckrc YAML file.
type viperConfigLoader struct {
	// basePath is the directory where .taskdeckrc resides.
	basePath string
}

// NewConfigLoader creates a ConfigLoader that reads .taskdeckrc relative
// to basePath.
func NewConfigLoader(basePath string) ConfigLoader {
	return &viperConfigLoader{basePath: basePath}
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *models.Config {
	return &models.Config{
		Color:        true,
		IDPrefixLen:  8,
		DoneGlyph:    "✓",
		PendingGlyph: "○",
		DefaultSort:  models.SortByCreation,
	}
}

// Load reads the .taskdeckrc file from the base path using Viper.
// If the file does not exist, defaults are returned.
func (cl *viperConfigLoader) Load() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".taskdeckrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cl.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("ui.color", cfg.Color)
	v.SetDefault("ui.id_prefix_len", cfg.IDPrefixLen)
	v.SetDefault("ui.glyph.done", cfg.DoneGlyph)
	v.SetDefault("ui.glyph.pending", cfg.PendingGlyph)
	v.SetDefault("defaults.sort", string(cfg.DefaultSort))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found; return defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .taskdeckrc: %w", err)
	}

	// Map nested YAML keys to flat Config fields.
	cfg.Color = v.GetBool("ui.color")
	cfg.IDPrefixLen = v.GetInt("ui.id_prefix_len")
	cfg.DoneGlyph = v.GetString("ui.glyph.done")
	cfg.PendingGlyph = v.GetString("ui.glyph.pending")
	cfg.DefaultSort = models.SortType(v.GetString("defaults.sort"))

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validating .taskdeckrc: %w", err)
	}
	return cfg, nil
}

// validateConfig rejects values the renderer cannot work with.
func validateConfig(cfg *models.Config) error {
	if !models.ValidSortType(cfg.DefaultSort) {
		return fmt.Errorf("defaults.sort must be one of title, status, creation; got %q", cfg.DefaultSort)
	}
	if cfg.IDPrefixLen < 1 || cfg.IDPrefixLen > 36 {
		return fmt.Errorf("ui.id_prefix_len must be between 1 and 36; got %d", cfg.IDPrefixLen)
	}
	if cfg.DoneGlyph == "" || cfg.PendingGlyph == "" {
		return fmt.Errorf("ui.glyph.done and ui.glyph.pending must not be empty")
	}
	return nil
}
