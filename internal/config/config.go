package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config defines the export run configuration.
type Config struct {
	// Source is the path to the Photos.app library.
	Source string `yaml:"source"`
	// Destination is the export directory root.
	Destination string `yaml:"destination"`
	// DryRun suppresses file copies and metadata writes.
	DryRun bool `yaml:"dryrun"`
	// Exif enables capture-date synchronization on exported files.
	Exif bool `yaml:"exif"`
	// Faces writes tagged person names as keywords on exported files.
	Faces bool `yaml:"faces"`
	// Locations appends the dominant place name to day directories.
	Locations bool `yaml:"locations"`
	// Hierarchy composes the full region hierarchy into the place name.
	// Implies Locations.
	Hierarchy bool `yaml:"hierarchy"`
	// Progress shows a console progress bar. Mutually exclusive with
	// Verbose.
	Progress bool `yaml:"progress"`
	Verbose  bool `yaml:"verbose"`
}

// Default returns the conventional-path defaults.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Source:      filepath.Join(home, "Pictures", "Photos Library.photoslibrary"),
		Destination: filepath.Join(home, "Desktop", "Photos"),
		Exif:        true,
		Progress:    true,
	}
}

// Load reads configuration from an optional YAML file and environment
// variables on top of the defaults. Command-line flags are layered on
// afterwards by the caller.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("PHOTOS_EXPORT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("PHOTOS_EXPORT_SOURCE"); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv("PHOTOS_EXPORT_DESTINATION"); v != "" {
		cfg.Destination = v
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// Normalize expands ~ paths and reconciles dependent flags.
func (c *Config) Normalize() {
	c.Source = expandHome(c.Source)
	c.Destination = expandHome(c.Destination)
	if c.Hierarchy {
		c.Locations = true
	}
	if c.Verbose {
		c.Progress = false
	}
}

// Validate checks that both roots are usable directories.
func (c Config) Validate() error {
	if !isDir(c.Source) {
		return fmt.Errorf("library source path does not appear to be a directory: %s", c.Source)
	}
	if !isDir(c.Destination) {
		return fmt.Errorf("destination path does not appear to be a directory: %s", c.Destination)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
