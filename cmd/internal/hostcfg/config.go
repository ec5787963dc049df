// Package hostcfg loads the optional YAML configuration shared by the
// windowed hosts. The engine core itself takes no configuration files.
package hostcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dyngine/dyngine/common"
)

// Config is the host configuration. Zero values fall back to defaults.
type Config struct {
	// Title overrides the localized window title when non-empty.
	Title string `yaml:"title"`
	// Width is the initial window width in pixels.
	Width int `yaml:"width"`
	// Height is the initial window height in pixels.
	Height int `yaml:"height"`
	// SampleCount is the MSAA sample count (1 disables multisampling).
	SampleCount uint32 `yaml:"sample_count"`
	// Locale is the preferred BCP 47 locale for host-facing strings.
	Locale string `yaml:"locale"`
}

// Default returns the configuration used when no file is present.
//
// Returns:
//   - Config: the default host configuration
func Default() Config {
	return Config{
		Width:       1280,
		Height:      720,
		SampleCount: 1,
		Locale:      "en-US",
	}
}

// Load reads a YAML configuration file, filling unset fields with defaults.
// A missing file is not an error; the defaults are returned.
//
// Parameters:
//   - path: the configuration file path
//
// Returns:
//   - Config: the loaded configuration
//   - error: error when the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Title = common.Coalesce(loaded.Title, cfg.Title)
	cfg.SampleCount = common.Coalesce(loaded.SampleCount, cfg.SampleCount)
	cfg.Locale = common.Coalesce(loaded.Locale, cfg.Locale)
	// Dimensions keep an explicit positive guard; a negative value is not a
	// zero value, but it must not win either.
	if loaded.Width > 0 {
		cfg.Width = loaded.Width
	}
	if loaded.Height > 0 {
		cfg.Height = loaded.Height
	}
	return cfg, nil
}
