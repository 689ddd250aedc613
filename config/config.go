package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

//go:embed default_config.toml
var defaultConfig []byte

// DependencyInfo is a single [[dependency]] table. Its keys are interpreted by the providers in the plugin package.
type DependencyInfo = map[string]any

type Config struct {
	Plugin struct {
		Name        string   `toml:"name"`
		Version     string   `toml:"version"`
		Main        string   `toml:"main"`
		APIVersion  string   `toml:"api-version"`
		Description string   `toml:"description"`
		Authors     []string `toml:"authors"`
		Website     string   `toml:"website"`
	} `toml:"plugin"`

	Output struct {
		// Path is the file the plugin descriptor is written to.
		Path string `toml:"path"`
		// Lock is the file that remembers which inputs the current descriptor was generated from.
		Lock string `toml:"lock"`
	} `toml:"output"`

	Coordinator Coordinator `toml:"coordinator"`

	Dependency []DependencyInfo `toml:"dependency"`
}

// Coordinator holds the settings used while waiting for the other plugins on the server to finish loading.
type Coordinator struct {
	// StableTicks is the number of consecutive ticks in which no plugin may change state before the game is set up.
	StableTicks int `toml:"stable-ticks"`
	// Tick is the polling interval, formatted as a Go duration.
	Tick string `toml:"tick"`
}

// Interval returns the polling interval. An empty tick means one server tick, 50 milliseconds.
func (c Coordinator) Interval() (time.Duration, error) {
	if c.Tick == "" {
		return 50 * time.Millisecond, nil
	}
	d, err := time.ParseDuration(c.Tick)
	if err != nil {
		return 0, fmt.Errorf("coordinator tick: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("coordinator tick must be positive, got %s", d)
	}
	return d, nil
}

// Default returns the configuration shipped with the program.
func Default() *Config {
	cfg, err := Parse(defaultConfig)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Parse decodes a configuration file. Values missing from data keep the defaults of the output and coordinator
// sections.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	cfg.Output.Path = "build/resources/main/paper-plugin.yml"
	cfg.Output.Lock = "serverready.lock"
	cfg.Coordinator.StableTicks = 20
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Coordinator.StableTicks < 0 {
		return nil, fmt.Errorf("coordinator stable-ticks must not be negative, got %d", cfg.Coordinator.StableTicks)
	}
	return cfg, nil
}

// GetOrMakeConfig tries to load the config file, and if it does not exist the default config file will be created and
// loaded.
func GetOrMakeConfig(log *zerolog.Logger, path string) (*Config, error) {
	cfgData, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Info().Msgf("Config file does not exist, creating default config...")
		if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
			return nil, fmt.Errorf("error trying to create %s: %w", path, err)
		}
		// Make sure the new data is parsed.
		cfgData = defaultConfig
	} else if err != nil {
		return nil, fmt.Errorf("error trying to open %s: %w", path, err)
	}

	cfg, err := Parse(cfgData)
	if err != nil {
		return nil, fmt.Errorf("error trying to parse %s: %w", path, err)
	}
	return cfg, nil
}
