package zodiacal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thurmanmarka/zodiacal/internal/logging"
)

// Config is the file-level configuration for the engine and CLI.
type Config struct {
	Observer ObserverConfig `yaml:"observer"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ObserverConfig configures where charts are cast from.
type ObserverConfig struct {
	// Latitude in degrees, north positive
	Latitude float64 `yaml:"latitude"`
	// Longitude in degrees, east positive
	Longitude float64 `yaml:"longitude"`
	// HouseSystem is a name ("porphyry") or one-letter code ("O")
	HouseSystem string `yaml:"house_system"`
	// Flags is passed through to the ephemeris unchanged
	Flags int `yaml:"flags"`
}

// OutputConfig configures how positions are assembled.
type OutputConfig struct {
	// Rounding is truncate, second or minute
	Rounding string `yaml:"rounding"`
	// Midheaven is legacy or true
	Midheaven string `yaml:"midheaven"`
	// HorizonLatitude is legacy (midheaven declination) or geographic
	HorizonLatitude string `yaml:"horizon_latitude"`
	// ZeroFortunaMotion reports the Fortuna Part without latitude or speed
	ZeroFortunaMotion bool `yaml:"zero_fortuna_motion"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig toggles the stdout span exporter.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// MetricsConfig toggles Prometheus collectors.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Observer: ObserverConfig{
			HouseSystem: "porphyry",
			Flags:       int(FlagSwissEph | FlagSpeed),
		},
		Output: OutputConfig{
			Rounding:        Truncate.String(),
			Midheaven:       MidheavenLegacy.String(),
			HorizonLatitude: HorizonLegacy.String(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Tracing: TracingConfig{
			ServiceName: "zodiacal",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		return fmt.Errorf("observer.latitude must be between -90 and 90")
	}
	if c.Observer.Longitude < -180 || c.Observer.Longitude > 180 {
		return fmt.Errorf("observer.longitude must be between -180 and 180")
	}
	if _, err := ParseHouseSystem(c.Observer.HouseSystem); err != nil {
		return fmt.Errorf("observer.house_system: %w", err)
	}
	if _, err := ParseRounding(c.Output.Rounding); err != nil {
		return fmt.Errorf("output.rounding: %w", err)
	}
	if _, err := ParseMidheavenSource(c.Output.Midheaven); err != nil {
		return fmt.Errorf("output.midheaven: %w", err)
	}
	if _, err := ParseHorizonLatitude(c.Output.HorizonLatitude); err != nil {
		return fmt.Errorf("output.horizon_latitude: %w", err)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q is not text or json", c.Logging.Format)
	}
	return nil
}

// ToObserver builds the Observer described by the configuration. Call Validate
// first; an unknown house system here is an error.
func (c *Config) ToObserver() (Observer, error) {
	hs, err := ParseHouseSystem(c.Observer.HouseSystem)
	if err != nil {
		return Observer{}, err
	}
	return Observer{
		Latitude:    c.Observer.Latitude,
		Longitude:   c.Observer.Longitude,
		HouseSystem: hs,
		Flags:       Flags(c.Observer.Flags),
	}, nil
}

// EngineOptions returns the engine options described by the output section.
func (c *Config) EngineOptions() ([]Option, error) {
	r, err := ParseRounding(c.Output.Rounding)
	if err != nil {
		return nil, err
	}
	m, err := ParseMidheavenSource(c.Output.Midheaven)
	if err != nil {
		return nil, err
	}
	h, err := ParseHorizonLatitude(c.Output.HorizonLatitude)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithRounding(r), WithMidheaven(m), WithHorizonLatitude(h)}
	if c.Output.ZeroFortunaMotion {
		opts = append(opts, WithZeroFortunaMotion())
	}
	return opts, nil
}

// LoadConfig loads configuration from a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
