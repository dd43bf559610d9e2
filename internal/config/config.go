package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/kinemath/anim"
	"github.com/lox/kinemath/rng"
)

// Environment variables that override the file.
const (
	EnvSeed     = "KINEMATH_SEED"
	EnvLogLevel = "KINEMATH_LOG_LEVEL"
)

// RNG modes
const (
	ModeSeeded = "seeded"
	ModeSystem = "system"
)

// Config represents the complete kinemath configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	RNG      *RNGSettings  `hcl:"rng,block"`
	Tracks   []TrackConfig `hcl:"track,block"`
}

// RNGSettings configures the shared random source
type RNGSettings struct {
	Seed int64  `hcl:"seed,optional"`
	Mode string `hcl:"mode,optional"`
}

// TrackConfig defines a named keyframe track
type TrackConfig struct {
	Name      string    `hcl:"name,label"`
	Values    []float64 `hcl:"values"`
	Durations []float64 `hcl:"durations"`
	Default   *float64  `hcl:"default,optional"`
	Reverse   bool      `hcl:"reverse,optional"`
	Repeat    bool      `hcl:"repeat,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	one := 1.0
	return &Config{
		LogLevel: "info",
		RNG:      &RNGSettings{Seed: 1, Mode: ModeSeeded},
		Tracks: []TrackConfig{
			{
				Name:      "pop",
				Values:    []float64{0, 1.05, 0.98, 1},
				Durations: []float64{0.16, 0.08, 0.08},
				Default:   &one,
			},
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields Default.
// Environment overrides are applied in both cases.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		config := Default()
		if err := config.ApplyEnv(); err != nil {
			return nil, err
		}
		return config, nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	config, err := Parse(src, filename)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// Parse decodes HCL source and fills in defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.RNG == nil {
		config.RNG = &RNGSettings{Seed: 1}
	}
	if config.RNG.Mode == "" {
		config.RNG.Mode = ModeSeeded
	}

	// A track without a default settles on its last keyframe
	for i := range config.Tracks {
		tr := &config.Tracks[i]
		if tr.Default == nil && len(tr.Values) > 0 {
			last := tr.Values[len(tr.Values)-1]
			tr.Default = &last
		}
	}

	return &config, nil
}

// ApplyEnv overrides the seed and log level from the environment.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		if c.RNG == nil {
			c.RNG = &RNGSettings{Mode: ModeSeeded}
		}
		c.RNG.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	if c.RNG != nil && c.RNG.Mode != ModeSeeded && c.RNG.Mode != ModeSystem {
		return fmt.Errorf("rng: invalid mode %q, want %s or %s", c.RNG.Mode, ModeSeeded, ModeSystem)
	}

	seen := make(map[string]bool, len(c.Tracks))
	for _, tr := range c.Tracks {
		if seen[tr.Name] {
			return fmt.Errorf("track %s: defined more than once", tr.Name)
		}
		seen[tr.Name] = true
		if err := tr.Track().Validate(); err != nil {
			return fmt.Errorf("track %s: %w", tr.Name, err)
		}
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Source builds the random source described by the rng block.
func (c *Config) Source() *rng.Source {
	settings := c.RNG
	if settings == nil {
		settings = &RNGSettings{Seed: 1, Mode: ModeSeeded}
	}
	src := rng.New(settings.Seed)
	if settings.Mode == ModeSystem {
		src.SetSeeded(false)
	}
	return src
}

// GetTrackByName returns a track configuration by name
func (c *Config) GetTrackByName(name string) *TrackConfig {
	for i := range c.Tracks {
		if c.Tracks[i].Name == name {
			return &c.Tracks[i]
		}
	}
	return nil
}

// TrackNames lists the configured tracks in file order.
func (c *Config) TrackNames() []string {
	names := make([]string, 0, len(c.Tracks))
	for _, tr := range c.Tracks {
		names = append(names, tr.Name)
	}
	return names
}

// Track converts the configuration to an anim.Track.
func (tc TrackConfig) Track() anim.Track {
	return anim.Track{Values: tc.Values, Durations: tc.Durations}
}

// Options converts the configuration to anim.Options.
func (tc TrackConfig) Options() anim.Options {
	opts := anim.Options{Reverse: tc.Reverse, Repeat: tc.Repeat}
	if tc.Default != nil {
		opts.Default = *tc.Default
	}
	return opts
}
