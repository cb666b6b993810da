package hero

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Theme preference values accepted in a Config.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultTPS    = 60
)

// Config is the runner configuration, loaded from YAML.
type Config struct {
	Title         string        `yaml:"title"`
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	TPS           int           `yaml:"tps"`
	Theme         string        `yaml:"theme"`
	Heading       string        `yaml:"heading"`
	Tagline       string        `yaml:"tagline"`
	Hint          string        `yaml:"hint"`
	Button        string        `yaml:"button"`
	TypeSpeed     time.Duration `yaml:"type_speed"`
	Particles     FieldSettings `yaml:"particles"`
	ShowFPS       bool          `yaml:"show_fps"`
	Debug         bool          `yaml:"debug"`
	ScreenshotDir string        `yaml:"screenshot_dir"`
}

// FieldSettings is the YAML form of the particle seeding.
type FieldSettings struct {
	PixelsPerParticle float64 `yaml:"pixels_per_particle"`
	BaseCount         int     `yaml:"base_count"`
	MaxSpeed          float64 `yaml:"max_speed"`
	MinRadius         float64 `yaml:"min_radius"`
	MaxRadius         float64 `yaml:"max_radius"`
	// Seed fixes the particle layout; zero seeds randomly.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the stock banner configuration.
func DefaultConfig() *Config {
	def := DefaultFieldConfig()
	return &Config{
		Title:     DefaultHeading,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		TPS:       DefaultTPS,
		Theme:     ThemeDark,
		Heading:   DefaultHeading,
		Tagline:   DefaultTagline,
		Hint:      DefaultHint,
		Button:    DefaultButton,
		TypeSpeed: DefaultTypeSpeed,
		Particles: FieldSettings{
			PixelsPerParticle: def.PixelsPerParticle,
			BaseCount:         def.BaseCount,
			MaxSpeed:          def.Speed.Max,
			MinRadius:         def.Radius.Min,
			MaxRadius:         def.Radius.Max,
		},
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML.
func SaveConfig(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		errs = append(errs, fmt.Errorf("theme %q must be %q or %q", c.Theme, ThemeDark, ThemeLight))
	}
	if c.TypeSpeed < 0 {
		errs = append(errs, fmt.Errorf("type speed %v must not be negative", c.TypeSpeed))
	}
	p := c.Particles
	if p.PixelsPerParticle <= 0 {
		errs = append(errs, fmt.Errorf("pixels per particle %v must be positive", p.PixelsPerParticle))
	}
	if p.BaseCount < 0 {
		errs = append(errs, fmt.Errorf("base count %d must not be negative", p.BaseCount))
	}
	if p.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("max speed %v must be positive", p.MaxSpeed))
	}
	if p.MinRadius <= 0 || p.MaxRadius < p.MinRadius {
		errs = append(errs, fmt.Errorf("radius range [%v, %v) is invalid", p.MinRadius, p.MaxRadius))
	}
	return errors.Join(errs...)
}

// PrefersDark reports whether the configured theme is dark.
func (c *Config) PrefersDark() bool {
	return c.Theme != ThemeLight
}

// FieldConfig converts the particle settings.
func (c *Config) FieldConfig() FieldConfig {
	p := c.Particles
	cfg := FieldConfig{
		PixelsPerParticle: p.PixelsPerParticle,
		BaseCount:         p.BaseCount,
		Speed:             Range{-p.MaxSpeed, p.MaxSpeed},
		Radius:            Range{p.MinRadius, p.MaxRadius},
	}
	if p.Seed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))
	}
	return cfg
}

// Options converts the configuration into mount options.
func (c *Config) Options() Options {
	return Options{
		Heading:   c.Heading,
		Tagline:   c.Tagline,
		Hint:      c.Hint,
		Button:    c.Button,
		TypeSpeed: c.TypeSpeed,
		Field:     c.FieldConfig(),
		Debug:     c.Debug,
	}
}

// presets are named particle densities.
var presets = map[string]FieldSettings{
	"default": {PixelsPerParticle: 10, BaseCount: 50, MaxSpeed: 0.25, MinRadius: 1, MaxRadius: 4},
	"sparse":  {PixelsPerParticle: 40, BaseCount: 20, MaxSpeed: 0.15, MinRadius: 1, MaxRadius: 3},
	"dense":   {PixelsPerParticle: 4, BaseCount: 100, MaxSpeed: 0.4, MinRadius: 0.5, MaxRadius: 3},
}

// ApplyPreset replaces the particle settings with a named preset, keeping
// the seed.
func (c *Config) ApplyPreset(name string) error {
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q (have %v)", name, ListPresets())
	}
	p.Seed = c.Particles.Seed
	c.Particles = p
	return nil
}

// ListPresets returns the preset names in order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
