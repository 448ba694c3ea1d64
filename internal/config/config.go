package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBodies = world.DefaultBodies
	DefaultWidth  = 960.0
	DefaultHeight = 360.0
	DefaultFPS    = 60
	DefaultFrames = 600
	DefaultScale  = 4.0
	DefaultTheme  = "cyberpunk"
)

var (
	ErrInvalidViewport = errors.New("config: viewport must be positive")
	ErrInvalidFPS      = errors.New("config: fps must be positive")
	ErrInvalidScale    = errors.New("config: scale must be positive")
	ErrInvalidColor    = errors.New("config: palette colours must be #rrggbb")
)

type Config struct {
	Bodies  int      `yaml:"bodies"`
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	Seed    int64    `yaml:"seed"`
	FPS     int      `yaml:"fps"`
	Frames  int      `yaml:"frames"`
	Scale   float64  `yaml:"scale"`
	Theme   string   `yaml:"theme"`
	Palette []string `yaml:"palette"`
}

func DefaultConfig() *Config {
	palette := make([]string, len(physics.DefaultPalette))
	for i, c := range physics.DefaultPalette {
		palette[i] = string(c)
	}
	return &Config{
		Bodies:  DefaultBodies,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		FPS:     DefaultFPS,
		Frames:  DefaultFrames,
		Scale:   DefaultScale,
		Theme:   DefaultTheme,
		Palette: palette,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the file
// keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Palette = append([]string(nil), base.Palette...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings no host can run with. A degenerate but positive
// viewport is allowed; the world clamps placement itself.
func (c *Config) Validate() error {
	if c.Bodies < 0 {
		return fmt.Errorf("%w: %d", world.ErrInvalidBodyCount, c.Bodies)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidViewport, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidScale, c.Scale)
	}
	if len(c.Palette) == 0 {
		return world.ErrEmptyPalette
	}
	for _, p := range c.Palette {
		if !validHex(p) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, p)
		}
	}
	return nil
}

func (c *Config) Colors() []physics.Color {
	colors := make([]physics.Color, len(c.Palette))
	for i, p := range c.Palette {
		colors[i] = physics.Color(p)
	}
	return colors
}

// WorldOptions translates the population settings. A zero seed means random.
func (c *Config) WorldOptions() []world.Option {
	opts := []world.Option{
		world.WithBodies(c.Bodies),
		world.WithPalette(c.Colors()),
	}
	if c.Seed != 0 {
		opts = append(opts, world.WithSeed(c.Seed))
	}
	return opts
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, ch := range s[1:] {
		switch {
		case ch >= '0' && ch <= '9', ch >= 'a' && ch <= 'f', ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
