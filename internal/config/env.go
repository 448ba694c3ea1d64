package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const EnvPrefix = "PARTICLESIM_"

// LoadEnv reads a dotenv file into the process environment. Variables that
// are already set win, and a missing file is not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overlays PARTICLESIM_* variables onto cfg. lookup is normally
// os.LookupEnv.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	ints := map[string]*int{"BODIES": &cfg.Bodies, "FPS": &cfg.FPS, "FRAMES": &cfg.Frames}
	for name, dst := range ints {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	floats := map[string]*float64{"WIDTH": &cfg.Width, "HEIGHT": &cfg.Height, "SCALE": &cfg.Scale}
	for name, dst := range floats {
		if v, ok := get(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = f
		}
	}

	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		cfg.Seed = seed
	}
	if v, ok := get("THEME"); ok {
		cfg.Theme = v
	}
	if v, ok := get("PALETTE"); ok {
		cfg.Palette = cfg.Palette[:0:0]
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.Palette = append(cfg.Palette, c)
			}
		}
	}
	return nil
}
