package config

import "sort"

var Presets = map[string]*Config{
	"default": {
		Bodies: DefaultBodies, Width: DefaultWidth, Height: DefaultHeight,
	},
	"sparse": {
		Bodies: 60, Width: DefaultWidth, Height: DefaultHeight,
	},
	"crowd": {
		Bodies: 900, Width: DefaultWidth, Height: DefaultHeight,
	},
	"fullscreen": {
		Bodies: DefaultBodies, Width: 1920, Height: 540,
	},
	"pinball": {
		Bodies: 12, Width: 320, Height: 240, Seed: 7,
	},
	"cramped": {
		Bodies: 30, Width: 40, Height: 24, Seed: 1,
	},
}

// GetPreset returns the named preset layered over the defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Bodies = p.Bodies
	cfg.Width = p.Width
	cfg.Height = p.Height
	if p.Seed != 0 {
		cfg.Seed = p.Seed
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
