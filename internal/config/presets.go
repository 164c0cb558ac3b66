package config

import "sort"

// Preset is a named angle worth jumping to.
type Preset struct {
	Angle       int
	Description string
}

var Presets = map[string]Preset{
	"zero":     {Angle: 0, Description: "cot and cosec undefined"},
	"pi6":      {Angle: 30, Description: "sin = 1/2"},
	"pi4":      {Angle: 45, Description: "sin = cos, tan = 1"},
	"pi3":      {Angle: 60, Description: "cos = 1/2"},
	"right":    {Angle: 90, Description: "tan and sec undefined"},
	"q2":       {Angle: 135, Description: "only sin and cosec positive"},
	"straight": {Angle: 180, Description: "cot and cosec undefined"},
	"q3":       {Angle: 225, Description: "only tan and cot positive"},
	"three":    {Angle: 270, Description: "tan and sec undefined"},
	"q4":       {Angle: 315, Description: "only cos and sec positive"},
	"full":     {Angle: 360, Description: "closes quadrant 4"},
}

// GetPreset returns a default config with the named preset's angle, or nil
// if the preset does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Angle = p.Angle
	return cfg
}

// ListPresets returns preset names ordered by angle.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]].Angle < Presets[names[j]].Angle ||
			(Presets[names[i]].Angle == Presets[names[j]].Angle && names[i] < names[j])
	})
	return names
}
