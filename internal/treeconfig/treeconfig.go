package treeconfig

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinIntensity     = 0
	MaxIntensity     = 3
	MinRotationSpeed = 0
	MaxRotationSpeed = 2
	// Step is the increment used by the settings panel sliders.
	Step = 0.1
)

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrOutOfRange   = errors.New("value out of range")
)

// Config holds the visual parameters of the tree. It is a plain value: edits build a new
// Config and hand it to Store.Replace, the scene never sees a half-edited record.
type Config struct {
	TreeColor     string  `yaml:"tree_color" env:"TREE_COLOR"`
	OrnamentColor string  `yaml:"ornament_color" env:"TREE_ORNAMENT_COLOR"`
	LightsColor   string  `yaml:"lights_color" env:"TREE_LIGHTS_COLOR"`
	Intensity     float32 `yaml:"intensity" env:"TREE_INTENSITY"`
	RotationSpeed float32 `yaml:"rotation_speed" env:"TREE_ROTATION_SPEED"`
}

// Default returns the startup look: deep emerald tree, antique gold ornaments, bright gold lights.
func Default() Config {
	return Config{
		TreeColor:     "#003318",
		OrnamentColor: "#C5A059",
		LightsColor:   "#FFD700",
		Intensity:     1.5,
		RotationSpeed: 1.0,
	}
}

// Validate reports the first field that is not a parsable color or lies outside the slider bounds.
func (c Config) Validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{"tree_color", c.TreeColor},
		{"ornament_color", c.OrnamentColor},
		{"lights_color", c.LightsColor},
	} {
		if _, err := ParseColor(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	if err := checkRange("intensity", c.Intensity, MinIntensity, MaxIntensity); err != nil {
		return err
	}
	return checkRange("rotation_speed", c.RotationSpeed, MinRotationSpeed, MaxRotationSpeed)
}

func checkRange(name string, v, lo, hi float32) error {
	if math.IsNaN(float64(v)) || v < lo || v > hi {
		return fmt.Errorf("%s %v not in [%v, %v]: %w", name, v, lo, hi, ErrOutOfRange)
	}
	return nil
}

// Clamped returns a copy with Intensity and RotationSpeed pulled into their bounds. NaN becomes the lower bound.
func (c Config) Clamped() Config {
	c.Intensity = clamp(c.Intensity, MinIntensity, MaxIntensity)
	c.RotationSpeed = clamp(c.RotationSpeed, MinRotationSpeed, MaxRotationSpeed)
	return c
}

func clamp(v, lo, hi float32) float32 {
	if math.IsNaN(float64(v)) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round1 rounds v to one decimal, the precision shown and stepped by the settings panel.
func Round1(v float32) float32 {
	return float32(math.Round(float64(v)*10) / 10)
}
