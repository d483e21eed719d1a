package settings

import "xmas-tree/internal/treeconfig"

// Field names a numeric setting the overlay can step.
type Field int

const (
	Intensity Field = iota
	RotationSpeed
)

// Nudge moves field by steps×treeconfig.Step, clamps it into bounds and rounds to one decimal.
func Nudge(store *treeconfig.Store, field Field, steps int) error {
	delta := float32(steps) * treeconfig.Step
	return apply(store, func(c treeconfig.Config) treeconfig.Config {
		switch field {
		case Intensity:
			c.Intensity = treeconfig.Round1(c.Intensity + delta)
		case RotationSpeed:
			c.RotationSpeed = treeconfig.Round1(c.RotationSpeed + delta)
		}
		return c.Clamped()
	})
}

// apply replaces the stored config with fn's result unless nothing changed, so dragging a
// slider without moving it does not bump the store version every frame.
func apply(store *treeconfig.Store, fn func(treeconfig.Config) treeconfig.Config) error {
	cur := store.Load()
	next := fn(cur)
	if next == cur {
		return nil
	}
	return store.Replace(next)
}

// Fraction reports where field sits between its bounds, 0 to 1. The overlay uses it to draw sliders.
func Fraction(c treeconfig.Config, field Field) float32 {
	switch field {
	case Intensity:
		return (c.Intensity - treeconfig.MinIntensity) / (treeconfig.MaxIntensity - treeconfig.MinIntensity)
	case RotationSpeed:
		return (c.RotationSpeed - treeconfig.MinRotationSpeed) / (treeconfig.MaxRotationSpeed - treeconfig.MinRotationSpeed)
	}
	return 0
}

// SetFraction sets field from a slider position f in [0, 1], snapped to the slider step.
func SetFraction(store *treeconfig.Store, field Field, f float32) error {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return apply(store, func(c treeconfig.Config) treeconfig.Config {
		switch field {
		case Intensity:
			c.Intensity = treeconfig.Round1(treeconfig.MinIntensity + f*(treeconfig.MaxIntensity-treeconfig.MinIntensity))
		case RotationSpeed:
			c.RotationSpeed = treeconfig.Round1(treeconfig.MinRotationSpeed + f*(treeconfig.MaxRotationSpeed-treeconfig.MinRotationSpeed))
		}
		return c.Clamped()
	})
}
