package treeconfig

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// glowWhiten is how far the lights color is pushed toward white for the halo around each bulb.
const glowWhiten = 0.35

// Palette is a Config's colors resolved for drawing.
type Palette struct {
	Tree     color.RGBA
	Ornament color.RGBA
	Lights   color.RGBA
	// Glow is the lights color lifted toward white; used for halos and the star.
	Glow color.RGBA
}

// ParseColor parses "#rgb" or "#rrggbb" (surrounding spaces allowed).
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	return c, nil
}

// Palette resolves the three colors. Call only on a validated Config; unparsable colors resolve to black.
func (c Config) Palette() Palette {
	tree, _ := ParseColor(c.TreeColor)
	orn, _ := ParseColor(c.OrnamentColor)
	lights, _ := ParseColor(c.LightsColor)
	glow := lights.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, glowWhiten).Clamped()
	return Palette{
		Tree:     toRGBA(tree),
		Ornament: toRGBA(orn),
		Lights:   toRGBA(lights),
		Glow:     toRGBA(glow),
	}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// NormalizeColor returns s in canonical "#rrggbb" form.
func NormalizeColor(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
