package layout

import "math/rand/v2"

// Cache memoizes placements by count: a layout is recomputed only when the requested count changes.
// Not safe for concurrent use; the scene owns one and calls it from the frame loop.
type Cache struct {
	rng *rand.Rand

	ornamentCount int
	ornaments     []OrnamentPlacement

	lightCount int
	lights     []LightPlacement
}

// NewCache returns an empty cache drawing ornament scales from rng.
func NewCache(rng *rand.Rand) *Cache {
	return &Cache{rng: rng}
}

// Ornaments returns the placements for count, computing them on the first call or when count differs from the last one.
func (c *Cache) Ornaments(count int) ([]OrnamentPlacement, error) {
	if c.ornaments != nil && c.ornamentCount == count {
		return c.ornaments, nil
	}
	out, err := Ornaments(count, c.rng)
	if err != nil {
		return nil, err
	}
	c.ornamentCount, c.ornaments = count, out
	return out, nil
}

// Lights returns the placements for count, recomputing only on a count change.
func (c *Cache) Lights(count int) ([]LightPlacement, error) {
	if c.lights != nil && c.lightCount == count {
		return c.lights, nil
	}
	out, err := Lights(count)
	if err != nil {
		return nil, err
	}
	c.lightCount, c.lights = count, out
	return out, nil
}
