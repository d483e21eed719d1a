package tree

import (
	"fmt"
	"math/rand/v2"
	"time"

	"xmas-tree/internal/animation"
	"xmas-tree/internal/layout"
	"xmas-tree/internal/snow"
	"xmas-tree/internal/treeconfig"
)

const (
	DefaultOrnaments = 60
	DefaultLights    = 40
	// LightEmissiveFactor maps the intensity slider to the bulbs' emissive strength.
	LightEmissiveFactor = 4
	// StarEmissive is the star's fixed emissive strength.
	StarEmissive = 2

	coneRadius = 1.5
	coneHeight = 2.5
	ConeSides  = 32
)

// Layer is one cone of the stacked tree body, in group space.
type Layer struct {
	Center [3]float32
	Radius float32
	Height float32
}

// Layers is the cone stack, top to bottom.
func Layers() []Layer {
	stack := []struct{ y, scale float32 }{
		{1.5, 0.8},
		{0, 1.0},
		{-1.5, 1.2},
		{-2.8, 1.4},
	}
	out := make([]Layer, len(stack))
	for i, s := range stack {
		out[i] = Layer{
			Center: [3]float32{0, s.y, 0},
			Radius: coneRadius * s.scale,
			Height: coneHeight * s.scale,
		}
	}
	return out
}

// Options sizes the decorations. Zero values pick the defaults; Seed 0 seeds from the clock.
type Options struct {
	Ornaments int
	Lights    int
	Seed      uint64
}

// Tree composes the cone stack, ornaments, light strand, star and snow into one rotating group.
// Update and Frame must be called from the frame loop goroutine.
type Tree struct {
	store *treeconfig.Store
	cache *layout.Cache
	opts  Options

	layers    []Layer
	ornaments []layout.OrnamentPlacement
	lights    []layout.LightPlacement

	snow     *snow.Field
	rotation animation.Rotation
	star     animation.Star
	float    animation.Float
	pose     animation.Pose

	cfg        treeconfig.Config
	palette    treeconfig.Palette
	paletteVer uint64
	ticks      uint64
}

// New builds the tree for the config held in store.
func New(store *treeconfig.Store, opts Options) (*Tree, error) {
	if opts.Ornaments == 0 {
		opts.Ornaments = DefaultOrnaments
	}
	if opts.Lights == 0 {
		opts.Lights = DefaultLights
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	t := &Tree{
		store:  store,
		cache:  layout.NewCache(rng),
		opts:   opts,
		layers: Layers(),
		snow:   snow.New(rng),
		float:  animation.DefaultFloat(),
	}
	if err := t.rebuild(); err != nil {
		return nil, err
	}
	t.refreshConfig()
	return t, nil
}

// rebuild checks both counts before asking the cache, so a rejected pair never replaces a memoized layout.
func (t *Tree) rebuild() error {
	if err := layout.CheckCounts(t.opts.Ornaments, t.opts.Lights); err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	orn, err := t.cache.Ornaments(t.opts.Ornaments)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	lights, err := t.cache.Lights(t.opts.Lights)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	t.ornaments, t.lights = orn, lights
	return nil
}

// SetCounts changes the number of ornaments and lights. The layouts are recomputed only for a count that changed.
// On error the previous decorations stay in place.
func (t *Tree) SetCounts(ornaments, lights int) error {
	prev := t.opts
	t.opts.Ornaments, t.opts.Lights = ornaments, lights
	if err := t.rebuild(); err != nil {
		t.opts = prev
		return err
	}
	return nil
}

// refreshConfig reads the store once and re-resolves colors only when the record was replaced.
func (t *Tree) refreshConfig() {
	t.cfg = t.store.Load()
	if v := t.store.Version(); v != t.paletteVer {
		t.palette = t.cfg.Palette()
		t.paletteVer = v
	}
}

// Update advances everything that moves by delta seconds. elapsed is the total run time and drives the
// star's rock and the float. Components do not interact, so their order does not matter.
func (t *Tree) Update(delta float32, elapsed float64) {
	t.refreshConfig()
	t.rotation.Advance(delta, t.cfg.RotationSpeed)
	t.star.Tick(elapsed)
	t.pose = t.float.Sample(elapsed)
	t.snow.Tick(delta)
	t.ticks++
}

// Snow exposes the particle field for drawing.
func (t *Tree) Snow() *snow.Field {
	return t.snow
}

// Frame is what the renderer needs for one frame. Slices are shared with the tree and must not be modified.
type Frame struct {
	Angle     float32
	Float     animation.Pose
	Layers    []Layer
	Ornaments []layout.OrnamentPlacement
	Lights    []layout.LightPlacement

	StarSpin     float32
	StarTilt     float32
	StarEmissive float32

	Palette       treeconfig.Palette
	Intensity     float32
	LightEmissive float32
}

// Frame returns the state after the last Update.
func (t *Tree) Frame() Frame {
	return Frame{
		Angle:         t.rotation.Angle(),
		Float:         t.pose,
		Layers:        t.layers,
		Ornaments:     t.ornaments,
		Lights:        t.lights,
		StarSpin:      t.star.Spin(),
		StarTilt:      t.star.Tilt(),
		StarEmissive:  StarEmissive,
		Palette:       t.palette,
		Intensity:     t.cfg.Intensity,
		LightEmissive: t.cfg.Intensity * LightEmissiveFactor,
	}
}

// Stats is a summary for the debug overlay.
type Stats struct {
	Ornaments int
	Lights    int
	Flakes    int
	Ticks     uint64
	Angle     float32
}

// Stats reports counts and the current yaw.
func (t *Tree) Stats() Stats {
	return Stats{
		Ornaments: len(t.ornaments),
		Lights:    len(t.lights),
		Flakes:    t.snow.Len(),
		Ticks:     t.ticks,
		Angle:     t.rotation.Angle(),
	}
}
