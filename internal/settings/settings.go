// Package settings installs the terminal commands that edit the tree's visual parameters
// and the engine preferences.
package settings

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"xmas-tree/internal/commands"
	"xmas-tree/internal/engineconfig"
	"xmas-tree/internal/treeconfig"
)

var ErrUsage = errors.New("bad arguments")

// Deps are what the commands read and change. Prefs is shared with the overlay and debug
// layers, which read it every frame. Out receives command output (usually logger.Log).
type Deps struct {
	Store     *treeconfig.Store
	Prefs     *engineconfig.EnginePrefs
	PrefsPath string
	Out       func(string)
	// Counts, if set, rebuilds the tree with new ornament and light counts.
	Counts func(ornaments, lights int) error
}

func (d Deps) print(format string, args ...any) {
	if d.Out != nil {
		d.Out(fmt.Sprintf(format, args...))
	}
}

// Register adds the settings commands to reg.
func Register(reg *commands.Registry, d Deps) {
	reg.Register("intensity", "intensity <0-3>", nil, func() error {
		return d.setNumber(reg, "intensity", func(c treeconfig.Config, v float32) treeconfig.Config {
			c.Intensity = v
			return c
		})
	})
	reg.Register("speed", "speed <0-2>", nil, func() error {
		return d.setNumber(reg, "speed", func(c treeconfig.Config, v float32) treeconfig.Config {
			c.RotationSpeed = v
			return c
		})
	})

	colorFlags := flag.NewFlagSet("color", flag.ContinueOnError)
	treeHex := colorFlags.String("tree", "", "tree color (#rgb or #rrggbb)")
	ornHex := colorFlags.String("ornament", "", "ornament color")
	lightsHex := colorFlags.String("lights", "", "lights color")
	reg.Register("color", "color [-tree #hex] [-ornament #hex] [-lights #hex]", colorFlags, func() error {
		return d.setColors(*treeHex, *ornHex, *lightsHex)
	})

	reg.Register("reset", "reset", nil, func() error {
		if err := d.Store.Replace(treeconfig.Default()); err != nil {
			return err
		}
		d.print("settings reset")
		return nil
	})
	reg.Register("show", "show", nil, func() error {
		d.print("%s", Describe(d.Store.Load()))
		return nil
	})

	d.toggle(reg, "fps", func(p *engineconfig.EnginePrefs) *bool { return &p.ShowFPS })
	d.toggle(reg, "mem", func(p *engineconfig.EnginePrefs) *bool { return &p.ShowMemAlloc })
	d.toggle(reg, "panel", func(p *engineconfig.EnginePrefs) *bool { return &p.ShowPanel })
	d.toggle(reg, "ground", func(p *engineconfig.EnginePrefs) *bool { return &p.ShowGround })

	reg.Register("save", "save (writes engine preferences)", nil, func() error {
		if d.Prefs == nil || d.PrefsPath == "" {
			return fmt.Errorf("save: no preferences file")
		}
		if err := engineconfig.Save(d.PrefsPath, *d.Prefs); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		d.print("saved %s", d.PrefsPath)
		return nil
	})

	reg.Register("counts", "counts <ornaments> <lights>", nil, func() error {
		if d.Counts == nil {
			return fmt.Errorf("counts: not available")
		}
		args := positional(reg, "counts")
		if len(args) != 2 {
			return fmt.Errorf("usage: %s: %w", reg.Usage("counts"), ErrUsage)
		}
		orn, err1 := strconv.Atoi(args[0])
		lights, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("counts %s %s: %w", args[0], args[1], ErrUsage)
		}
		if err := d.Counts(orn, lights); err != nil {
			return err
		}
		d.print("%d ornaments, %d lights", orn, lights)
		return nil
	})

	reg.Register("help", "help", nil, func() error {
		for _, name := range reg.Names() {
			d.print("  %s", reg.Usage(name))
		}
		return nil
	})
}

// setNumber parses the single positional argument of the command and applies it with set.
func (d Deps) setNumber(reg *commands.Registry, name string, set func(treeconfig.Config, float32) treeconfig.Config) error {
	args := positional(reg, name)
	if len(args) != 1 {
		return fmt.Errorf("usage: %s: %w", reg.Usage(name), ErrUsage)
	}
	v, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return fmt.Errorf("%s %q: %w", name, args[0], ErrUsage)
	}
	if err := d.Store.Update(func(c treeconfig.Config) treeconfig.Config { return set(c, float32(v)) }); err != nil {
		return err
	}
	d.print("%s = %s", name, strconv.FormatFloat(v, 'f', -1, 32))
	return nil
}

func positional(reg *commands.Registry, name string) []string {
	return reg.FlagSet(name).Args()
}

func (d Deps) setColors(tree, ornament, lights string) error {
	if tree == "" && ornament == "" && lights == "" {
		return fmt.Errorf("color: give at least one of -tree, -ornament, -lights: %w", ErrUsage)
	}
	norm := func(s string) (string, error) {
		if s == "" {
			return "", nil
		}
		return treeconfig.NormalizeColor(s)
	}
	var err error
	if tree, err = norm(tree); err != nil {
		return err
	}
	if ornament, err = norm(ornament); err != nil {
		return err
	}
	if lights, err = norm(lights); err != nil {
		return err
	}
	err = d.Store.Update(func(c treeconfig.Config) treeconfig.Config {
		if tree != "" {
			c.TreeColor = tree
		}
		if ornament != "" {
			c.OrnamentColor = ornament
		}
		if lights != "" {
			c.LightsColor = lights
		}
		return c
	})
	if err != nil {
		return err
	}
	d.print("%s", Describe(d.Store.Load()))
	return nil
}

// toggle registers "<name> on|off"; with no argument it flips the preference.
func (d Deps) toggle(reg *commands.Registry, name string, field func(*engineconfig.EnginePrefs) *bool) {
	reg.Register(name, name+" [on|off]", nil, func() error {
		if d.Prefs == nil {
			return fmt.Errorf("%s: no preferences", name)
		}
		p := field(d.Prefs)
		switch args := positional(reg, name); {
		case len(args) == 0:
			*p = !*p
		case len(args) == 1 && strings.EqualFold(args[0], "on"):
			*p = true
		case len(args) == 1 && strings.EqualFold(args[0], "off"):
			*p = false
		default:
			return fmt.Errorf("usage: %s: %w", reg.Usage(name), ErrUsage)
		}
		d.print("%s %s", name, onOff(*p))
		return nil
	})
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Describe formats c on one line, numbers with one decimal.
func Describe(c treeconfig.Config) string {
	return fmt.Sprintf("tree %s, ornaments %s, lights %s, intensity %.1f, speed %.1f",
		c.TreeColor, c.OrnamentColor, c.LightsColor, c.Intensity, c.RotationSpeed)
}
