package settings

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"xmas-tree/internal/commands"
	"xmas-tree/internal/engineconfig"
	"xmas-tree/internal/treeconfig"
)

type harness struct {
	reg   *commands.Registry
	store *treeconfig.Store
	prefs *engineconfig.EnginePrefs
	out   []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store, err := treeconfig.NewStore(treeconfig.Default())
	if err != nil {
		t.Fatal(err)
	}
	prefs := engineconfig.Default()
	h := &harness{reg: commands.NewRegistry(), store: store, prefs: &prefs}
	Register(h.reg, Deps{
		Store:     store,
		Prefs:     h.prefs,
		PrefsPath: filepath.Join(t.TempDir(), "config", "engine.yaml"),
		Out:       func(s string) { h.out = append(h.out, s) },
	})
	return h
}

func (h *harness) run(line string) error {
	args, ok := commands.Parse(line)
	if !ok {
		return commands.ErrMissingCommand
	}
	return h.reg.Execute(args)
}

func TestIntensityAndSpeed(t *testing.T) {
	h := newHarness(t)
	if err := h.run("intensity 2.5"); err != nil {
		t.Fatal(err)
	}
	if err := h.run("cmd speed 0"); err != nil {
		t.Fatal(err)
	}
	c := h.store.Load()
	if c.Intensity != 2.5 || c.RotationSpeed != 0 {
		t.Fatalf("config = %+v", c)
	}
	if h.store.Version() != 3 {
		t.Errorf("version = %d, want 3", h.store.Version())
	}
}

func TestInvalidNumbersLeaveConfigUnchanged(t *testing.T) {
	h := newHarness(t)
	before := h.store.Load()
	for _, line := range []string{
		"intensity 3.5",
		"intensity -1",
		"intensity abc",
		"intensity",
		"intensity 1 2",
		"speed 2.1",
		"speed NaN",
	} {
		if err := h.run(line); err == nil {
			t.Errorf("%q accepted", line)
		}
	}
	if h.store.Load() != before || h.store.Version() != 1 {
		t.Fatalf("config changed: %+v (version %d)", h.store.Load(), h.store.Version())
	}
	if err := h.run("intensity 9"); !errors.Is(err, treeconfig.ErrOutOfRange) {
		t.Errorf("out of range error = %v", err)
	}
}

func TestColor(t *testing.T) {
	h := newHarness(t)
	if err := h.run("color -tree #123 -lights #ABCDEF"); err != nil {
		t.Fatal(err)
	}
	c := h.store.Load()
	if c.TreeColor != "#112233" || c.LightsColor != "#abcdef" {
		t.Fatalf("colors = %q %q", c.TreeColor, c.LightsColor)
	}
	if c.OrnamentColor != treeconfig.Default().OrnamentColor {
		t.Errorf("ornament changed to %q", c.OrnamentColor)
	}

	// Flags from the previous call must not leak into this one.
	if err := h.run("color -ornament #000000"); err != nil {
		t.Fatal(err)
	}
	if got := h.store.Load(); got.TreeColor != "#112233" || got.OrnamentColor != "#000000" {
		t.Fatalf("after second color: %+v", got)
	}

	v := h.store.Version()
	if err := h.run("color -tree nope -ornament #fff"); !errors.Is(err, treeconfig.ErrInvalidColor) {
		t.Errorf("bad color error = %v", err)
	}
	if err := h.run("color"); !errors.Is(err, ErrUsage) {
		t.Errorf("no flags error = %v", err)
	}
	if h.store.Version() != v {
		t.Error("rejected color edit changed the store")
	}
}

func TestRejectedColorFlagsDoNotCarryOver(t *testing.T) {
	h := newHarness(t)
	if err := h.run("color -tree #ff0000 -bogus"); err == nil {
		t.Fatal("unknown flag accepted")
	}
	if err := h.run("color -lights #0000ff"); err != nil {
		t.Fatal(err)
	}
	c := h.store.Load()
	if c.TreeColor != treeconfig.Default().TreeColor {
		t.Errorf("tree color = %q, want the default %q", c.TreeColor, treeconfig.Default().TreeColor)
	}
	if c.LightsColor != "#0000ff" {
		t.Errorf("lights color = %q", c.LightsColor)
	}
}

func TestResetAndShow(t *testing.T) {
	h := newHarness(t)
	if err := h.run("intensity 0.3"); err != nil {
		t.Fatal(err)
	}
	if err := h.run("reset"); err != nil {
		t.Fatal(err)
	}
	if h.store.Load() != treeconfig.Default() {
		t.Fatalf("reset left %+v", h.store.Load())
	}
	h.out = nil
	if err := h.run("show"); err != nil {
		t.Fatal(err)
	}
	want := "tree #003318, ornaments #C5A059, lights #FFD700, intensity 1.5, speed 1.0"
	if len(h.out) != 1 || h.out[0] != want {
		t.Fatalf("show printed %q, want %q", h.out, want)
	}
}

func TestToggles(t *testing.T) {
	h := newHarness(t)
	if err := h.run("fps on"); err != nil {
		t.Fatal(err)
	}
	if err := h.run("panel on"); err != nil {
		t.Fatal(err)
	}
	if err := h.run("mem"); err != nil {
		t.Fatal(err)
	}
	if !h.prefs.ShowFPS || !h.prefs.ShowPanel || !h.prefs.ShowMemAlloc {
		t.Fatalf("prefs = %+v", *h.prefs)
	}
	if err := h.run("fps maybe"); !errors.Is(err, ErrUsage) {
		t.Errorf("bad toggle error = %v", err)
	}
}

func TestSaveWritesPrefs(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "engine.yaml")
	prefs := engineconfig.Default()
	reg := commands.NewRegistry()
	Register(reg, Deps{Store: h.store, Prefs: &prefs, PrefsPath: path})
	prefs.ShowFPS = true
	if err := reg.Execute([]string{"save"}); err != nil {
		t.Fatal(err)
	}
	got, err := engineconfig.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.ShowFPS {
		t.Fatal("saved prefs lost show_fps")
	}
}

func TestHelpListsCommands(t *testing.T) {
	h := newHarness(t)
	if err := h.run("help"); err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(h.out, "\n")
	for _, name := range []string{"intensity", "speed", "color", "reset", "show", "fps", "mem", "panel", "save"} {
		if !strings.Contains(joined, name) {
			t.Errorf("help missing %q", name)
		}
	}
}

func TestNudgeClampsAndRounds(t *testing.T) {
	store, _ := treeconfig.NewStore(treeconfig.Default())
	for i := 0; i < 20; i++ {
		if err := Nudge(store, Intensity, 1); err != nil {
			t.Fatal(err)
		}
	}
	if got := store.Load().Intensity; got != 3 {
		t.Fatalf("intensity = %v, want clamped 3", got)
	}
	if err := Nudge(store, RotationSpeed, -3); err != nil {
		t.Fatal(err)
	}
	if got := store.Load().RotationSpeed; got != treeconfig.Round1(0.7) {
		t.Fatalf("speed = %v, want 0.7", got)
	}
}

func TestFraction(t *testing.T) {
	store, _ := treeconfig.NewStore(treeconfig.Default())
	if f := Fraction(store.Load(), Intensity); f != 0.5 {
		t.Errorf("intensity fraction = %v, want 0.5", f)
	}
	if err := SetFraction(store, RotationSpeed, 0.26); err != nil {
		t.Fatal(err)
	}
	if got := store.Load().RotationSpeed; got != treeconfig.Round1(0.5) {
		t.Errorf("speed = %v, want 0.5", got)
	}
	if err := SetFraction(store, Intensity, 7); err != nil {
		t.Fatal(err)
	}
	if got := store.Load().Intensity; got != 3 {
		t.Errorf("intensity = %v, want 3", got)
	}
}

func TestUnchangedSliderKeepsVersion(t *testing.T) {
	store, _ := treeconfig.NewStore(treeconfig.Default())
	for i := 0; i < 5; i++ {
		if err := SetFraction(store, Intensity, 0.5); err != nil {
			t.Fatal(err)
		}
	}
	if v := store.Version(); v != 1 {
		t.Fatalf("version = %d, want 1", v)
	}
}

func TestCounts(t *testing.T) {
	h := newHarness(t)
	if err := h.run("counts 10 5"); err == nil {
		t.Fatal("counts accepted without a tree")
	}

	var gotO, gotL int
	tooFew := errors.New("too few")
	reg := commands.NewRegistry()
	Register(reg, Deps{Store: h.store, Counts: func(o, l int) error {
		if o < 2 {
			return tooFew
		}
		gotO, gotL = o, l
		return nil
	}})
	if err := reg.Execute([]string{"counts", "80", "50"}); err != nil {
		t.Fatal(err)
	}
	if gotO != 80 || gotL != 50 {
		t.Fatalf("counts = %d, %d", gotO, gotL)
	}
	if err := reg.Execute([]string{"counts", "1", "50"}); !errors.Is(err, tooFew) {
		t.Errorf("err = %v, want rebuild error", err)
	}
	if err := reg.Execute([]string{"counts", "x", "50"}); !errors.Is(err, ErrUsage) {
		t.Errorf("err = %v, want usage", err)
	}
}
