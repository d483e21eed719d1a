package main

import (
	"fmt"
	"os"
	"strings"

	"xmas-tree/internal/commands"
	"xmas-tree/internal/debug"
	"xmas-tree/internal/engineconfig"
	"xmas-tree/internal/env"
	"xmas-tree/internal/fonts"
	"xmas-tree/internal/graphics"
	"xmas-tree/internal/logger"
	"xmas-tree/internal/scene"
	"xmas-tree/internal/settings"
	"xmas-tree/internal/terminal"
	"xmas-tree/internal/tree"
	"xmas-tree/internal/treeconfig"
	"xmas-tree/internal/ui"
)

func main() {
	log := logger.New()

	if keys, err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	} else if len(keys) > 0 {
		log.Logf("env: loaded %s from .env", strings.Join(keys, ", "))
	}

	prefs, err := engineconfig.Load(engineconfig.EngineConfigPath)
	if err != nil {
		log.Logf("%v; using default engine preferences", err)
	}

	cfg, sources, err := treeconfig.Startup(treeconfig.PresetPath)
	if err != nil {
		log.Logf("%v; using defaults", err)
		cfg, sources = treeconfig.Default(), []treeconfig.Source{treeconfig.SourceDefault}
	}
	log.Logf("config (%v): %s", sources, settings.Describe(cfg))

	store, err := treeconfig.NewStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Seed 0 picks a fresh layout each run; a fixed seed in engine.yaml reproduces one.
	tr, err := tree.New(store, tree.Options{Seed: prefs.Seed})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reg := commands.NewRegistry()
	settings.Register(reg, settings.Deps{
		Store:     store,
		Prefs:     &prefs,
		PrefsPath: engineconfig.EngineConfigPath,
		Out:       log.Log,
		Counts:    tr.SetCounts,
	})
	term := terminal.New(log, reg)
	overlay := ui.NewOverlay(store, &prefs)
	overlay.Log = log.Log
	if err := overlay.LoadCSS(ui.CSSPath); err != nil {
		log.Logf("overlay theme: %v", err)
	}
	scn := scene.New()
	dbg := debug.New()

	var (
		elapsed     float64
		fontsLoaded bool
	)
	update := func(dt float32) {
		// Fonts need the GL context, which exists from the first frame on.
		if !fontsLoaded {
			fontsLoaded = true
			loadFont(log, overlay, term, dbg, prefs.Font)
		}
		term.Update()
		captured := overlay.Update(!term.IsOpen())
		scn.ShowGround = prefs.ShowGround
		scn.Update(captured)

		elapsed += float64(dt)
		tr.Update(dt, elapsed)

		dbg.ShowFPS = prefs.ShowFPS
		dbg.ShowMemAlloc = prefs.ShowMemAlloc
	}
	draw := func() {
		scn.Draw(tr.Frame(), tr.Snow())
		overlay.Draw()
		term.Draw()
		dbg.Draw(tr.Stats())
	}

	opts := graphics.DefaultOptions()
	opts.Width, opts.Height = prefs.Width, prefs.Height
	opts.Fullscreen = prefs.Fullscreen
	opts.MSAA = prefs.MSAA
	opts.OnClose = func() {
		overlay.Unload()
		scn.Unload()
	}
	graphics.Run(opts, update, draw)
}

func loadFont(log *logger.Logger, overlay *ui.Overlay, term *terminal.Terminal, dbg *debug.Debug, pref string) {
	path, err := fonts.Resolve(pref)
	if err != nil {
		if pref != "" {
			log.Logf("font %q not found; using the default font", pref)
		}
		return
	}
	if err := overlay.LoadFont(path); err != nil {
		log.Logf("font %s: %v", path, err)
		return
	}
	term.SetFont(overlay.Font())
	dbg.SetFont(overlay.Font())
}
