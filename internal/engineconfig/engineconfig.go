package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// EnginePrefs holds window and overlay preferences. They are separate from the tree's
// visual settings, which live in treeconfig.
type EnginePrefs struct {
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	ShowPanel    bool   `yaml:"show_panel"`
	ShowGround   bool   `yaml:"show_ground"`
	Fullscreen   bool   `yaml:"fullscreen"`
	MSAA         bool   `yaml:"msaa"`
	Width        int32  `yaml:"width"`
	Height       int32  `yaml:"height"`
	Title        string `yaml:"title"`
	Font         string `yaml:"font,omitempty"`
	Seed         uint64 `yaml:"seed,omitempty"`
}

// Default returns default engine preferences: debug overlays off, settings panel closed, windowed 1280×720.
func Default() EnginePrefs {
	return EnginePrefs{
		Title:      "Merry Christmas!",
		ShowGround: true,
		MSAA:       true,
		Width:      1280,
		Height:     720,
	}
}

// Load reads engine preferences from path. Keys missing from the file keep their defaults.
// A missing file returns Default() and no error and does not create a file. An unreadable or
// invalid file returns Default() with the error so the caller can report it.
func Load(path string) (EnginePrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read engine config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse engine config: %w", err)
	}
	if p.Width <= 0 || p.Height <= 0 {
		d := Default()
		p.Width, p.Height = d.Width, d.Height
	}
	return p, nil
}

// Save writes engine preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
