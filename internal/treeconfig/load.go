package treeconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// PresetPath is the optional startup preset, relative to the process working directory.
const PresetPath = "config/tree.yaml"

// Source names where the startup config came from, for the startup log line.
type Source string

const (
	SourceDefault Source = "defaults"
	SourcePreset  Source = "preset"
	SourceEnv     Source = "env"
)

// LoadPreset reads a YAML preset at path over base. Fields absent from the file keep base values.
// A missing file returns base and ok false.
func LoadPreset(path string, base Config) (cfg Config, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, false, nil
		}
		return base, false, fmt.Errorf("read preset: %w", err)
	}
	cfg = base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return cfg, true, nil
}

// ApplyEnv overrides fields of base from TREE_* environment variables. Unset variables keep base values.
func ApplyEnv(base Config) (Config, bool, error) {
	cfg := base
	if err := env.Parse(&cfg); err != nil {
		return base, false, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg != base, nil
}

// Startup resolves the initial config: defaults, then the preset file, then the environment.
// The result is validated; the returned sources list which layers changed anything.
func Startup(presetPath string) (Config, []Source, error) {
	cfg := Default()
	sources := []Source{SourceDefault}

	cfg, ok, err := LoadPreset(presetPath, cfg)
	if err != nil {
		return Config{}, nil, err
	}
	if ok {
		sources = append(sources, SourcePreset)
	}

	cfg, ok, err = ApplyEnv(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	if ok {
		sources = append(sources, SourceEnv)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, nil, fmt.Errorf("startup config: %w", err)
	}
	return cfg, sources, nil
}
