package treeconfig

import (
	"sync/atomic"
)

type snapshot struct {
	cfg     Config
	version uint64
}

// Store holds the latest complete Config. The presentation layer replaces it wholesale between
// frames; the scene reads it once per frame. Safe for concurrent use.
type Store struct {
	cur atomic.Pointer[snapshot]
}

// NewStore returns a store holding cfg. cfg must be valid.
func NewStore(cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Store{}
	s.cur.Store(&snapshot{cfg: cfg, version: 1})
	return s, nil
}

// Load returns the current config.
func (s *Store) Load() Config {
	return s.cur.Load().cfg
}

// Version increases by one on every successful Replace. Scenes compare it to decide when to re-resolve colors.
func (s *Store) Version() uint64 {
	return s.cur.Load().version
}

// Replace validates cfg and swaps it in. An invalid cfg leaves the store unchanged.
func (s *Store) Replace(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for {
		old := s.cur.Load()
		if s.cur.CompareAndSwap(old, &snapshot{cfg: cfg, version: old.version + 1}) {
			return nil
		}
	}
}

// Update builds a new config from the current one with fn and replaces it.
// fn receives a copy; it cannot mutate the stored record.
func (s *Store) Update(fn func(Config) Config) error {
	for {
		old := s.cur.Load()
		next := fn(old.cfg)
		if err := next.Validate(); err != nil {
			return err
		}
		if s.cur.CompareAndSwap(old, &snapshot{cfg: next, version: old.version + 1}) {
			return nil
		}
	}
}
