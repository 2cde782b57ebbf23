package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"mission-control/store"
)

// openPositions opens the configured KV and wraps it in a layout store.
// The caller closes the returned KV.
func openPositions(s StorageSettings, logger *log.Logger) (*store.Positions, store.KV, error) {
	kv, err := store.Open(store.Backend(s.Backend), s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open layout store: %w", err)
	}
	logger.Debug("layout store open", "backend", s.Backend, "path", s.Path, "key", s.Key)
	return store.NewPositions(kv, s.Key, logger), kv, nil
}

// LayoutState is the human-readable dump of a stored layout.
type LayoutState struct {
	Key     string       `yaml:"key"`
	Widgets store.Layout `yaml:"widgets"`
}

// WriteLayout encodes the stored layout as YAML.
func WriteLayout(w io.Writer, p *store.Positions) error {
	state := LayoutState{Key: p.Key(), Widgets: p.Load()}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&state); err != nil {
		return err
	}
	return enc.Close()
}
