package store

import (
	"encoding/json"

	"github.com/charmbracelet/log"
)

// DefaultKey namespaces the layout value inside the KV.
const DefaultKey = "refyned_widget_positions_v1"

// Position is a widget's top-left corner in whole container-relative pixels.
type Position struct {
	Left int `json:"left" yaml:"left"`
	Top  int `json:"top" yaml:"top"`
}

// Layout maps widget id to position.
type Layout map[string]Position

// Positions reads and writes the layout under one key. Failures never reach
// the caller: reads fall back to an empty layout and writes are logged.
type Positions struct {
	kv     KV
	key    string
	logger *log.Logger
}

func NewPositions(kv KV, key string, logger *log.Logger) *Positions {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Positions{kv: kv, key: key, logger: logger}
}

func (p *Positions) Key() string { return p.key }

// Load returns the stored layout, or an empty one when nothing usable is stored.
func (p *Positions) Load() Layout {
	raw, ok, err := p.kv.Get(p.key)
	if err != nil {
		p.logger.Debug("layout read failed", "key", p.key, "err", err)
		return Layout{}
	}
	if !ok || raw == "" {
		return Layout{}
	}
	var l Layout
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		p.logger.Debug("ignoring malformed layout", "key", p.key, "err", err)
		return Layout{}
	}
	if l == nil {
		return Layout{}
	}
	return l
}

func (p *Positions) Save(l Layout) {
	data, err := json.Marshal(l)
	if err != nil {
		p.logger.Warn("layout encode failed", "err", err)
		return
	}
	if err := p.kv.Set(p.key, string(data)); err != nil {
		p.logger.Warn("layout write failed", "key", p.key, "err", err)
		return
	}
	p.logger.Debug("layout saved", "widgets", len(l))
}

func (p *Positions) Clear() {
	if err := p.kv.Delete(p.key); err != nil {
		p.logger.Warn("layout clear failed", "key", p.key, "err", err)
		return
	}
	p.logger.Info("layout cleared")
}
