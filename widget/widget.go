// Package widget defines the dashboard widgets and how their content is produced.
package widget

import (
	"fmt"

	"github.com/google/uuid"
)

// Def describes one widget card. Either Content or Script provides the body.
type Def struct {
	ID      string `mapstructure:"id" toml:"id" yaml:"id"`
	Title   string `mapstructure:"title" toml:"title" yaml:"title"`
	Content string `mapstructure:"content" toml:"content,omitempty" yaml:"content"`
	Script  string `mapstructure:"script" toml:"script,omitempty" yaml:"script,omitempty"`
}

// Defaults is the built-in mission control set.
func Defaults() []Def {
	return []Def{
		{ID: "w-sales", Title: "Sales (24h)", Content: "$1,234"},
		{ID: "w-orders", Title: "Orders", Content: "12 new"},
		{ID: "w-tasks", Title: "Pending Tasks", Content: "3 automations to review"},
		{ID: "w-shopify", Title: "Shopify", Content: "Connected"},
		{ID: "w-printful", Title: "Printful", Content: "Not connected"},
		{ID: "w-traffic", Title: "Traffic", Content: "345 visits"},
		{ID: "w-activity", Title: "Recent Activity", Content: "User purchased Tee"},
	}
}

// Resolve fills in missing ids and evaluates scripts. Ids must be unique; a
// generated id is not stable across runs, so its position is not restored.
func Resolve(defs []Def) ([]Def, error) {
	out := make([]Def, 0, len(defs))
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if d.ID == "" {
			d.ID = "w-" + uuid.NewString()
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("widget: duplicate id %q", d.ID)
		}
		seen[d.ID] = true

		if d.Script != "" {
			content, err := EvalContent(d)
			if err != nil {
				return nil, fmt.Errorf("widget %s: %w", d.ID, err)
			}
			d.Content = content
		}
		out = append(out, d)
	}
	return out, nil
}
