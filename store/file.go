package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// File stores every key in one YAML document. The document is read once on
// open and rewritten on each change.
type File struct {
	path   string
	values map[string]string
}

// OpenFile loads path. A missing or unreadable document starts empty and is
// replaced on the next write.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("store: file backend needs a path")
	}
	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	var doc map[string]string
	if err := yaml.Unmarshal(data, &doc); err == nil && doc != nil {
		f.values = doc
	}
	return f, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	f.values[key] = value
	return f.flush()
}

func (f *File) Delete(key string) error {
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

func (f *File) Close() error { return nil }

// Keys lists stored keys in sorted order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *File) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("store: create dir: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.values); err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("store: replace %s: %w", f.path, err)
	}
	return nil
}
