package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"mission-control/background"
	"mission-control/layout"
	"mission-control/store"
	"mission-control/widget"
)

const (
	appDir    = "mission-control"
	envPrefix = "MISSION_CONTROL"
)

type WindowSettings struct {
	Width  int `mapstructure:"width" toml:"width"`
	Height int `mapstructure:"height" toml:"height"`
}

type BoardSettings struct {
	Mode          string  `mapstructure:"mode" toml:"mode"`
	GridSize      float64 `mapstructure:"grid_size" toml:"grid_size"`
	SnapThreshold float64 `mapstructure:"snap_threshold" toml:"snap_threshold"`
}

type StorageSettings struct {
	Backend string `mapstructure:"backend" toml:"backend"`
	Path    string `mapstructure:"path" toml:"path"`
	Key     string `mapstructure:"key" toml:"key"`
}

type BackgroundSettings struct {
	Density float64 `mapstructure:"density" toml:"density"`
	Seed    uint64  `mapstructure:"seed" toml:"seed"`
}

type Settings struct {
	Window     WindowSettings     `mapstructure:"window" toml:"window"`
	Board      BoardSettings      `mapstructure:"board" toml:"board"`
	Storage    StorageSettings    `mapstructure:"storage" toml:"storage"`
	Background BackgroundSettings `mapstructure:"background" toml:"background"`
	FontPath   string             `mapstructure:"font_path" toml:"font_path"`
	Widgets    []widget.Def       `mapstructure:"widgets" toml:"widgets"`
}

// configDir is where config.toml and the default layout store live.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDir)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", DefaultWindowWidth)
	v.SetDefault("window.height", DefaultWindowHeight)
	v.SetDefault("board.mode", string(ModeFree))
	v.SetDefault("board.grid_size", DefaultGridSize)
	v.SetDefault("board.snap_threshold", DefaultSnapThreshold)
	v.SetDefault("storage.backend", string(store.BackendFile))
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.key", store.DefaultKey)
	v.SetDefault("background.density", background.DefaultDensity)
	v.SetDefault("background.seed", 0)
	v.SetDefault("font_path", "")
}

// LoadSettings reads path, or config.toml from the config dir and the working
// directory when path is empty. A missing implicit config file is not an error.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(s.Widgets) == 0 {
		s.Widgets = widget.Defaults()
	}
	if s.Storage.Path == "" {
		s.Storage.Path = defaultStorePath(store.Backend(s.Storage.Backend))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func defaultStorePath(b store.Backend) string {
	if b == store.BackendSQLite {
		return filepath.Join(configDir(), "layout.db")
	}
	return filepath.Join(configDir(), "layout.yaml")
}

func (s *Settings) Validate() error {
	if _, err := ParseMode(s.Board.Mode); err != nil {
		return err
	}
	if s.Board.GridSize <= 0 {
		return fmt.Errorf("board.grid_size must be positive, got %v", s.Board.GridSize)
	}
	if s.Board.SnapThreshold < 0 {
		return fmt.Errorf("board.snap_threshold must not be negative, got %v", s.Board.SnapThreshold)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	return nil
}

// SnapConfig builds the resolver settings from the board section.
func (s *Settings) SnapConfig() layout.SnapConfig {
	cfg := layout.DefaultSnapConfig()
	cfg.Grid = layout.Grid{Cell: s.Board.GridSize}
	cfg.Threshold = s.Board.SnapThreshold
	return cfg
}

// WriteTOML encodes the effective settings in config file form.
func (s *Settings) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}
