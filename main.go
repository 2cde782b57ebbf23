package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"mission-control/store"
	"mission-control/widget"
)

// app is shared by the commands once PersistentPreRunE has run.
type app struct {
	settings *Settings
	logger   *log.Logger
}

type flags struct {
	config    string
	verbose   bool
	mode      string
	backend   string
	storePath string
	ephemeral bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	a := &app{}

	root := &cobra.Command{
		Use:          "mission-control",
		Short:        "Draggable widget dashboard over a particle background",
		Long:         `Mission control shows dashboard widgets that can be dragged and snapped to a grid, or reordered in a list. Widget positions are kept between runs; press r to reset them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			a.logger = newLogger(os.Stderr, level)

			s, err := LoadSettings(f.config)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &f, s); err != nil {
				return err
			}
			a.settings = s
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "config file (default: config.toml in the user config dir)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&f.backend, "store", "", "layout store backend: file, sqlite or memory")
	pf.StringVar(&f.storePath, "store-path", "", "layout store location")
	pf.BoolVar(&f.ephemeral, "ephemeral", false, "keep the layout in memory only")
	root.Flags().StringVar(&f.mode, "mode", "", "board mode: free or list")

	root.AddCommand(newResetCmd(a), newLayoutCmd(a), newConfigCmd(a))
	return root
}

// applyFlags lets explicit flags override the loaded settings.
func applyFlags(cmd *cobra.Command, f *flags, s *Settings) error {
	if cmd.Flags().Changed("mode") {
		s.Board.Mode = f.mode
	}
	if cmd.Flags().Changed("store") {
		s.Storage.Backend = f.backend
		if !cmd.Flags().Changed("store-path") {
			s.Storage.Path = defaultStorePath(store.Backend(f.backend))
		}
	}
	if cmd.Flags().Changed("store-path") {
		s.Storage.Path = f.storePath
	}
	if f.ephemeral {
		s.Storage.Backend = string(store.BackendMemory)
	}
	return s.Validate()
}

func (a *app) run() error {
	s := a.settings
	positions, kv, err := openPositions(s.Storage, a.logger)
	if err != nil {
		return err
	}
	defer kv.Close()

	defs, err := widget.Resolve(s.Widgets)
	if err != nil {
		return fmt.Errorf("load widgets: %w", err)
	}
	mode, err := ParseMode(s.Board.Mode)
	if err != nil {
		return err
	}

	g := NewGame(GameOptions{
		Mode:      mode,
		Widgets:   defs,
		Positions: positions,
		Snap:      s.SnapConfig(),
		Width:     s.Window.Width,
		Height:    s.Window.Height,
		Density:   s.Background.Density,
		Seed:      s.Background.Seed,
		Face:      LoadUIFont(s.FontPath, a.logger),
		Logger:    a.logger,
	})

	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	a.logger.Info("starting", "mode", mode, "widgets", len(defs), "store", s.Storage.Backend)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the stored widget layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, kv, err := openPositions(a.settings.Storage, a.logger)
			if err != nil {
				return err
			}
			defer kv.Close()
			positions.Clear()
			return nil
		},
	}
}

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the stored widget layout as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, kv, err := openPositions(a.settings.Storage, a.logger)
			if err != nil {
				return err
			}
			defer kv.Close()
			return WriteLayout(cmd.OutOrStdout(), positions)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.settings.WriteTOML(cmd.OutOrStdout())
		},
	}
}
