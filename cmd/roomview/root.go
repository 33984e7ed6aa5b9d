package main

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/roomview/common"
	"github.com/Carmen-Shannon/roomview/config"
	"github.com/Carmen-Shannon/roomview/engine"
	"github.com/Carmen-Shannon/roomview/engine/renderer"
	"github.com/Carmen-Shannon/roomview/engine/window"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// flags holds the command line overrides. Zero values leave the configuration untouched.
type flags struct {
	configPath string
	watch      bool
	width      int
	height     int
	title      string
	vsync      bool
	msaa       bool
	profile    bool
	software   bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "roomview",
		Short: "Interactive viewer for a fixed 3D room",
		Long: `roomview draws a small furnished room and lets you fly a camera through it.

Controls:
  W/A/S/D     move forward, left, back, right
  Q/E         move up, down
  mouse       look around
  scroll      change movement speed
  Alt+LMB     orbit
  Alt+MMB     pan
  P           toggle orthographic projection
  F           reset the camera
  Esc         quit`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cfg, f)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML configuration file")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "reload camera tuning when the configuration file changes")
	cmd.Flags().IntVar(&f.width, "width", 0, "window width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 0, "window height in pixels")
	cmd.Flags().StringVar(&f.title, "title", "", "window title")
	cmd.Flags().BoolVar(&f.vsync, "vsync", true, "synchronise presentation with the display")
	cmd.Flags().BoolVar(&f.msaa, "msaa", true, "enable 4x multisampling")
	cmd.Flags().BoolVar(&f.profile, "profile", false, "log frame statistics periodically")
	cmd.Flags().BoolVar(&f.software, "software", false, "force the software (fallback) adapter")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the roomview version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roomview %s\n", version)
		},
	}
}

// loadConfig reads the configuration file, if any, and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Window.Width = f.width
	}
	if changed("height") {
		cfg.Window.Height = f.height
	}
	cfg.Window.Title = common.Coalesce(f.title, cfg.Window.Title)
	if changed("vsync") {
		cfg.Window.VSync = f.vsync
	}
	if changed("msaa") {
		cfg.Window.MSAA = f.msaa
	}
	if changed("profile") {
		cfg.Profiler.Enabled = f.profile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if f.watch && f.configPath == "" {
		return nil, fmt.Errorf("--watch requires --config")
	}
	return cfg, nil
}

// rendererOptions maps the window settings onto renderer options.
func rendererOptions(cfg *config.Config, software bool) []renderer.RendererBuilderOption {
	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	msaa := renderer.MSAAOff
	if cfg.Window.MSAA {
		msaa = renderer.MSAA4x
	}
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
		renderer.WithForceSoftwareRenderer(software),
	}
}

func run(cfg *config.Config, f *flags) error {
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)

	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win, rendererOptions(cfg, f.software)...)
	if err != nil {
		_ = win.Close()
		return fmt.Errorf("create renderer: %w", err)
	}

	options := []engine.EngineBuilderOption{
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithConfig(cfg),
		engine.WithLogger(log.Default()),
	}
	if f.watch {
		w, err := config.NewWatcher(f.configPath)
		if err != nil {
			r.Release()
			_ = win.Close()
			return err
		}
		options = append(options, engine.WithConfigWatcher(w))
	}

	e, err := engine.NewEngine(options...)
	if err != nil {
		r.Release()
		_ = win.Close()
		return err
	}
	e.Run()
	return nil
}
