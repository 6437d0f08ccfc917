package main

import (
	"context"
	"fmt"

	"github.com/Carmen-Shannon/orbitrig/config"
	"github.com/Carmen-Shannon/orbitrig/engine"
	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/Carmen-Shannon/orbitrig/engine/window"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchConfig bool

// runCmd opens a window and drives the rig from the mouse
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and drive the rig with the mouse",
	Long: `Opens a desktop window. Left drag looks, right drag pans, the wheel zooms.
With --watch, edits to the configuration file retune the running rig.`,
	Args: cobra.NoArgs,
	RunE: runRig,
}

func init() {
	runCmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "Reload tunables when the configuration file changes")
}

func runRig(cmd *cobra.Command, args []string) error {
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		return err
	}
	defer win.Close()

	collector := input.NewPointerCollector(cfg.PointerOptions()...)
	win.SetMouseButtonCallback(collector.OnMouseButton)
	win.SetMouseMoveCallback(collector.OnMouseMove)
	win.SetScrollCallback(collector.OnScroll)

	rig, err := cfg.NewRig(logger)
	if err != nil {
		return fmt.Errorf("failed to build rig: %w", err)
	}

	eng, err := engine.NewEngine(rig, collector, append(cfg.EngineOptions(logger), engine.WithWindow(win))...)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}
	eng.SetFrameCallback(logFrame)

	if watchConfig {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		w, err := config.Watch(ctx, configPath, func(c *config.Config) {
			rig.SetTunables(c.Tunables())
			rig.SetMode(c.Mode())
		}, config.WithWatchLogger(logger))
		if err != nil {
			return err
		}
		defer w.Close()
	}

	logger.Info("rig running",
		zap.Stringer("mode", rig.Mode()),
		zap.Int("width", win.Width()),
		zap.Int("height", win.Height()),
	)
	eng.Run()
	return nil
}

// logFrame writes every frame at debug level.
func logFrame(frame camera.Frame) {
	if ce := logger.Check(zap.DebugLevel, "frame"); ce != nil {
		ce.Write(
			zap.Float32("yaw", frame.Yaw),
			zap.Float32("pitch", frame.Pitch),
			zap.Float32s("target", frame.TargetPosition[:]),
			zap.Stringer("touch", frame.Touch),
			zap.Stringer("pointer", frame.Pointer),
			zap.Bool("suppressed", frame.Suppressed),
		)
	}
}
