package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/orbitrig/config"
	"github.com/Carmen-Shannon/orbitrig/engine"
	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"github.com/Carmen-Shannon/orbitrig/engine/touch"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "orbitrig-touch",
	Short: "Drive the orbit rig with touch gestures",
	Long: `Opens a touch-capable ebiten window. One finger looks around, two fingers dragged together
pan, and pinching zooms toward the point between the fingers. Mouse input works as in orbitrig run.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTouch,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "orbitrig.yaml", "Configuration file (defaults are used if it does not exist)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// game hosts the engine inside ebiten's update loop. Ebiten owns the tick, so the engine is
// stepped directly rather than run.
type game struct {
	eng    engine.Engine
	source *touch.Source
	frame  camera.Frame

	width  int
	height int
}

func (g *game) Update() error {
	g.frame = g.eng.Step(1 / float32(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.frame
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"yaw %.1f  pitch %.1f\ntarget %.2f %.2f %.2f\ntouch %s  pointer %s  ui %t\nfps %.0f",
		f.Yaw, f.Pitch,
		f.TargetPosition.X(), f.TargetPosition.Y(), f.TargetPosition.Z(),
		f.Touch, f.Pointer, f.Suppressed,
		ebiten.ActualFPS(),
	))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.source.SetViewportHeight(float32(outsideHeight))
		g.eng.Rig().Camera().SetViewport(float32(outsideWidth), float32(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func runTouch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := cfg.Logging.NewLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	rig, err := cfg.NewRig(logger)
	if err != nil {
		return fmt.Errorf("failed to build rig: %w", err)
	}
	source := touch.NewSource(float32(cfg.Window.Height), cfg.PointerOptions()...)

	eng, err := engine.NewEngine(rig, source, cfg.EngineOptions(logger)...)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Engine.TickRate > 0 {
		ebiten.SetTPS(int(cfg.Engine.TickRate))
	}

	logger.Info("touch host starting", zap.Stringer("mode", rig.Mode()))
	return ebiten.RunGame(&game{eng: eng, source: source})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
