package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/orbitrig/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

func init() {
	// GLFW must be driven from the main OS thread.
	runtime.LockOSThread()
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "orbitrig",
	Short: "orbitrig - gesture-driven orbit/pan/zoom camera rig",
	Long: `orbitrig turns mouse and touch gestures into camera motion around a followed target.

One finger or a primary drag looks around, a two-finger drag or secondary drag pans,
and pinching or scrolling zooms along the view. Gestures that start over UI are ignored.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = cfg.Logging.NewLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "orbitrig.yaml", "Configuration file (defaults are used if it does not exist)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
