package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"github.com/Carmen-Shannon/orbitrig/engine/replay"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var replayWorkers int

// replayCmd replays input traces headless
var replayCmd = &cobra.Command{
	Use:   "replay <trace.yaml>...",
	Short: "Replay recorded input traces and print the final rig state",
	Long: `Feeds each trace through its own rig built from the configuration and prints a
YAML summary per trace: final yaw, pitch, target and desired position, and how many
frames were suppressed by UI occlusion. Traces run concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVarP(&replayWorkers, "workers", "n", runtime.NumCPU(), "Maximum traces replayed at once")
}

func runReplay(cmd *cobra.Command, args []string) error {
	traces := make([]*replay.Trace, 0, len(args))
	for _, path := range args {
		tr, err := replay.LoadTrace(path)
		if err != nil {
			return err
		}
		traces = append(traces, tr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	batch := replay.NewBatch(replayWorkers, replay.WithLogger(logger))
	defer batch.Close()
	results, err := batch.Run(ctx, traces, func() (camera.Rig, error) {
		return cfg.NewRig(logger)
	})
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}
	logger.Debug("replay finished", zap.Int("traces", len(results)))

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()
	return enc.Encode(results)
}
