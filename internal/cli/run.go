package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/grid"
)

// Run solves both parts for the field read from in and prints
// "Part 1: <n>" and "Part 2: <n>" to out.
func Run(ctx context.Context, inv *Invocation, in io.Reader, out io.Writer, logger *slog.Logger) error {
	field, err := beam.ReadField(in)
	if err != nil {
		return fmt.Errorf("parse field: %w", err)
	}
	logger.Info("Field loaded.", "width", field.Width(), "height", field.Height())

	start := time.Now()
	res, err := beam.Trace(field, grid.Vec(0, 0), beam.Right)
	if err != nil {
		return fmt.Errorf("part 1: %w", err)
	}
	logger.Debug("Default entry simulated.", "energized", res.Count(), "steps", res.Steps, "elapsed", time.Since(start))
	if inv.Config.Render {
		fmt.Fprintln(out, res.Render())
	}
	fmt.Fprintf(out, "Part 1: %d\n", res.Count())

	start = time.Now()
	best, err := beam.Best(field,
		beam.WithContext(ctx),
		beam.WithWorkers(inv.Config.Workers),
		beam.WithOnResult(func(s beam.State, n int) {
			logger.Debug("Configuration simulated.", "start", s.String(), "energized", n)
		}),
	)
	if err != nil {
		return fmt.Errorf("part 2: %w", err)
	}
	logger.Info("Search finished.",
		"configurations", 2*(field.Width()+field.Height()),
		"best_start", best.Start.String(),
		"energized", best.Energized,
		"elapsed", time.Since(start),
	)
	fmt.Fprintf(out, "Part 2: %d\n", best.Energized)
	return nil
}
