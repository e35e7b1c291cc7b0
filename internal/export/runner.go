package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rkuiper/photos-export/internal/library"
	"github.com/rkuiper/photos-export/internal/metadata"
	"github.com/rkuiper/photos-export/internal/progress"
	"github.com/rkuiper/photos-export/internal/repository"
	"github.com/rkuiper/photos-export/internal/resolve"
)

// Stats totals a run's per-file outcomes.
type Stats struct {
	Copied  int
	Skipped int
}

// Config wires a Runner.
type Config struct {
	Photos repository.PhotoRepository
	// Places enables location augmentation when non-nil.
	Places    *resolve.PlaceResolver
	Hierarchy bool
	Planner   *Planner
	// Sync enables metadata synchronization when non-nil.
	Sync *metadata.Synchronizer
	// Progress draws a console bar on Out; mutually exclusive with
	// verbose logging upstream.
	Progress bool
	Out      io.Writer
	Logger   *slog.Logger
}

// Runner drives a full export: stream photos, group into day stacks, plan
// copies, synchronize metadata, report totals.
type Runner struct {
	cfg Config
}

// NewRunner creates a new Runner.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run performs the export. A library without eligible photos is a no-op.
// Cancellation stops between photos; the partially flushed stack stays as it
// is, which a rerun completes idempotently.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	total, err := r.cfg.Photos.Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count photos: %w", err)
	}
	fmt.Fprintf(r.cfg.Out, "Found %d images.\n", total)
	if total == 0 {
		return stats, nil
	}

	var bar *progress.Bar
	if r.cfg.Progress {
		bar = progress.New(r.cfg.Out, total)
	}

	grouper := NewGrouper(r.cfg.Places, r.cfg.Hierarchy, func(ctx context.Context, stack *DayStack) error {
		decisions, err := r.cfg.Planner.Plan(stack)
		if err != nil {
			return err
		}
		for _, d := range decisions {
			switch d.Action {
			case ActionCopied:
				stats.Copied++
			case ActionSkippedExisting:
				stats.Skipped++
			}
			if r.cfg.Sync != nil {
				r.cfg.Sync.Sync(ctx, d.DestPath, d.Taken, d.Photo.UUID)
			}
			if bar != nil {
				bar.Advance()
			}
		}
		return nil
	})

	err = r.cfg.Photos.Stream(ctx, func(p library.Photo) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return grouper.Add(ctx, p)
	})
	if err != nil {
		return stats, err
	}
	if err := grouper.Close(ctx); err != nil {
		return stats, err
	}

	if bar != nil {
		bar.Finish()
	}
	fmt.Fprintln(r.cfg.Out, "Copying completed.")
	fmt.Fprintf(r.cfg.Out, "%d files copied\n", stats.Copied)
	fmt.Fprintf(r.cfg.Out, "%d files ignored\n", stats.Skipped)

	return stats, nil
}
