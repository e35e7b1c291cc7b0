package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rkuiper/photos-export/internal/config"
	"github.com/rkuiper/photos-export/internal/export"
	"github.com/rkuiper/photos-export/internal/metadata"
	"github.com/rkuiper/photos-export/internal/resolve"
	"github.com/rkuiper/photos-export/internal/scratch"
	"github.com/rkuiper/photos-export/internal/sqlite"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	cfg, cfgErr := config.Load()

	cmd := &cobra.Command{
		Use:           "photos-export",
		Short:         "Exports the contents of a Photos.app library to date-based directories",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Source, "source", "s", cfg.Source, "path to Photos.app library")
	cmd.Flags().StringVarP(&cfg.Destination, "destination", "d", cfg.Destination, "path to export directory")
	cmd.Flags().BoolVarP(&cfg.DryRun, "dryrun", "n", cfg.DryRun, "do not copy any files or edit metadata")
	cmd.Flags().BoolVarP(&cfg.Exif, "exif", "e", cfg.Exif, "set EXIF date information in JPEG files")
	cmd.Flags().BoolVarP(&cfg.Faces, "faces", "f", cfg.Faces, "write tagged person names as keywords")
	cmd.Flags().BoolVarP(&cfg.Locations, "locations", "l", cfg.Locations, "append the dominant place name to day directories")
	cmd.Flags().BoolVar(&cfg.Hierarchy, "hierarchy", cfg.Hierarchy, "use the full region hierarchy as the place name (implies --locations)")
	cmd.Flags().BoolVarP(&cfg.Progress, "progress", "p", cfg.Progress, "show a bar indicating the completion of the copying progress")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "increase the output verbosity")
	cmd.MarkFlagsMutuallyExclusive("progress", "verbose")

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Snapshot the databases so the original library is never opened.
	area, err := scratch.New(cfg.Source)
	if err != nil {
		return err
	}
	defer func() {
		if err := area.Remove(); err != nil {
			logger.Warn("failed to remove temporary files", "error", err)
			return
		}
		fmt.Println("\nDeleted temporary files")
	}()

	libraryDB, err := sqlite.Open(area.LibraryDB)
	if err != nil {
		return fmt.Errorf("library database: %w", err)
	}
	defer libraryDB.Close()

	var faces *resolve.FaceResolver
	if cfg.Faces {
		if area.PersonDB == "" {
			logger.Warn("library has no person database; face keywords disabled")
		} else {
			personDB, err := sqlite.Open(area.PersonDB)
			if err != nil {
				return fmt.Errorf("person database: %w", err)
			}
			defer personDB.Close()
			faces = resolve.NewFaceResolver(sqlite.NewFaceRepository(personDB))
		}
	}

	var sync *metadata.Synchronizer
	if cfg.Exif || faces != nil {
		tool, err := metadata.NewExifTool()
		if err != nil {
			return err
		}
		defer func() {
			if err := tool.Close(); err != nil {
				logger.Warn("failed to close exiftool", "error", err)
				return
			}
			fmt.Println("Closed ExifTool.")
		}()
		sync = metadata.NewSynchronizer(tool, faces, cfg.Exif, cfg.DryRun, logger)
	}

	var places *resolve.PlaceResolver
	if cfg.Locations {
		places = resolve.NewPlaceResolver(sqlite.NewPlaceRepository(libraryDB))
	}

	runner := export.NewRunner(export.Config{
		Photos:    sqlite.NewPhotoRepository(libraryDB),
		Places:    places,
		Hierarchy: cfg.Hierarchy,
		Planner:   export.NewPlanner(cfg.Source, cfg.Destination, cfg.Locations, cfg.DryRun, logger),
		Sync:      sync,
		Progress:  cfg.Progress,
		Out:       os.Stdout,
		Logger:    logger,
	})

	if _, err := runner.Run(ctx); err != nil {
		// Interruption still runs the full cleanup sequence and exits
		// cleanly; the partially exported day completes on a rerun.
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nInterrupted.")
			return nil
		}
		return err
	}
	return nil
}
