package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rkuiper/photos-export/internal/library"
	"github.com/rkuiper/photos-export/internal/phototime"
)

// Action describes what the planner decided for one photo.
type Action int

const (
	// ActionCopied means the file was (or, in dry-run, would be) copied.
	ActionCopied Action = iota
	// ActionSkippedExisting means a file already sat at the destination.
	ActionSkippedExisting
)

// Decision is the per-photo outcome of planning a day stack.
type Decision struct {
	Photo    library.Photo
	Taken    time.Time
	DestPath string
	Action   Action
}

// Planner turns a flushed day stack into per-file copy decisions under the
// destination root.
type Planner struct {
	libraryRoot string
	destRoot    string
	locations   bool
	dryRun      bool
	logger      *slog.Logger
}

// NewPlanner creates a new Planner. Masters are read from
// libraryRoot/Masters and land under destRoot/<day>[ <place>]/.
func NewPlanner(libraryRoot, destRoot string, locations, dryRun bool, logger *slog.Logger) *Planner {
	return &Planner{
		libraryRoot: libraryRoot,
		destRoot:    destRoot,
		locations:   locations,
		dryRun:      dryRun,
		logger:      logger,
	}
}

// Plan decides and performs the copy-or-skip action for every photo in the
// stack, in stack order. Copy failures are fatal: a missing master usually
// means wider library damage.
func (p *Planner) Plan(stack *DayStack) ([]Decision, error) {
	subDir := stack.Day
	if p.locations {
		if place := stack.DominantPlace(); place != "" {
			subDir += " " + place
		}
	}
	destDir := filepath.Join(p.destRoot, subDir)

	if !p.dryRun {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", destDir, err)
		}
	}

	decisions := make([]Decision, 0, len(stack.Photos))
	for _, photo := range stack.Photos {
		d := Decision{
			Photo:    photo,
			Taken:    phototime.Resolve(photo.ImageDate, photo.TZOffsetSecs),
			DestPath: filepath.Join(destDir, photo.FileName),
		}

		if fileExists(d.DestPath) {
			d.Action = ActionSkippedExisting
			p.logger.Debug("already at destination", "path", d.DestPath)
		} else {
			if !p.dryRun {
				src := filepath.Join(p.libraryRoot, "Masters", photo.ImagePath)
				if err := copyFile(src, d.DestPath); err != nil {
					return nil, fmt.Errorf("copy %s: %w", photo.FileName, err)
				}
			}
			d.Action = ActionCopied
			p.logger.Debug("copied", "path", d.DestPath)
		}

		decisions = append(decisions, d)
	}
	return decisions, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// copyFile writes a byte-identical copy of src at dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
