package metadata

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/rkuiper/photos-export/internal/phototime"
	"github.com/rkuiper/photos-export/internal/resolve"
)

// Extensions the tool can safely edit metadata in.
var editableExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// Synchronizer updates exported files so their embedded capture date matches
// the library and, optionally, so tagged person names appear as keywords.
// All edits are best-effort: tool failures are logged, never fatal.
type Synchronizer struct {
	tool   Tool
	faces  *resolve.FaceResolver // nil disables keyword sync
	dates  bool
	dryRun bool
	logger *slog.Logger
}

// NewSynchronizer creates a new Synchronizer. Date sync and keyword sync are
// independent: dates toggles the former, a nil faces resolver disables the
// latter.
func NewSynchronizer(tool Tool, faces *resolve.FaceResolver, dates, dryRun bool, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{tool: tool, faces: faces, dates: dates, dryRun: dryRun, logger: logger}
}

// Sync brings one exported file's metadata in line with the library. Files
// whose extension is not metadata-editable are left untouched.
func (s *Synchronizer) Sync(ctx context.Context, path string, taken time.Time, photoUUID string) {
	if !editableExts[strings.ToLower(filepath.Ext(path))] {
		return
	}
	if s.dates {
		s.syncDate(path, taken)
	}
	if s.faces != nil {
		s.syncKeywords(ctx, path, photoUUID)
	}
}

// syncDate rewrites the capture-date tags only when they differ from the
// library's capture instant, preferring CreateDate for the comparison and
// falling back to DateTimeOriginal.
func (s *Synchronizer) syncDate(path string, taken time.Time) {
	desired := phototime.ExifDate(taken)

	current, err := s.tool.ReadDates(path)
	if err != nil {
		s.logger.Warn("failed to read date tags", "path", path, "error", err)
		return
	}

	have := current.Create
	if have == "" {
		have = current.Original
	}
	if have == desired {
		return
	}

	s.logger.Debug("replacing embedded date", "path", path, "from", have, "to", desired)
	if s.dryRun {
		return
	}
	if err := s.tool.WriteDates(path, desired); err != nil {
		s.logger.Warn("failed to write date tags", "path", path, "error", err)
	}
}

// syncKeywords replaces the file's keyword set with the tagged person names.
// Unlike dates this is not diffed first; the write is cheap and idempotent.
func (s *Synchronizer) syncKeywords(ctx context.Context, path, photoUUID string) {
	names, err := s.faces.Resolve(ctx, photoUUID)
	if err != nil {
		s.logger.Warn("failed to resolve faces", "path", path, "error", err)
		return
	}

	s.logger.Debug("writing keywords", "path", path, "keywords", names)
	if s.dryRun {
		return
	}
	if err := s.tool.WriteKeywords(path, names); err != nil {
		s.logger.Warn("failed to write keywords", "path", path, "error", err)
	}
}
