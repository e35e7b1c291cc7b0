package metadata

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rkuiper/photos-export/internal/repository/mocks"
	"github.com/rkuiper/photos-export/internal/resolve"
)

// stubTool records tag operations instead of touching files.
type stubTool struct {
	dates    Dates
	readErr  error
	writeErr error

	wroteDates    []string
	wroteKeywords [][]string
}

func (s *stubTool) ReadDates(path string) (Dates, error) {
	return s.dates, s.readErr
}

func (s *stubTool) WriteDates(path, value string) error {
	s.wroteDates = append(s.wroteDates, value)
	return s.writeErr
}

func (s *stubTool) WriteKeywords(path string, keywords []string) error {
	s.wroteKeywords = append(s.wroteKeywords, keywords)
	return s.writeErr
}

func (s *stubTool) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var taken = time.Date(2023, time.May, 1, 12, 0, 0, 0, time.UTC)

func TestSync_DateAlreadyMatching(t *testing.T) {
	tool := &stubTool{dates: Dates{Create: "2023:05:01 12:00:00"}}
	s := NewSynchronizer(tool, nil, true, false, discardLogger())

	s.Sync(context.Background(), "/dest/a.jpg", taken, "uuid-1")
	require.Empty(t, tool.wroteDates, "matching date must not be rewritten")
}

func TestSync_DateMismatchRewrites(t *testing.T) {
	tool := &stubTool{dates: Dates{Create: "2020:01:01 00:00:00"}}
	s := NewSynchronizer(tool, nil, true, false, discardLogger())

	s.Sync(context.Background(), "/dest/a.jpg", taken, "uuid-1")
	require.Equal(t, []string{"2023:05:01 12:00:00"}, tool.wroteDates)
}

func TestSync_FallsBackToOriginalDate(t *testing.T) {
	tool := &stubTool{dates: Dates{Original: "2023:05:01 12:00:00"}}
	s := NewSynchronizer(tool, nil, true, false, discardLogger())

	s.Sync(context.Background(), "/dest/a.jpg", taken, "uuid-1")
	require.Empty(t, tool.wroteDates, "DateTimeOriginal matching is enough")
}

func TestSync_AbsentDatesRewrite(t *testing.T) {
	tool := &stubTool{}
	s := NewSynchronizer(tool, nil, true, false, discardLogger())

	s.Sync(context.Background(), "/dest/a.jpg", taken, "uuid-1")
	require.Len(t, tool.wroteDates, 1)
}

func TestSync_NonEditableExtensionSkipped(t *testing.T) {
	tool := &stubTool{}
	s := NewSynchronizer(tool, nil, true, false, discardLogger())

	s.Sync(context.Background(), "/dest/a.mov", taken, "uuid-1")
	require.Empty(t, tool.wroteDates)
	require.Empty(t, tool.wroteKeywords)
}

func TestSync_ExtensionCaseInsensitive(t *testing.T) {
	tool := &stubTool{}
	s := NewSynchronizer(tool, nil, true, false, discardLogger())

	s.Sync(context.Background(), "/dest/A.JPG", taken, "uuid-1")
	require.Len(t, tool.wroteDates, 1)
}

func TestSync_DryRunWritesNothing(t *testing.T) {
	ctx := context.Background()

	facesRepo := &mocks.FaceRepository{}
	facesRepo.On("NamesForPhoto", ctx, "uuid-1").Return([]string{"Jan"}, nil)

	tool := &stubTool{}
	s := NewSynchronizer(tool, resolve.NewFaceResolver(facesRepo), true, true, discardLogger())

	s.Sync(ctx, "/dest/a.jpg", taken, "uuid-1")
	require.Empty(t, tool.wroteDates)
	require.Empty(t, tool.wroteKeywords)
}

func TestSync_KeywordsWrittenUnconditionally(t *testing.T) {
	ctx := context.Background()

	facesRepo := &mocks.FaceRepository{}
	facesRepo.On("NamesForPhoto", ctx, "uuid-1").Return([]string{"Maria", "Jan"}, nil)

	// Date already matches; keywords must still be replaced.
	tool := &stubTool{dates: Dates{Create: "2023:05:01 12:00:00"}}
	s := NewSynchronizer(tool, resolve.NewFaceResolver(facesRepo), true, false, discardLogger())

	s.Sync(ctx, "/dest/a.jpg", taken, "uuid-1")
	require.Empty(t, tool.wroteDates)
	require.Equal(t, [][]string{{"Jan", "Maria"}}, tool.wroteKeywords)
}

func TestSync_DateSyncDisabled(t *testing.T) {
	ctx := context.Background()

	facesRepo := &mocks.FaceRepository{}
	facesRepo.On("NamesForPhoto", ctx, "uuid-1").Return([]string{"Jan"}, nil)

	tool := &stubTool{}
	s := NewSynchronizer(tool, resolve.NewFaceResolver(facesRepo), false, false, discardLogger())

	s.Sync(ctx, "/dest/a.jpg", taken, "uuid-1")
	require.Empty(t, tool.wroteDates, "date sync off must not touch date tags")
	require.Len(t, tool.wroteKeywords, 1)
}

func TestSync_ToolErrorsDoNotPropagate(t *testing.T) {
	tool := &stubTool{readErr: errors.New("tool broke")}
	s := NewSynchronizer(tool, nil, true, false, discardLogger())

	// Must not panic or abort; the error is logged and swallowed.
	s.Sync(context.Background(), "/dest/a.jpg", taken, "uuid-1")
	require.Empty(t, tool.wroteDates)
}
