package export

import (
	"context"
	"fmt"

	"github.com/rkuiper/photos-export/internal/library"
	"github.com/rkuiper/photos-export/internal/phototime"
	"github.com/rkuiper/photos-export/internal/resolve"
)

// FlushFunc receives each completed day stack, in day order.
type FlushFunc func(ctx context.Context, stack *DayStack) error

// Grouper partitions the time-ordered photo stream into contiguous day
// stacks. At most one stack is open at a time; it is flushed when the stream
// moves to a different day and again, finally, from Close.
type Grouper struct {
	places    *resolve.PlaceResolver // nil disables place tallying
	hierarchy bool
	flush     FlushFunc
	open      *DayStack
}

// NewGrouper creates a grouper that flushes completed stacks through flush.
// Pass a nil place resolver when location augmentation is disabled.
func NewGrouper(places *resolve.PlaceResolver, hierarchy bool, flush FlushFunc) *Grouper {
	return &Grouper{places: places, hierarchy: hierarchy, flush: flush}
}

// Add routes one photo into the open stack, flushing the previous day's
// stack first if the photo starts a new day.
func (g *Grouper) Add(ctx context.Context, p library.Photo) error {
	day := phototime.DayKey(phototime.Resolve(p.ImageDate, p.TZOffsetSecs))

	if g.open != nil && g.open.Day != day {
		if err := g.flush(ctx, g.open); err != nil {
			return err
		}
		g.open = nil
	}
	if g.open == nil {
		g.open = newDayStack(day)
	}

	var place string
	if g.places != nil {
		var err error
		place, err = g.places.Resolve(ctx, p.ModelID, g.hierarchy)
		if err != nil {
			return fmt.Errorf("photo %s: %w", p.FileName, err)
		}
	}
	g.open.add(p, place)
	return nil
}

// Close flushes the stack left open when the stream ends. Safe to call on an
// empty grouper.
func (g *Grouper) Close(ctx context.Context) error {
	if g.open == nil {
		return nil
	}
	stack := g.open
	g.open = nil
	return g.flush(ctx, stack)
}
