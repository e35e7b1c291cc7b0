// Package export contains the export pipeline: grouping the photo stream
// into day stacks, planning per-file copy decisions, and driving metadata
// synchronization.
package export

import (
	"github.com/rkuiper/photos-export/internal/library"
)

// DayStack accumulates the photos of one calendar day together with a tally
// of their resolved place names. A stack is mutated only while it is the
// single open stack and is flushed exactly once.
type DayStack struct {
	// Day is the calendar-day key, "2006-01-02".
	Day    string
	Photos []library.Photo
	// PlaceTally counts occurrences per non-empty resolved place name.
	PlaceTally map[string]int
}

func newDayStack(day string) *DayStack {
	return &DayStack{
		Day:        day,
		PlaceTally: make(map[string]int),
	}
}

// add appends a photo and tallies its resolved place. Photos without a
// resolvable place still join the stack but leave the tally alone.
func (s *DayStack) add(p library.Photo, place string) {
	s.Photos = append(s.Photos, p)
	if place != "" {
		s.PlaceTally[place]++
	}
}

// DominantPlace returns the most frequent place name in the stack, or ""
// when no photo resolved to a place. Equal tallies resolve alphabetically so
// the choice is stable between runs.
func (s *DayStack) DominantPlace() string {
	var best string
	bestCount := 0
	for name, count := range s.PlaceTally {
		if count > bestCount || (count == bestCount && name < best) {
			best = name
			bestCount = count
		}
	}
	return best
}
