// Package resolve turns photo identifiers into display strings: the place a
// photo was taken and the people tagged on it.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/rkuiper/photos-export/internal/repository"
)

// PlaceResolver picks the place name a photo is filed under.
type PlaceResolver struct {
	places repository.PlaceRepository
}

// NewPlaceResolver creates a new PlaceResolver.
func NewPlaceResolver(places repository.PlaceRepository) *PlaceResolver {
	return &PlaceResolver{places: places}
}

// Resolve returns the photo's place name, or "" when the photo has no place
// association. Without hierarchy the single most specific (smallest-area)
// name is returned; with hierarchy all distinct names are joined from the
// broadest region down, "Netherlands, Amsterdam" style.
func (r *PlaceResolver) Resolve(ctx context.Context, versionModelID int64, hierarchy bool) (string, error) {
	names, err := r.places.NamesForPhoto(ctx, versionModelID, !hierarchy)
	if err != nil {
		return "", fmt.Errorf("resolve place: %w", err)
	}
	if len(names) == 0 {
		return "", nil
	}
	if hierarchy {
		return strings.Join(names, ", "), nil
	}
	return names[0], nil
}
