package repository

import (
	"context"

	"github.com/rkuiper/photos-export/internal/library"
)

// PhotoRepository reads the exportable photos of a library. The stream is
// ordered by capture time ascending and excludes trashed items.
type PhotoRepository interface {
	Count(ctx context.Context) (int, error)
	// Stream calls fn once per photo, in capture-time order. A non-nil
	// error from fn stops the stream and is returned unchanged.
	Stream(ctx context.Context, fn func(library.Photo) error) error
}

// PlaceRepository resolves the place names associated with a photo version.
type PlaceRepository interface {
	// NamesForPhoto returns the distinct non-empty place names for a
	// version, ordered by area: smallest region first when
	// mostSpecificFirst is set, largest first otherwise.
	NamesForPhoto(ctx context.Context, versionModelID int64, mostSpecificFirst bool) ([]string, error)
}

// FaceRepository resolves the person names tagged on a photo.
type FaceRepository interface {
	NamesForPhoto(ctx context.Context, photoUUID string) ([]string, error)
}
