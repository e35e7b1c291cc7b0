package resolve

import (
	"context"
	"fmt"
	"sort"

	"github.com/rkuiper/photos-export/internal/repository"
)

// FaceResolver looks up who is tagged on a photo.
type FaceResolver struct {
	faces repository.FaceRepository
}

// NewFaceResolver creates a new FaceResolver.
func NewFaceResolver(faces repository.FaceRepository) *FaceResolver {
	return &FaceResolver{faces: faces}
}

// Resolve returns the person names tagged on a photo, sorted ascending so
// output is stable. Untagged photos yield an empty slice.
func (r *FaceResolver) Resolve(ctx context.Context, photoUUID string) ([]string, error) {
	names, err := r.faces.NamesForPhoto(ctx, photoUUID)
	if err != nil {
		return nil, fmt.Errorf("resolve faces: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
