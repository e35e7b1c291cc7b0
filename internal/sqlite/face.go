package sqlite

import (
	"context"
	"fmt"
)

// FaceRepository implements repository.FaceRepository over the Person
// database (RKPerson via RKFace). Faces live in a separate database file
// from the photos themselves.
type FaceRepository struct {
	db *DB
}

// NewFaceRepository creates a new FaceRepository.
func NewFaceRepository(db *DB) *FaceRepository {
	return &FaceRepository{db: db}
}

// NamesForPhoto returns the distinct person names tagged on a photo, sorted
// for stable output. Unnamed detections are excluded.
func (r *FaceRepository) NamesForPhoto(ctx context.Context, photoUUID string) ([]string, error) {
	query := `
		SELECT DISTINCT p.name
		FROM RKPerson AS p
		INNER JOIN RKFace AS f ON f.personId = p.modelId
		WHERE f.imageId = ?
		  AND p.name IS NOT NULL AND p.name != ''
		ORDER BY p.name
	`

	rows, err := r.db.QueryContext(ctx, query, photoUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query faces: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan face: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read faces: %w", err)
	}
	return names, nil
}
