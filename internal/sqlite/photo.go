package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rkuiper/photos-export/internal/library"
)

// PhotoRepository implements repository.PhotoRepository over the legacy
// library schema (RKMaster joined with RKVersion).
type PhotoRepository struct {
	db *DB
}

// NewPhotoRepository creates a new PhotoRepository.
func NewPhotoRepository(db *DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Count returns the number of exportable photos in the library.
func (r *PhotoRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM RKMaster WHERE isInTrash = 0",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

// Stream iterates the exportable photos in capture-time order.
func (r *PhotoRepository) Stream(ctx context.Context, fn func(library.Photo) error) error {
	query := `
		SELECT m.imagePath, m.fileName, v.imageDate,
		       v.imageTimeZoneOffsetSeconds, v.uuid, v.modelId
		FROM RKMaster AS m
		INNER JOIN RKVersion AS v ON v.masterId = m.modelId
		WHERE m.isInTrash = 0
		ORDER BY v.imageDate
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p        library.Photo
			tzOffset sql.NullInt64
		)
		if err := rows.Scan(&p.ImagePath, &p.FileName, &p.ImageDate, &tzOffset, &p.UUID, &p.ModelID); err != nil {
			return fmt.Errorf("failed to scan photo: %w", err)
		}
		p.TZOffsetSecs = tzOffset.Int64
		if err := fn(p); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to stream photos: %w", err)
	}
	return nil
}
