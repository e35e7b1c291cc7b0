package sqlite

import (
	"context"
	"fmt"
)

// PlaceRepository implements repository.PlaceRepository over the legacy
// library schema (RKPlace via the RKPlaceForVersion association table).
type PlaceRepository struct {
	db *DB
}

// NewPlaceRepository creates a new PlaceRepository.
func NewPlaceRepository(db *DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// NamesForPhoto returns the distinct place names a version falls inside,
// ordered by area. Place records without a name are excluded.
func (r *PlaceRepository) NamesForPhoto(ctx context.Context, versionModelID int64, mostSpecificFirst bool) ([]string, error) {
	order := "DESC"
	if mostSpecificFirst {
		order = "ASC"
	}
	// GROUP BY keeps names distinct while still sorting on area, which
	// SELECT DISTINCT would reject.
	query := fmt.Sprintf(`
		SELECT p.defaultName
		FROM RKPlace AS p
		INNER JOIN RKPlaceForVersion AS pv ON pv.placeId = p.modelId
		WHERE pv.versionId = ?
		  AND p.defaultName IS NOT NULL AND p.defaultName != ''
		GROUP BY p.defaultName
		ORDER BY MIN(p.area) %s
	`, order)

	rows, err := r.db.QueryContext(ctx, query, versionModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read places: %w", err)
	}
	return names, nil
}
