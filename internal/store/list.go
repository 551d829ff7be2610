package store

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/inspections/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	listRestaurantTypes = `SELECT id, slug, description FROM restaurant_types ORDER BY id`
	listGrades          = `SELECT id, slug, label FROM grades ORDER BY id`
	listInspectionTypes = `SELECT id, slug, label FROM inspection_types ORDER BY id`
	listRestaurants     = `SELECT id, code, name, restaurant_type_id FROM restaurants ORDER BY id`

	listInspectionSnapshots = `
SELECT i.id, i.inspection_date, r.code AS restaurant_code
FROM inspections i
JOIN restaurants r ON r.id = i.restaurant_id
ORDER BY i.id`
)

// collect runs query and scans every row into T by column name.
func collect[T any](ctx context.Context, db DBTX, what, query string) ([]T, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", what, err)
	}
	return items, nil
}

func (q *Queries) ListRestaurantTypes(ctx context.Context) ([]models.RestaurantType, error) {
	return collect[models.RestaurantType](ctx, q.db, "restaurant types", listRestaurantTypes)
}

func (q *Queries) ListGrades(ctx context.Context) ([]models.Grade, error) {
	return collect[models.Grade](ctx, q.db, "grades", listGrades)
}

func (q *Queries) ListInspectionTypes(ctx context.Context) ([]models.InspectionType, error) {
	return collect[models.InspectionType](ctx, q.db, "inspection types", listInspectionTypes)
}

func (q *Queries) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return collect[models.Restaurant](ctx, q.db, "restaurants", listRestaurants)
}

// InspectionSnapshots returns every persisted inspection with the code of its
// restaurant, the input of violation matching.
func (q *Queries) InspectionSnapshots(ctx context.Context) ([]models.InspectionSnapshot, error) {
	return collect[models.InspectionSnapshot](ctx, q.db, "inspection snapshots", listInspectionSnapshots)
}
