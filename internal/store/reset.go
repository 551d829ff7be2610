package store

import (
	"context"
	"fmt"
)

// resetAll clears children and parents in one statement.
const resetAll = `TRUNCATE violations, inspections, restaurant_contacts, restaurants,
	inspection_types, grades, restaurant_types RESTART IDENTITY CASCADE`

// Reset deletes every row and restarts identity sequences.
func (q *Queries) Reset(ctx context.Context) error {
	if _, err := q.db.Exec(ctx, resetAll); err != nil {
		return fmt.Errorf("reset tables: %w", err)
	}
	return nil
}

// TableCounts holds the row count of each table.
type TableCounts struct {
	RestaurantTypes    int64 `json:"restaurant_types"`
	Grades             int64 `json:"grades"`
	InspectionTypes    int64 `json:"inspection_types"`
	Restaurants        int64 `json:"restaurants"`
	RestaurantContacts int64 `json:"restaurant_contacts"`
	Inspections        int64 `json:"inspections"`
	Violations         int64 `json:"violations"`
}

const countAll = `
SELECT
	(SELECT count(*) FROM restaurant_types),
	(SELECT count(*) FROM grades),
	(SELECT count(*) FROM inspection_types),
	(SELECT count(*) FROM restaurants),
	(SELECT count(*) FROM restaurant_contacts),
	(SELECT count(*) FROM inspections),
	(SELECT count(*) FROM violations)`

// Counts reports how many rows each table holds.
func (q *Queries) Counts(ctx context.Context) (TableCounts, error) {
	var c TableCounts
	err := q.db.QueryRow(ctx, countAll).Scan(
		&c.RestaurantTypes,
		&c.Grades,
		&c.InspectionTypes,
		&c.Restaurants,
		&c.RestaurantContacts,
		&c.Inspections,
		&c.Violations,
	)
	if err != nil {
		return TableCounts{}, fmt.Errorf("count tables: %w", err)
	}
	return c, nil
}
