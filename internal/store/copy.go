package store

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/inspections/internal/models"
	"github.com/jackc/pgx/v5"
)

// copyTable names a COPY target. Row funcs must return values in the order
// of columns.
type copyTable struct {
	name    string
	columns []string
}

var (
	restaurantTypesTable = copyTable{"restaurant_types", []string{"slug", "description"}}
	gradesTable          = copyTable{"grades", []string{"slug", "label"}}
	inspectionTypesTable = copyTable{"inspection_types", []string{"slug", "label"}}
	restaurantsTable     = copyTable{"restaurants", []string{"code", "name", "restaurant_type_id"}}
	contactsTable        = copyTable{"restaurant_contacts", []string{
		"restaurant_id", "boro", "building_number", "street", "zip_code", "phone",
	}}
	inspectionsTable = copyTable{"inspections", []string{
		"restaurant_id", "inspection_type_id", "inspection_date", "score", "grade_id", "grade_date",
	}}
	violationsTable = copyTable{"violations", []string{
		"inspection_id", "code", "critical_rating", "description",
	}}
)

// copyRows bulk inserts items with the COPY protocol. Identity columns are
// assigned by the database.
func copyRows[T any](ctx context.Context, db DBTX, t copyTable, items []T, row func(T) []any) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	n, err := db.CopyFrom(ctx, pgx.Identifier{t.name}, t.columns,
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			return row(items[i]), nil
		}))
	if err != nil {
		return n, fmt.Errorf("copy %s: %w", t.name, err)
	}
	return n, nil
}

func (q *Queries) CopyRestaurantTypes(ctx context.Context, items []models.RestaurantType) (int64, error) {
	return copyRows(ctx, q.db, restaurantTypesTable, items, restaurantTypeRow)
}

func (q *Queries) CopyGrades(ctx context.Context, items []models.Grade) (int64, error) {
	return copyRows(ctx, q.db, gradesTable, items, gradeRow)
}

func (q *Queries) CopyInspectionTypes(ctx context.Context, items []models.InspectionType) (int64, error) {
	return copyRows(ctx, q.db, inspectionTypesTable, items, inspectionTypeRow)
}

func (q *Queries) CopyRestaurants(ctx context.Context, items []models.Restaurant) (int64, error) {
	return copyRows(ctx, q.db, restaurantsTable, items, restaurantRow)
}

func (q *Queries) CopyRestaurantContacts(ctx context.Context, items []models.RestaurantContact) (int64, error) {
	return copyRows(ctx, q.db, contactsTable, items, contactRow)
}

func (q *Queries) CopyInspections(ctx context.Context, items []models.Inspection) (int64, error) {
	return copyRows(ctx, q.db, inspectionsTable, items, inspectionRow)
}

func (q *Queries) CopyViolations(ctx context.Context, items []models.Violation) (int64, error) {
	return copyRows(ctx, q.db, violationsTable, items, violationRow)
}

func restaurantTypeRow(t models.RestaurantType) []any {
	return []any{t.Slug, t.Description}
}

func gradeRow(g models.Grade) []any {
	return []any{g.Slug, g.Label}
}

func inspectionTypeRow(t models.InspectionType) []any {
	return []any{t.Slug, t.Label}
}

func restaurantRow(r models.Restaurant) []any {
	return []any{r.Code, r.Name, r.RestaurantTypeID}
}

// Enum values go over the wire as their base types.
func contactRow(c models.RestaurantContact) []any {
	return []any{c.RestaurantID, string(c.Boro), c.BuildingNumber, c.Street, c.ZipCode, c.Phone}
}

func inspectionRow(i models.Inspection) []any {
	return []any{i.RestaurantID, i.InspectionTypeID, i.InspectionDate, i.Score, i.GradeID, i.GradeDate}
}

func violationRow(v models.Violation) []any {
	return []any{v.InspectionID, v.Code, int16(v.CriticalRating), v.Description}
}
