package pipeline

import (
	"context"
	"slices"

	"github.com/JonMunkholm/inspections/internal/models"
)

// memState is an in-memory copy of every table. IDs restart at 1 after a
// reset, like RESTART IDENTITY.
type memState struct {
	restaurantTypes []models.RestaurantType
	grades          []models.Grade
	inspectionTypes []models.InspectionType
	restaurants     []models.Restaurant
	contacts        []models.RestaurantContact
	inspections     []models.Inspection
	violations      []models.Violation
}

func (s memState) clone() memState {
	return memState{
		restaurantTypes: slices.Clone(s.restaurantTypes),
		grades:          slices.Clone(s.grades),
		inspectionTypes: slices.Clone(s.inspectionTypes),
		restaurants:     slices.Clone(s.restaurants),
		contacts:        slices.Clone(s.contacts),
		inspections:     slices.Clone(s.inspections),
		violations:      slices.Clone(s.violations),
	}
}

// memStore commits a transaction's state only when fn succeeds.
type memStore struct {
	state   memState
	commits int
}

func (s *memStore) WithinTx(ctx context.Context, fn func(Tx) error) error {
	tx := &memTx{state: s.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	s.state = tx.state
	s.commits++
	return nil
}

type memTx struct {
	state memState
}

func (t *memTx) Reset(context.Context) error {
	t.state = memState{}
	return nil
}

// appendWithIDs assigns sequential ids continuing from the existing rows.
func appendWithIDs[E any](dst, src []E, setID func(*E, int64)) ([]E, int64) {
	for _, e := range src {
		setID(&e, int64(len(dst)+1))
		dst = append(dst, e)
	}
	return dst, int64(len(src))
}

func (t *memTx) CopyRestaurantTypes(_ context.Context, items []models.RestaurantType) (int64, error) {
	var n int64
	t.state.restaurantTypes, n = appendWithIDs(t.state.restaurantTypes, items, func(e *models.RestaurantType, id int64) { e.ID = id })
	return n, nil
}

func (t *memTx) CopyGrades(_ context.Context, items []models.Grade) (int64, error) {
	var n int64
	t.state.grades, n = appendWithIDs(t.state.grades, items, func(e *models.Grade, id int64) { e.ID = id })
	return n, nil
}

func (t *memTx) CopyInspectionTypes(_ context.Context, items []models.InspectionType) (int64, error) {
	var n int64
	t.state.inspectionTypes, n = appendWithIDs(t.state.inspectionTypes, items, func(e *models.InspectionType, id int64) { e.ID = id })
	return n, nil
}

func (t *memTx) CopyRestaurants(_ context.Context, items []models.Restaurant) (int64, error) {
	var n int64
	t.state.restaurants, n = appendWithIDs(t.state.restaurants, items, func(e *models.Restaurant, id int64) { e.ID = id })
	return n, nil
}

func (t *memTx) CopyRestaurantContacts(_ context.Context, items []models.RestaurantContact) (int64, error) {
	var n int64
	t.state.contacts, n = appendWithIDs(t.state.contacts, items, func(e *models.RestaurantContact, id int64) { e.ID = id })
	return n, nil
}

func (t *memTx) CopyInspections(_ context.Context, items []models.Inspection) (int64, error) {
	var n int64
	t.state.inspections, n = appendWithIDs(t.state.inspections, items, func(e *models.Inspection, id int64) { e.ID = id })
	return n, nil
}

func (t *memTx) CopyViolations(_ context.Context, items []models.Violation) (int64, error) {
	var n int64
	t.state.violations, n = appendWithIDs(t.state.violations, items, func(e *models.Violation, id int64) { e.ID = id })
	return n, nil
}

func (t *memTx) ListRestaurantTypes(context.Context) ([]models.RestaurantType, error) {
	return slices.Clone(t.state.restaurantTypes), nil
}

func (t *memTx) ListGrades(context.Context) ([]models.Grade, error) {
	return slices.Clone(t.state.grades), nil
}

func (t *memTx) ListInspectionTypes(context.Context) ([]models.InspectionType, error) {
	return slices.Clone(t.state.inspectionTypes), nil
}

func (t *memTx) ListRestaurants(context.Context) ([]models.Restaurant, error) {
	return slices.Clone(t.state.restaurants), nil
}

func (t *memTx) InspectionSnapshots(context.Context) ([]models.InspectionSnapshot, error) {
	codes := make(map[int64]string, len(t.state.restaurants))
	for _, r := range t.state.restaurants {
		codes[r.ID] = r.Code
	}

	out := make([]models.InspectionSnapshot, 0, len(t.state.inspections))
	for _, i := range t.state.inspections {
		out = append(out, models.InspectionSnapshot{
			ID:             i.ID,
			InspectionDate: i.InspectionDate,
			RestaurantCode: codes[i.RestaurantID],
		})
	}
	return out, nil
}
