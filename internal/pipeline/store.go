package pipeline

import (
	"context"

	"github.com/JonMunkholm/inspections/internal/models"
	"github.com/JonMunkholm/inspections/internal/store"
)

// Tx is the transactional view of the store that stages work through.
type Tx interface {
	Reset(ctx context.Context) error

	CopyRestaurantTypes(ctx context.Context, items []models.RestaurantType) (int64, error)
	CopyGrades(ctx context.Context, items []models.Grade) (int64, error)
	CopyInspectionTypes(ctx context.Context, items []models.InspectionType) (int64, error)
	CopyRestaurants(ctx context.Context, items []models.Restaurant) (int64, error)
	CopyRestaurantContacts(ctx context.Context, items []models.RestaurantContact) (int64, error)
	CopyInspections(ctx context.Context, items []models.Inspection) (int64, error)
	CopyViolations(ctx context.Context, items []models.Violation) (int64, error)

	ListRestaurantTypes(ctx context.Context) ([]models.RestaurantType, error)
	ListGrades(ctx context.Context) ([]models.Grade, error)
	ListInspectionTypes(ctx context.Context) ([]models.InspectionType, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	InspectionSnapshots(ctx context.Context) ([]models.InspectionSnapshot, error)
}

// Store runs fn in a transaction that commits only if fn returns nil.
type Store interface {
	WithinTx(ctx context.Context, fn func(Tx) error) error
}

// FromDB adapts a PostgreSQL store.
func FromDB(db *store.DB) Store {
	return dbStore{db: db}
}

type dbStore struct {
	db *store.DB
}

func (s dbStore) WithinTx(ctx context.Context, fn func(Tx) error) error {
	return s.db.WithinTx(ctx, func(q *store.Queries) error {
		return fn(q)
	})
}
