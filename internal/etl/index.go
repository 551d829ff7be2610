package etl

import (
	"fmt"

	"github.com/JonMunkholm/inspections/internal/models"
)

// Index maps the natural key of one entity kind to its database identifier.
// It is a read-only snapshot built for a single transform call.
type Index struct {
	kind string
	ids  map[string]int64
}

// BuildIndex indexes entities by key. Keys must be unique across the set; a
// repeated key means the store already holds inconsistent data and
// ErrDuplicateKey is returned.
func BuildIndex[E any](kind string, entities []E, key func(E) string, id func(E) int64) (*Index, error) {
	ids := make(map[string]int64, len(entities))
	for _, e := range entities {
		k := key(e)
		if prev, exists := ids[k]; exists {
			return nil, fmt.Errorf("%s %q held by ids %d and %d: %w", kind, k, prev, id(e), ErrDuplicateKey)
		}
		ids[k] = id(e)
	}
	return &Index{kind: kind, ids: ids}, nil
}

// Lookup returns the identifier for key or a *LookupError.
func (idx *Index) Lookup(key string) (int64, error) {
	if id, ok := idx.ids[key]; ok {
		return id, nil
	}
	return 0, &LookupError{Kind: idx.kind, Key: key}
}

// Kind returns the entity kind named in lookup errors.
func (idx *Index) Kind() string { return idx.kind }

// Len returns the number of indexed keys.
func (idx *Index) Len() int { return len(idx.ids) }

// IndexRestaurantTypes keys persisted restaurant types by slug.
func IndexRestaurantTypes(types []models.RestaurantType) (*Index, error) {
	return BuildIndex("restaurant type", types,
		func(t models.RestaurantType) string { return t.Slug },
		func(t models.RestaurantType) int64 { return t.ID })
}

// IndexGrades keys persisted grades by slug.
func IndexGrades(grades []models.Grade) (*Index, error) {
	return BuildIndex("grade", grades,
		func(g models.Grade) string { return g.Slug },
		func(g models.Grade) int64 { return g.ID })
}

// IndexInspectionTypes keys persisted inspection types by slug.
func IndexInspectionTypes(types []models.InspectionType) (*Index, error) {
	return BuildIndex("inspection type", types,
		func(t models.InspectionType) string { return t.Slug },
		func(t models.InspectionType) int64 { return t.ID })
}

// IndexRestaurants keys persisted restaurants by code.
func IndexRestaurants(restaurants []models.Restaurant) (*Index, error) {
	return BuildIndex("restaurant", restaurants,
		func(r models.Restaurant) string { return r.Code },
		func(r models.Restaurant) int64 { return r.ID })
}
