package etl

import (
	"testing"
	"time"

	"github.com/JonMunkholm/inspections/internal/models"
	"github.com/jackc/pgx/v5/pgtype"
)

// mustIndex unwraps an index builder result for fixtures known to be valid.
func mustIndex(idx *Index, err error) *Index {
	if err != nil {
		panic(err)
	}
	return idx
}

func date(y int, m time.Month, d int) pgtype.Date {
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func wendysRow() Row {
	return Row{
		ColRestaurantCode: "30004700",
		ColName:           "WENDY'S",
		ColRestaurantType: "Hamburgers",
		ColBoro:           "BROOKLYN",
		ColBuilding:       "100",
		ColStreet:         "123 Somewhere Ave.",
		ColZipCode:        "12345",
		ColPhone:          "4445554444",
	}
}

func restaurantIndex(t *testing.T) *Index {
	return mustIndex(IndexRestaurants([]models.Restaurant{
		{ID: 1, Code: "30004700"},
		{ID: 2, Code: "30075445"},
	}))
}
