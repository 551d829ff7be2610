package etl

import (
	"errors"
	"testing"

	"github.com/JonMunkholm/inspections/internal/models"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRestaurants_ResolvesType(t *testing.T) {
	types := TransformRestaurantTypes([]string{"Hamburgers"})
	require.Equal(t, "hamburgers", types[0].Slug)

	// Persistence assigns the id.
	types[0].ID = 42
	idx := mustIndex(IndexRestaurantTypes(types))

	got, err := TransformRestaurants([]Row{wendysRow()}, idx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.Restaurant{
		Code:             "30004700",
		Name:             "WENDY'S",
		RestaurantTypeID: 42,
	}, got[0])
}

func TestTransformRestaurants_TypeLabelVariants(t *testing.T) {
	idx := mustIndex(IndexRestaurantTypes([]models.RestaurantType{{ID: 3, Slug: "juice-smoothies-fruit-salads"}}))

	rows := []Row{
		{ColRestaurantCode: "1", ColRestaurantType: "Juice, Smoothies, Fruit Salads"},
		{ColRestaurantCode: "2", ColRestaurantType: "JUICE SMOOTHIES FRUIT SALADS"},
	}
	got, err := TransformRestaurants(rows, idx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got[0].RestaurantTypeID)
	assert.Equal(t, int64(3), got[1].RestaurantTypeID)
}

func TestTransformRestaurants_UnknownTypeFails(t *testing.T) {
	idx := mustIndex(IndexRestaurantTypes([]models.RestaurantType{{ID: 1, Slug: "bakery"}}))

	rows := []Row{
		{ColRestaurantCode: "30075445", ColRestaurantType: "Bakery"},
		wendysRow(),
	}
	got, err := TransformRestaurants(rows, idx)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrLookup)
	assert.Contains(t, err.Error(), "row 2")

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "hamburgers", lookupErr.Key)
}

func TestTransformRestaurantContacts(t *testing.T) {
	got, err := TransformRestaurantContacts([]Row{wendysRow()}, restaurantIndex(t))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.RestaurantContact{
		RestaurantID:   1,
		Boro:           models.Brooklyn,
		BuildingNumber: "100",
		Street:         "123 Somewhere Ave.",
		ZipCode:        "12345",
		Phone:          pgtype.Text{String: "4445554444", Valid: true},
	}, got[0])
}

func TestTransformRestaurantContacts_Boro(t *testing.T) {
	tests := []struct {
		boro    string
		want    models.Boro
		wantErr bool
	}{
		{boro: "Staten Island", want: models.StatenIsland},
		{boro: "MANHATTAN", want: models.Manhattan},
		{boro: "queens", want: models.Queens},
		{boro: "0", wantErr: true},
		{boro: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.boro, func(t *testing.T) {
			row := wendysRow()
			row[ColBoro] = tt.boro
			got, err := TransformRestaurantContacts([]Row{row}, restaurantIndex(t))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrLookup)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got[0].Boro)
		})
	}
}

func TestTransformRestaurantContacts_NoPhone(t *testing.T) {
	row := wendysRow()
	row[ColPhone] = "  "
	got, err := TransformRestaurantContacts([]Row{row}, restaurantIndex(t))
	require.NoError(t, err)
	assert.False(t, got[0].Phone.Valid)
}

func TestTransformRestaurantContacts_UnknownRestaurantFails(t *testing.T) {
	row := wendysRow()
	row[ColRestaurantCode] = "99999999"
	got, err := TransformRestaurantContacts([]Row{row}, restaurantIndex(t))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrLookup)
	assert.Contains(t, err.Error(), `restaurant "99999999" not found`)
}
