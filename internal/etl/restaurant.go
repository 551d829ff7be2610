package etl

import "github.com/JonMunkholm/inspections/internal/models"

// TransformRestaurants builds restaurants, resolving each row's cuisine label
// through types (keyed by slug).
func TransformRestaurants(rows []Row, types *Index) ([]models.Restaurant, error) {
	out := make([]models.Restaurant, 0, len(rows))
	for i, row := range rows {
		typeID, err := types.Lookup(Normalize(row.Get(ColRestaurantType)))
		if err != nil {
			return nil, rowError(i, err)
		}
		out = append(out, models.Restaurant{
			Code:             row.Get(ColRestaurantCode),
			Name:             row.Get(ColName),
			RestaurantTypeID: typeID,
		})
	}
	return out, nil
}

// TransformRestaurantContacts builds contacts, resolving each row's restaurant
// code through restaurants and its borough through the fixed borough list.
func TransformRestaurantContacts(rows []Row, restaurants *Index) ([]models.RestaurantContact, error) {
	out := make([]models.RestaurantContact, 0, len(rows))
	for i, row := range rows {
		restaurantID, err := restaurants.Lookup(row.Get(ColRestaurantCode))
		if err != nil {
			return nil, rowError(i, err)
		}

		boroSlug := Normalize(row.Get(ColBoro))
		boro, ok := models.ParseBoro(boroSlug)
		if !ok {
			return nil, rowError(i, &LookupError{Kind: "boro", Key: boroSlug})
		}

		out = append(out, models.RestaurantContact{
			RestaurantID:   restaurantID,
			Boro:           boro,
			BuildingNumber: row.Get(ColBuilding),
			Street:         row.Get(ColStreet),
			ZipCode:        row.Get(ColZipCode),
			Phone:          toText(row.Get(ColPhone)),
		})
	}
	return out, nil
}
