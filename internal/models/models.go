// Package models defines the restaurant inspection entity graph.
//
// Records are built by the etl transformers and handed to the store for bulk
// insertion. The ID field is zero until the database assigns one; listings
// read back from the store carry it.
package models

import "github.com/jackc/pgx/v5/pgtype"

// RestaurantType is a cuisine label shared by many restaurants.
type RestaurantType struct {
	ID          int64  `db:"id" json:"id"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}

// Grade is a letter grade label (A, B, C, Z, ...).
type Grade struct {
	ID    int64  `db:"id" json:"id"`
	Slug  string `db:"slug" json:"slug"`
	Label string `db:"label" json:"label"`
}

// InspectionType labels the kind of inspection performed.
type InspectionType struct {
	ID    int64  `db:"id" json:"id"`
	Slug  string `db:"slug" json:"slug"`
	Label string `db:"label" json:"label"`
}

// Restaurant is keyed by Code, the natural key every later stage joins on.
type Restaurant struct {
	ID               int64  `db:"id" json:"id"`
	Code             string `db:"code" json:"code"`
	Name             string `db:"name" json:"name"`
	RestaurantTypeID int64  `db:"restaurant_type_id" json:"restaurant_type_id"`
}

// RestaurantContact holds the location and phone of a restaurant.
type RestaurantContact struct {
	ID             int64       `db:"id" json:"id"`
	RestaurantID   int64       `db:"restaurant_id" json:"restaurant_id"`
	Boro           Boro        `db:"boro" json:"boro"`
	BuildingNumber string      `db:"building_number" json:"building_number"`
	Street         string      `db:"street" json:"street"`
	ZipCode        string      `db:"zip_code" json:"zip_code"`
	Phone          pgtype.Text `db:"phone" json:"phone"`
}

// Inspection is a single visit. (restaurant, InspectionDate) is unique.
type Inspection struct {
	ID               int64       `db:"id" json:"id"`
	RestaurantID     int64       `db:"restaurant_id" json:"restaurant_id"`
	InspectionTypeID int64       `db:"inspection_type_id" json:"inspection_type_id"`
	InspectionDate   pgtype.Date `db:"inspection_date" json:"inspection_date"`
	Score            pgtype.Int4 `db:"score" json:"score"`
	GradeID          pgtype.Int8 `db:"grade_id" json:"grade_id"`
	GradeDate        pgtype.Date `db:"grade_date" json:"grade_date"`
}

// Violation is a finding recorded during an inspection.
type Violation struct {
	ID             int64          `db:"id" json:"id"`
	InspectionID   int64          `db:"inspection_id" json:"inspection_id"`
	Code           string         `db:"code" json:"code"`
	CriticalRating CriticalRating `db:"critical_rating" json:"critical_rating"`
	Description    string         `db:"description" json:"description"`
}

// InspectionSnapshot is the slice of a persisted inspection needed to infer
// which inspection a violation row belongs to.
type InspectionSnapshot struct {
	ID             int64       `db:"id"`
	InspectionDate pgtype.Date `db:"inspection_date"`
	RestaurantCode string      `db:"restaurant_code"`
}
