package etl

import "github.com/JonMunkholm/inspections/internal/models"

// transformReferences emits one record per label, in input order. Duplicate
// labels produce duplicate records; callers de-duplicate upstream.
func transformReferences[T any](labels []string, build func(slug, label string) T) []T {
	out := make([]T, len(labels))
	for i, label := range labels {
		out[i] = build(Normalize(label), label)
	}
	return out
}

// TransformRestaurantTypes builds restaurant types from cuisine labels.
func TransformRestaurantTypes(labels []string) []models.RestaurantType {
	return transformReferences(labels, func(slug, label string) models.RestaurantType {
		return models.RestaurantType{Slug: slug, Description: label}
	})
}

// TransformGrades builds grades from grade labels.
func TransformGrades(labels []string) []models.Grade {
	return transformReferences(labels, func(slug, label string) models.Grade {
		return models.Grade{Slug: slug, Label: label}
	})
}

// TransformInspectionTypes builds inspection types from their labels.
func TransformInspectionTypes(labels []string) []models.InspectionType {
	return transformReferences(labels, func(slug, label string) models.InspectionType {
		return models.InspectionType{Slug: slug, Label: label}
	})
}
