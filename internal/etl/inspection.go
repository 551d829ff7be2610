package etl

import (
	"github.com/JonMunkholm/inspections/internal/models"
	"github.com/jackc/pgx/v5/pgtype"
)

// TransformInspections builds inspections. Restaurant and inspection type must
// resolve. The grade is looked up only when the row has one; a blank grade
// leaves GradeID NULL. GradeDate is parsed from its own cell independently of
// the grade, so a dated row without a grade keeps its grade date.
func TransformInspections(rows []Row, restaurants, grades, inspectionTypes *Index) ([]models.Inspection, error) {
	out := make([]models.Inspection, 0, len(rows))
	for i, row := range rows {
		insp, err := transformInspection(row, restaurants, grades, inspectionTypes)
		if err != nil {
			return nil, rowError(i, err)
		}
		out = append(out, insp)
	}
	return out, nil
}

func transformInspection(row Row, restaurants, grades, inspectionTypes *Index) (models.Inspection, error) {
	restaurantID, err := restaurants.Lookup(row.Get(ColRestaurantCode))
	if err != nil {
		return models.Inspection{}, err
	}

	typeID, err := inspectionTypes.Lookup(Normalize(row.Get(ColInspectionType)))
	if err != nil {
		return models.Inspection{}, err
	}

	var gradeID pgtype.Int8
	if row.Has(ColGrade) {
		id, err := grades.Lookup(Normalize(row.Get(ColGrade)))
		if err != nil {
			return models.Inspection{}, err
		}
		gradeID = pgtype.Int8{Int64: id, Valid: true}
	}

	inspectionDate, err := ParseDate(ColInspectionDate, row.Get(ColInspectionDate))
	if err != nil {
		return models.Inspection{}, err
	}

	gradeDate, err := ParseDate(ColGradeDate, row.Get(ColGradeDate))
	if err != nil {
		return models.Inspection{}, err
	}

	score, err := ParseScore(row.Get(ColScore))
	if err != nil {
		return models.Inspection{}, err
	}

	return models.Inspection{
		RestaurantID:     restaurantID,
		InspectionTypeID: typeID,
		InspectionDate:   inspectionDate,
		Score:            score,
		GradeID:          gradeID,
		GradeDate:        gradeDate,
	}, nil
}
