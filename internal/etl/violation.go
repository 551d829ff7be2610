package etl

import (
	"github.com/JonMunkholm/inspections/internal/models"
)

// inspectionKey is the composite natural key of an inspection.
type inspectionKey struct {
	code string
	date string // yyyy-mm-dd
}

// InspectionIndex resolves (restaurant code, inspection date) to the single
// persisted inspection carrying that pair.
type InspectionIndex struct {
	ids map[inspectionKey][]int64
}

// BuildInspectionIndex indexes a snapshot of persisted inspections. Snapshot
// rows without a date can never match and are left out.
func BuildInspectionIndex(snapshot []models.InspectionSnapshot) *InspectionIndex {
	ids := make(map[inspectionKey][]int64, len(snapshot))
	for _, s := range snapshot {
		if !s.InspectionDate.Valid {
			continue
		}
		k := inspectionKey{code: s.RestaurantCode, date: s.InspectionDate.Time.Format(isoDate)}
		ids[k] = append(ids[k], s.ID)
	}
	return &InspectionIndex{ids: ids}
}

// Lookup returns the id of the only inspection matching code and date
// (yyyy-mm-dd). Zero or several matches yield an *InspectionMatchError.
func (idx *InspectionIndex) Lookup(code, date string) (int64, error) {
	matches := idx.ids[inspectionKey{code: code, date: date}]
	if len(matches) != 1 {
		return 0, &InspectionMatchError{RestaurantCode: code, Date: date, Matches: len(matches)}
	}
	return matches[0], nil
}

// TransformViolations builds violations, inferring each one's inspection from
// its restaurant code and inspection date.
func TransformViolations(rows []Row, snapshot []models.InspectionSnapshot) ([]models.Violation, error) {
	inspections := BuildInspectionIndex(snapshot)

	out := make([]models.Violation, 0, len(rows))
	for i, row := range rows {
		v, err := transformViolation(row, inspections)
		if err != nil {
			return nil, rowError(i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func transformViolation(row Row, inspections *InspectionIndex) (models.Violation, error) {
	raw := row.Get(ColInspectionDate)
	date, err := ParseDate(ColInspectionDate, raw)
	if err != nil {
		return models.Violation{}, err
	}
	if !date.Valid {
		return models.Violation{}, &ParseError{Column: ColInspectionDate, Value: raw}
	}

	inspectionID, err := inspections.Lookup(row.Get(ColRestaurantCode), date.Time.Format(isoDate))
	if err != nil {
		return models.Violation{}, err
	}

	ratingSlug := Normalize(row.Get(ColCriticalRating))
	rating, ok := models.ParseCriticalRating(ratingSlug)
	if !ok {
		return models.Violation{}, &LookupError{Kind: "critical rating", Key: ratingSlug}
	}

	return models.Violation{
		InspectionID:   inspectionID,
		Code:           row.Get(ColViolationCode),
		CriticalRating: rating,
		Description:    row.Get(ColViolationDescription),
	}, nil
}
