package extract

import (
	"fmt"

	"github.com/JonMunkholm/inspections/internal/etl"
)

// Tables holds the input of every transform stage, derived from one export.
// The export repeats restaurant and inspection data on every violation line,
// so most stages take a de-duplicated subset of the rows.
type Tables struct {
	RestaurantTypes []string
	Grades          []string
	InspectionTypes []string

	Restaurants []etl.Row // one per restaurant code
	Contacts    []etl.Row // one per restaurant code
	Inspections []etl.Row // one per (restaurant code, inspection date)
	Violations  []etl.Row // every row with a violation code
}

// InspectionConflictError reports two rows that describe different
// inspections of one restaurant on the same date. Violations on either row
// could not be attributed to a single inspection.
type InspectionConflictError struct {
	RestaurantCode string
	Date           string     // yyyy-mm-dd
	FirstRow       int        // 1-based
	Row            int        // 1-based
	Column         etl.Column // first field that differs
}

func (e *InspectionConflictError) Error() string {
	return fmt.Sprintf("row %d: restaurant %s already has an inspection on %s at row %d with a different %s",
		e.Row, e.RestaurantCode, e.Date, e.FirstRow, e.Column)
}

func (e *InspectionConflictError) Unwrap() error { return etl.ErrAmbiguous }

// inspectionColumns are the fields every row of one inspection must repeat.
var inspectionColumns = []etl.Column{
	etl.ColInspectionType,
	etl.ColScore,
	etl.ColGrade,
	etl.ColGradeDate,
}

// Split derives stage inputs from rows, keeping first-seen order.
//
// Reference labels are de-duplicated by slug so variant spellings of one
// label produce a single entity. Rows without an inspection date are
// restaurants that have not been inspected yet and contribute no inspection.
// Rows sharing (code, date) are one inspection only if their inspection
// fields agree; otherwise Split fails with *InspectionConflictError.
func Split(rows []etl.Row) (Tables, error) {
	var t Tables

	types := newLabelSet()
	grades := newLabelSet()
	inspectionTypes := newLabelSet()
	restaurants := make(map[string]struct{})
	inspections := make(map[[2]string]int) // key -> index into rows

	for i, row := range rows {
		code := row.Get(etl.ColRestaurantCode)

		types.add(row.Get(etl.ColRestaurantType))
		grades.add(row.Get(etl.ColGrade))

		if _, seen := restaurants[code]; !seen {
			restaurants[code] = struct{}{}
			t.Restaurants = append(t.Restaurants, row)
			t.Contacts = append(t.Contacts, row)
		}

		if !row.Has(etl.ColInspectionDate) {
			continue
		}

		inspectionTypes.add(row.Get(etl.ColInspectionType))

		key := [2]string{code, dateKey(row.Get(etl.ColInspectionDate))}
		if first, seen := inspections[key]; !seen {
			inspections[key] = i
			t.Inspections = append(t.Inspections, row)
		} else if col, ok := sameInspection(rows[first], row); !ok {
			return Tables{}, &InspectionConflictError{
				RestaurantCode: code,
				Date:           key[1],
				FirstRow:       first + 1,
				Row:            i + 1,
				Column:         col,
			}
		}

		if row.Has(etl.ColViolationCode) {
			t.Violations = append(t.Violations, row)
		}
	}

	t.RestaurantTypes = types.labels
	t.Grades = grades.labels
	t.InspectionTypes = inspectionTypes.labels
	return t, nil
}

// sameInspection reports whether a and b carry the same inspection fields,
// comparing labels by slug and dates by value. On a mismatch it returns the
// first differing column.
func sameInspection(a, b etl.Row) (etl.Column, bool) {
	for _, col := range inspectionColumns {
		x, y := a.Get(col), b.Get(col)
		switch col {
		case etl.ColInspectionType, etl.ColGrade:
			x, y = etl.Normalize(x), etl.Normalize(y)
		case etl.ColGradeDate:
			x, y = dateKey(x), dateKey(y)
		}
		if x != y {
			return col, false
		}
	}
	return "", true
}

// dateKey canonicalizes a date cell so "1/5/2018" and "01/05/2018" collide.
// Unparseable text is kept as is; the inspection stage reports it.
func dateKey(s string) string {
	d, err := etl.ParseDate(etl.ColInspectionDate, s)
	if err != nil || !d.Valid {
		return s
	}
	return d.Time.Format("2006-01-02")
}

// labelSet collects non-blank labels, one per slug.
type labelSet struct {
	seen   map[string]struct{}
	labels []string
}

func newLabelSet() *labelSet {
	return &labelSet{seen: make(map[string]struct{})}
}

func (s *labelSet) add(label string) {
	if label == "" {
		return
	}
	slug := etl.Normalize(label)
	if _, ok := s.seen[slug]; ok {
		return
	}
	s.seen[slug] = struct{}{}
	s.labels = append(s.labels, label)
}
