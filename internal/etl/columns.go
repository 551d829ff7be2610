package etl

import "strings"

// Column names a source column. Values are the header text of the city's
// inspection results export.
type Column string

const (
	ColRestaurantCode       Column = "CAMIS"
	ColName                 Column = "DBA"
	ColBoro                 Column = "BORO"
	ColBuilding             Column = "BUILDING"
	ColStreet               Column = "STREET"
	ColZipCode              Column = "ZIPCODE"
	ColPhone                Column = "PHONE"
	ColRestaurantType       Column = "CUISINE DESCRIPTION"
	ColInspectionDate       Column = "INSPECTION DATE"
	ColViolationCode        Column = "VIOLATION CODE"
	ColViolationDescription Column = "VIOLATION DESCRIPTION"
	ColCriticalRating       Column = "CRITICAL FLAG"
	ColScore                Column = "SCORE"
	ColGrade                Column = "GRADE"
	ColGradeDate            Column = "GRADE DATE"
	ColInspectionType       Column = "INSPECTION TYPE"
)

// Columns lists every column a source file must provide.
var Columns = []Column{
	ColRestaurantCode,
	ColName,
	ColBoro,
	ColBuilding,
	ColStreet,
	ColZipCode,
	ColPhone,
	ColRestaurantType,
	ColInspectionDate,
	ColViolationCode,
	ColViolationDescription,
	ColCriticalRating,
	ColScore,
	ColGrade,
	ColGradeDate,
	ColInspectionType,
}

// Row is one source record keyed by column.
type Row map[Column]string

// Get returns the trimmed cell value. Missing and blank cells both read as "".
func (r Row) Get(col Column) string {
	return strings.TrimSpace(r[col])
}

// Has reports whether the cell holds a non-blank value.
func (r Row) Has(col Column) bool {
	return r.Get(col) != ""
}
