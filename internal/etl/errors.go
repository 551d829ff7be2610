package etl

import (
	"errors"
	"fmt"
)

var (
	// ErrLookup marks a natural key that is absent from the index built from
	// prior stages.
	ErrLookup = errors.New("lookup failed")

	// ErrParse marks a cell that does not match its expected format.
	ErrParse = errors.New("parse failed")

	// ErrAmbiguous marks a composite key that matches more than one
	// persisted inspection.
	ErrAmbiguous = errors.New("ambiguous match")

	// ErrDuplicateKey marks persisted entities that share a natural key.
	ErrDuplicateKey = errors.New("duplicate key")
)

// LookupError reports a key missing from an index.
type LookupError struct {
	Kind string // "restaurant type", "grade", ...
	Key  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *LookupError) Unwrap() error { return ErrLookup }

// ParseError reports a cell that could not be converted.
type ParseError struct {
	Column Column
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Column, e.Value)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// InspectionMatchError reports a violation whose (restaurant, date) pair does
// not resolve to exactly one inspection.
type InspectionMatchError struct {
	RestaurantCode string
	Date           string // ISO yyyy-mm-dd
	Matches        int
}

func (e *InspectionMatchError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no inspection for restaurant %q on %s", e.RestaurantCode, e.Date)
	}
	return fmt.Sprintf("%d inspections for restaurant %q on %s", e.Matches, e.RestaurantCode, e.Date)
}

func (e *InspectionMatchError) Unwrap() error {
	if e.Matches == 0 {
		return ErrLookup
	}
	return ErrAmbiguous
}

// rowError prefixes err with the 1-based row position.
func rowError(i int, err error) error {
	return fmt.Errorf("row %d: %w", i+1, err)
}
