package etl

import (
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateLayout is the only accepted date format: month/day/4-digit year.
// Leading zeros on month and day are optional.
const DateLayout = "1/2/2006"

// isoDate formats dates for composite keys and messages.
const isoDate = "2006-01-02"

// ParseDate converts a date cell. A blank cell is NULL, not an error.
func ParseDate(col Column, s string) (pgtype.Date, error) {
	if s == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return pgtype.Date{}, &ParseError{Column: col, Value: s, Err: err}
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// ParseScore converts a score cell to a nullable integer. No range checks.
func ParseScore(s string) (pgtype.Int4, error) {
	if s == "" {
		return pgtype.Int4{}, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return pgtype.Int4{}, &ParseError{Column: ColScore, Value: s, Err: err}
	}
	return pgtype.Int4{Int32: int32(n), Valid: true}, nil
}

// toText converts a cell to nullable text.
func toText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
