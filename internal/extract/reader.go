package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/inspections/internal/etl"
)

// MaxHeaderSearchRows is how many leading records are scanned for the header.
var MaxHeaderSearchRows = 20

var (
	// ErrMissingColumns is returned when no header row carries every column.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrInvalidCSV is returned when the file cannot be parsed as CSV.
	ErrInvalidCSV = errors.New("invalid csv")
)

// MissingColumnsError lists the columns absent from the best header candidate.
type MissingColumnsError struct {
	Columns []etl.Column
}

func (e *MissingColumnsError) Error() string {
	names := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		names[i] = string(c)
	}
	return fmt.Sprintf("%s: %s", ErrMissingColumns, strings.Join(names, ", "))
}

func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }

// headerIndex maps each column to its position in a record.
type headerIndex map[etl.Column]int

// ReadRows parses a CSV export. The header may sit below title rows; column
// names match case-insensitively. Blank records are skipped. Extra columns
// are ignored.
func ReadRows(r io.Reader) ([]etl.Row, error) {
	cr := csv.NewReader(NewDecodingReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := findHeader(cr)
	if err != nil {
		return nil, err
	}

	var rows []etl.Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
		if isBlank(rec) {
			continue
		}
		rows = append(rows, header.row(rec))
	}

	return rows, nil
}

// findHeader consumes records until one carries every column.
func findHeader(cr *csv.Reader) (headerIndex, error) {
	missing := etl.Columns

	for i := 0; i < MaxHeaderSearchRows; i++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}

		idx, miss := matchHeader(rec)
		if len(miss) == 0 {
			return idx, nil
		}
		if len(miss) < len(missing) {
			missing = miss
		}
	}

	return nil, &MissingColumnsError{Columns: missing}
}

// matchHeader resolves every known column against a candidate header record.
func matchHeader(rec []string) (headerIndex, []etl.Column) {
	positions := make(map[string]int, len(rec))
	for i, h := range rec {
		key := cleanHeader(h)
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}

	idx := make(headerIndex, len(etl.Columns))
	var missing []etl.Column
	for _, col := range etl.Columns {
		pos, ok := positions[strings.ToLower(string(col))]
		if !ok {
			missing = append(missing, col)
			continue
		}
		idx[col] = pos
	}
	return idx, missing
}

// row builds an etl.Row from a record. Short records leave trailing
// columns blank.
func (h headerIndex) row(rec []string) etl.Row {
	row := make(etl.Row, len(h))
	for col, pos := range h {
		if pos < len(rec) {
			row[col] = CleanCell(rec[pos])
		} else {
			row[col] = ""
		}
	}
	return row
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
