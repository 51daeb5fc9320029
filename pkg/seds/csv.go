package seds

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrNoUsableHeader is returned when the file's header row does not carry the
// year, state, MSN and value columns under any known alias.
var ErrNoUsableHeader = errors.New("seds: header is missing required columns")

// ParseCSV reads a raw SEDS export and returns the normalized records.
// Malformed data rows are dropped silently; a missing or unusable header is
// an error because it means the whole file cannot be trusted.
func ParseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoUsableHeader
	}
	if err != nil {
		return nil, fmt.Errorf("seds: reading header: %w", err)
	}

	cols := resolveColumns(header)
	if !cols.usable() {
		return nil, ErrNoUsableHeader
	}

	records := make([]Record, 0, 1024)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken row (bad quoting) is dropped like any
			// other malformed row; the parse error does not poison the file.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("seds: reading rows: %w", err)
		}
		if rec, ok := cols.normalize(row); ok {
			records = append(records, rec)
		}
	}

	return records, nil
}
