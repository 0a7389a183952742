package matter

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadCSV reads a source-system export into matters. Header matching is
// exact: every expected column must be present, and a missing column
// fails the load.
func ReadCSV(path string) ([]Matter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // length validated against the header below

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file, expected a header row", path)
	}

	index, err := headerIndex(records[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var matters []Matter
	for i, row := range records[1:] {
		fields := make([]string, len(csvColumns))
		for j, col := range csvColumns {
			pos := index[col]
			if pos >= len(row) {
				return nil, fmt.Errorf("%s: row %d has %d fields, column %q out of range", path, i+2, len(row), col)
			}
			fields[j] = row[pos]
		}
		matters = append(matters, fromFields(fields))
	}

	return matters, nil
}

// headerIndex maps each expected column name to its position in the
// header row.
func headerIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	index := make(map[string]int, len(csvColumns))
	for _, col := range csvColumns {
		pos, ok := positions[col]
		if !ok {
			return nil, fmt.Errorf("missing expected column %q", col)
		}
		index[col] = pos
	}

	return index, nil
}
