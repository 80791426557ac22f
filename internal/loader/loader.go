// Package loader reads the cereal CSV shipped with the project and maps
// its rows to records for the startup bulk load.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/dukaforge/pantry/pkg/types"
)

const (
	// delimiter is the cell separator used by the cereal dataset.
	delimiter = ';'

	// skipRows is the number of rows between the header and the first
	// data row (a units row and a legend row).
	skipRows = 2
)

// Load parses the CSV at path into records. Each data row is mapped by
// header name and run through the record parser, so a malformed row fails
// the whole load.
func Load(path string) ([]*types.Cereal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv %s has no header row", path)
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	data := rows[1:]
	if len(data) > skipRows {
		data = data[skipRows:]
	} else {
		data = nil
	}

	cereals := make([]*types.Cereal, 0, len(data))
	for i, row := range data {
		m := make(map[string]any, len(header))
		for j, col := range header {
			m[col] = strings.TrimSpace(row[j])
		}
		c, err := types.CerealFromMap(m)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+skipRows+2, err)
		}
		cereals = append(cereals, c)
	}
	return cereals, nil
}
