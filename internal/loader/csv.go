package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// CSVOptions controls how CSV records become tensor values.
type CSVOptions struct {
	Header bool   // First record holds column names
	Target string // Target column name for ReadCSV; requires Header
	Comma  rune   // Field delimiter (default ',')
}

// ReadCSVTable reads every record of r into a Table.
//
// Cells are converted as follows: numbers become number leaves, "true" and
// "false" become booleans, empty cells become null, anything else a string.
// Records with a field count different from the first are rejected.
func ReadCSVTable(r io.Reader, opts CSVOptions) (*Table, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	var columns []string
	if opts.Header {
		if len(records) == 0 {
			return nil, fmt.Errorf("CSV file is empty or missing header")
		}
		columns = records[0]
		records = records[1:]
	}

	rows := make([][]tensor.Value, len(records))
	for i, record := range records {
		row := make([]tensor.Value, len(record))
		for j, cell := range record {
			row[j] = parseCell(cell)
		}
		rows[i] = row
	}
	return newTable(columns, rows), nil
}

// ReadCSV reads r and splits it into features and the opts.Target column.
func ReadCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	if opts.Target != "" && !opts.Header {
		return nil, fmt.Errorf("target column %q requires a header row", opts.Target)
	}
	table, err := ReadCSVTable(r, opts)
	if err != nil {
		return nil, err
	}
	return table.Split(opts.Target)
}

func parseCell(cell string) tensor.Value {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return tensor.Null()
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return tensor.Num(f)
	}
	switch strings.ToLower(cell) {
	case "true":
		return tensor.Boolean(true)
	case "false":
		return tensor.Boolean(false)
	}
	return tensor.Str(cell)
}
