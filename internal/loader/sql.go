package loader

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// OpenSQLite opens a SQLite database with the pure-Go modernc driver.
// Use ":memory:" for a private in-memory database.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// QueryTable runs query and returns the result set as a Table, one record
// per row. Integer and real columns become numbers, text becomes strings,
// NULL becomes null.
func QueryTable(ctx context.Context, db *sql.DB, query string, args ...any) (*Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var records [][]tensor.Value
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(records), err)
		}

		record := make([]tensor.Value, len(columns))
		for i, cell := range raw {
			v, err := sqlCell(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", len(records), columns[i], err)
			}
			record[i] = v
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return newTable(columns, records), nil
}

// QueryDataset runs query and splits the target column from the features.
func QueryDataset(ctx context.Context, db *sql.DB, target, query string, args ...any) (*Dataset, error) {
	table, err := QueryTable(ctx, db, query, args...)
	if err != nil {
		return nil, err
	}
	return table.Split(target)
}

func sqlCell(cell any) (tensor.Value, error) {
	switch c := cell.(type) {
	case []byte:
		if f, err := strconv.ParseFloat(string(c), 64); err == nil {
			return tensor.Num(f), nil
		}
		return tensor.Str(string(c)), nil
	case time.Time:
		return tensor.Str(c.Format(time.RFC3339)), nil
	default:
		return tensor.FromAny(c)
	}
}
