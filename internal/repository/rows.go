package repository

import (
	"github.com/jackc/pgx/v5"

	"email-inbox-api/internal/model"
)

// Row is one table row keyed by column name. The schema is externally owned,
// so rows are materialized generically instead of scanned into structs.
type Row = map[string]any

func rowToMap(rows pgx.Rows) (Row, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, err
	}

	fields := rows.FieldDescriptions()
	row := make(Row, len(fields))
	for i, fd := range fields {
		row[fd.Name] = values[i]
	}
	return row, nil
}

func collectRows(rows pgx.Rows) ([]Row, error) {
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		row, err := rowToMap(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func collectOneRow(rows pgx.Rows) (Row, error) {
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, model.ErrNotFound
	}
	return rowToMap(rows)
}
