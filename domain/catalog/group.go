// Package catalog models the winery product list grouped by category.
package catalog

import (
	"winery/internal/errors"
)

// GroupByCategory groups the rows of table by the value of column.
// The category column is dropped from each grouped product. A table
// without column in its header fails with a MISSING_COLUMN error, even
// when it has no data rows.
func GroupByCategory(table *Table, column string) (*Catalog, error) {
	if table == nil {
		return nil, errors.InvalidArgument("table is nil")
	}
	if !table.HasColumn(column) {
		return nil, errors.MissingColumn(column)
	}

	columns := make([]string, 0, len(table.Headers)-1)
	for _, h := range table.Headers {
		if h != column {
			columns = append(columns, h)
		}
	}

	cat := NewCatalog(columns)
	for _, row := range table.Rows {
		cat.Add(row[column], row.Without(column))
	}
	return cat, nil
}
