// Package sqlgrid scans SQL query results into statictree branches.
package sqlgrid

import "database/sql"

var _ Rows = &sql.Rows{}

// Rows abstracts the methods of *sql.Rows used by this package,
// so row sets can be scanned from real databases or test doubles.
//
// Usage example:
//
//	rows, err := db.QueryContext(ctx, `select name, count from groceries`)
//	if err != nil {
//		return err
//	}
//	list, titles, err := sqlgrid.ScanRowsAsList(ctx, rows)
type Rows interface {
	Columns() ([]string, error)
	Scan(dest ...any) error
	Close() error
	Next() bool
	Err() error
}
