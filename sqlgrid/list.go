package sqlgrid

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/domonda/go-treegrid/statictree"
)

// ScanRowsAsList scans all rows into a statictree.List
// with one list column per result column
// and returns the result column names as titles.
//
// Values are formatted as text, NULL values are empty strings.
// Trailing NULL columns of a row make it a jagged row of the list.
// rows is closed before returning.
func ScanRowsAsList(ctx context.Context, rows Rows) (list *statictree.List, titles []string, err error) {
	defer rows.Close()

	titles, err = rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	list = statictree.NewList(len(titles))
	for rows.Next() {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		values := make([]any, len(titles))
		scanners := make([]any, len(titles))
		for i := range scanners {
			scanners[i] = valueScanner{&values[i]}
		}
		err = rows.Scan(scanners...)
		if err != nil {
			return nil, nil, err
		}
		n := len(values)
		for n > 0 && values[n-1] == nil {
			n--
		}
		row := make([]string, n)
		for i := range row {
			row[i] = formatValue(values[i])
		}
		list.Rows = append(list.Rows, row)
	}
	err = rows.Err()
	if err != nil {
		return nil, nil, err
	}
	return list, titles, nil
}

var _ sql.Scanner = new(valueScanner)

type valueScanner struct {
	dest *any
}

func (s valueScanner) Scan(src any) error {
	if b, ok := src.([]byte); ok {
		// Drivers may reuse the buffer
		src = string(b)
	}
	*s.dest = src
	return nil
}

func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	}
	return fmt.Sprint(val)
}
