package sqlgrid

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testRows struct {
	columns []string
	rows    [][]any
	row     int
	closed  bool
	err     error
}

func (r *testRows) Columns() ([]string, error) { return r.columns, nil }

func (r *testRows) Next() bool {
	if r.row >= len(r.rows) {
		return false
	}
	r.row++
	return true
}

func (r *testRows) Scan(dest ...any) error {
	for i, d := range dest {
		err := d.(sql.Scanner).Scan(r.rows[r.row-1][i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *testRows) Close() error {
	r.closed = true
	return nil
}

func (r *testRows) Err() error { return r.err }

func TestScanRowsAsList(t *testing.T) {
	rows := &testRows{
		columns: []string{"Name", "Count", "Since"},
		rows: [][]any{
			{"Fruits", int64(3), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
			{[]byte("Vegetables"), int64(2), nil},
			{"Nuts", nil, nil},
			{"Herbs", nil, "x"},
		},
	}
	list, titles, err := ScanRowsAsList(context.Background(), rows)
	require.NoError(t, err)
	require.True(t, rows.closed)
	require.Equal(t, []string{"Name", "Count", "Since"}, titles)
	require.Equal(t, 3, list.ColumnCount())
	require.Equal(t, [][]string{
		{"Fruits", "3", "2024-05-01T00:00:00Z"},
		{"Vegetables", "2"},
		{"Nuts"},
		{"Herbs", "", "x"},
	}, list.Rows)
	require.Equal(t, 1, list.JaggedColumnCount(2))
}

func TestScanRowsAsList_Errors(t *testing.T) {
	iterErr := errors.New("connection lost")
	rows := &testRows{columns: []string{"A"}, rows: [][]any{{"a"}}, err: iterErr}
	_, _, err := ScanRowsAsList(context.Background(), rows)
	require.ErrorIs(t, err, iterErr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rows = &testRows{columns: []string{"A"}, rows: [][]any{{"a"}}}
	_, _, err = ScanRowsAsList(ctx, rows)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, rows.closed)
}
