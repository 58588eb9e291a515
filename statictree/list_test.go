package statictree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-treegrid"
)

func TestList(t *testing.T) {
	l := NewList(3,
		[]string{"a", "b", "c"},
		[]string{"d"},
		[]string{"e", "f", "g", "ignored"},
	)
	require.Equal(t, 3, l.VisibleItemCount())
	require.Equal(t, 3, treegrid.BranchColumnCount(l))

	tests := []struct {
		row  int
		want int
	}{
		{row: 0, want: 3},
		{row: 1, want: 1},
		{row: 2, want: 3},
		{row: 3, want: 0},
		{row: -1, want: 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, l.JaggedColumnCount(tt.row), "row %d", tt.row)
	}

	require.Equal(t, "b", l.CellText(0, 1))
	require.Equal(t, "", l.CellText(1, 1), "jagged cell")
	require.Equal(t, "", l.CellText(5, 0))
	require.Equal(t, 1, NewList(0).ColumnCount())
}

func TestList_Expand(t *testing.T) {
	l := NewList(1, []string{"a"}, []string{"b"})
	require.Nil(t, l.ExpandedBranch(0))

	child := NewList(1, []string{"c"})
	require.Same(t, l, l.Expand(1, child))
	require.Same(t, child, l.ExpandedBranch(1))

	l.Expand(1, nil)
	require.Nil(t, l.ExpandedBranch(1))
	require.True(t, l.ExpandedBranch(1) == nil, "untyped nil")
}
