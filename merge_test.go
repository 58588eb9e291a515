package treegrid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-treegrid"
	"github.com/domonda/go-treegrid/statictree"
)

func newGroceries(t *testing.T, jagged bool) *statictree.Tree {
	t.Helper()
	root := statictree.NewList(2,
		[]string{"Fruits", "3"},
		[]string{"Vegetables", "2"},
	)
	if jagged {
		root.Rows[1] = []string{"Vegetables"}
	}
	root.Expand(0, statictree.NewList(1,
		[]string{"Apple"},
		[]string{"Banana"},
		[]string{"Cherry"},
	))
	tree, err := statictree.New(root)
	require.NoError(t, err)
	return tree
}

func cell(row, col, rowSpan, colSpan, anchorRow, anchorCol int) treegrid.MergedCell {
	return treegrid.MergedCell{
		Row:          row,
		Column:       col,
		RowSpan:      rowSpan,
		ColumnSpan:   colSpan,
		AnchorRow:    anchorRow,
		AnchorColumn: anchorCol,
	}
}

func TestMergeCells(t *testing.T) {
	ctx := context.Background()
	swapped, err := treegrid.NewColumnPermutation(2, []int{1, 0}, false)
	require.NoError(t, err)

	tests := []struct {
		name        string
		jagged      bool
		permutation *treegrid.ColumnPermutation
		want        []treegrid.MergedCell
	}{
		{
			name: "blanks below parent",
			want: []treegrid.MergedCell{
				cell(0, 0, 1, 1, 0, 0),
				cell(0, 1, 4, 1, 0, 1),
				cell(1, 0, 1, 1, 1, 0),
				cell(2, 0, 1, 1, 2, 0),
				cell(3, 0, 1, 1, 3, 0),
				cell(4, 0, 1, 1, 4, 0),
				cell(4, 1, 1, 1, 4, 1),
			},
		},
		{
			name:   "jagged row",
			jagged: true,
			want: []treegrid.MergedCell{
				cell(0, 0, 1, 1, 0, 0),
				cell(0, 1, 4, 1, 0, 1),
				cell(1, 0, 1, 1, 1, 0),
				cell(2, 0, 1, 1, 2, 0),
				cell(3, 0, 1, 1, 3, 0),
				cell(4, 0, 1, 2, 4, 0),
			},
		},
		{
			name:        "permuted",
			permutation: swapped,
			want: []treegrid.MergedCell{
				cell(0, 0, 4, 1, 0, 0),
				cell(0, 1, 1, 1, 0, 1),
				cell(1, 1, 1, 1, 1, 1),
				cell(2, 1, 1, 1, 2, 1),
				cell(3, 1, 1, 1, 3, 1),
				cell(4, 0, 1, 1, 4, 0),
				cell(4, 1, 1, 1, 4, 1),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := treegrid.MergeCells(ctx, newGroceries(t, tt.jagged), tt.permutation)
			require.NoError(t, err)
			require.Equal(t, tt.want, cells)

			// Every display cell is covered exactly once
			covered := make(map[[2]int]int)
			for _, c := range cells {
				for row := c.Row; row < c.Row+c.RowSpan; row++ {
					for col := c.Column; col < c.Column+c.ColumnSpan; col++ {
						covered[[2]int{row, col}]++
					}
				}
			}
			require.Len(t, covered, 10)
			for pos, n := range covered {
				require.Equal(t, 1, n, "cell %v", pos)
			}
		})
	}
}

func TestMergedCell_Contains(t *testing.T) {
	c := cell(2, 1, 3, 2, 2, 1)
	require.True(t, c.Contains(2, 1))
	require.True(t, c.Contains(4, 2))
	require.False(t, c.Contains(5, 1))
	require.False(t, c.Contains(2, 3))
	require.False(t, c.Contains(treegrid.NullIndex, treegrid.NullIndex))
}
