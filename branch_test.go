package treegrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testColumnsBranch struct {
	testBranch
	columns int
	jagged  []int
}

func (b *testColumnsBranch) ColumnCount() int { return b.columns }

func (b *testColumnsBranch) JaggedColumnCount(row int) int { return b.jagged[row] }

func TestBranchColumnCount(t *testing.T) {
	require.Equal(t, 1, BranchColumnCount(&testBranch{count: 3}))
	require.Equal(t, 4, BranchColumnCount(&testColumnsBranch{columns: 4}))
	require.Equal(t, 1, BranchColumnCount(&testColumnsBranch{columns: 0}), "at least one column")
}

func TestBranchJaggedColumnCount(t *testing.T) {
	b := &testColumnsBranch{columns: 3, jagged: []int{3, 1, 0, 5}}
	require.Equal(t, 3, BranchJaggedColumnCount(b, 0))
	require.Equal(t, 1, BranchJaggedColumnCount(b, 1))
	require.Equal(t, 1, BranchJaggedColumnCount(b, 2), "first column always carries data")
	require.Equal(t, 3, BranchJaggedColumnCount(b, 3), "clamped to column count")
	require.Equal(t, 1, BranchJaggedColumnCount(&testBranch{count: 1}, 0))
}

func TestBlankExpansion(t *testing.T) {
	exp := BlankExpansion{TopRow: 4, BottomRow: 7, LeftColumn: 1, RightColumn: 2, AnchorRow: 4, AnchorColumn: 1}
	require.False(t, exp.IsBlankRow())
	require.Equal(t, 2, exp.Width())
	require.Equal(t, 4, exp.Height())
	require.True(t, exp.Contains(4, 1))
	require.True(t, exp.Contains(7, 2))
	require.False(t, exp.Contains(8, 1))
	require.False(t, exp.Contains(5, 0))
	require.Equal(t, "rows [4..7] columns [1..2] anchor (4, 1)", exp.String())

	unresolved := BlankExpansion{TopRow: NullIndex, BottomRow: NullIndex, LeftColumn: 0, RightColumn: 3, AnchorRow: NullIndex, AnchorColumn: NullIndex}
	require.True(t, unresolved.IsBlankRow())
	require.Zero(t, unresolved.Height())
	require.True(t, unresolved.Contains(1000, 3))
	require.False(t, unresolved.Contains(0, 4))
}
