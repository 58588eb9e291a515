// Package treegrid translates between the flat row index space of a
// scrollable view and the tree of lazily queried branches behind a
// virtualized hierarchical grid.
//
// A ColumnPermutation maps display columns to the native columns known
// to branches and resolves blank cells under reordering.
// A ColumnItemEnumerator walks one column of the grid through a
// SectionSource implemented by the tree layer.
package treegrid

// NullIndex is the reserved index value for "no index",
// used for hidden columns, missing anchors and the end of the row space.
const NullIndex = -1

// Branch is a lazily queried data source for the rows
// of one level of a subtree.
type Branch interface {
	// VisibleItemCount returns the number of rows of the branch.
	VisibleItemCount() int
}

// MultiColumnBranch is implemented by branches with more than one column.
type MultiColumnBranch interface {
	Branch

	ColumnCount() int
}

// JaggedColumnBranch is implemented by multi-column branches
// where rows can have fewer columns than the branch.
// The columns of a row past its jagged column count are blank.
type JaggedColumnBranch interface {
	MultiColumnBranch

	// JaggedColumnCount returns the number of leading columns
	// of row that carry data.
	JaggedColumnCount(row int) int
}

// TextBranch is implemented by branches that can display cell text.
type TextBranch interface {
	Branch

	CellText(row, column int) string
}

// BranchColumnCount returns the column count of branch,
// which is 1 if it does not implement MultiColumnBranch.
func BranchColumnCount(branch Branch) int {
	if mc, ok := branch.(MultiColumnBranch); ok {
		return max(mc.ColumnCount(), 1)
	}
	return 1
}

// BranchJaggedColumnCount returns the number of columns
// carrying data for row of branch, clamped to [1, BranchColumnCount].
func BranchJaggedColumnCount(branch Branch, row int) int {
	count := BranchColumnCount(branch)
	if jc, ok := branch.(JaggedColumnBranch); ok {
		return min(max(jc.JaggedColumnCount(row), 1), count)
	}
	return count
}
