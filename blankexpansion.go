package treegrid

import "fmt"

// BlankExpansion describes the rectangular span of cells
// that share one anchor cell.
//
// Rows are always native row indices. Columns are in the coordinate space
// the caller asked for: display columns if a ColumnPermutation was used,
// native columns otherwise. The two spaces must not be mixed.
//
// AnchorColumn is NullIndex only for a row without any cell carrying data.
// AnchorRow is the row of the anchor cell. It equals TopRow unless real
// cells of deeper tree levels separate the blank span from its anchor.
type BlankExpansion struct {
	TopRow       int
	BottomRow    int
	LeftColumn   int
	RightColumn  int
	AnchorRow    int
	AnchorColumn int
}

// IsBlankRow returns true if the expansion has no anchor column.
func (e BlankExpansion) IsBlankRow() bool {
	return e.AnchorColumn == NullIndex
}

// Width returns the number of columns spanned by the expansion.
func (e BlankExpansion) Width() int {
	return e.RightColumn - e.LeftColumn + 1
}

// Height returns the number of rows spanned by the expansion,
// or 0 if the rows have not been resolved.
func (e BlankExpansion) Height() int {
	if e.TopRow == NullIndex || e.BottomRow == NullIndex {
		return 0
	}
	return e.BottomRow - e.TopRow + 1
}

// Contains returns true if the cell at row and column lies within the expansion.
// Unresolved rows match any row.
func (e BlankExpansion) Contains(row, column int) bool {
	if column < e.LeftColumn || column > e.RightColumn {
		return false
	}
	if e.TopRow == NullIndex || e.BottomRow == NullIndex {
		return true
	}
	return row >= e.TopRow && row <= e.BottomRow
}

func (e BlankExpansion) String() string {
	return fmt.Sprintf(
		"rows [%d..%d] columns [%d..%d] anchor (%d, %d)",
		e.TopRow, e.BottomRow, e.LeftColumn, e.RightColumn, e.AnchorRow, e.AnchorColumn,
	)
}
