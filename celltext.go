package treegrid

import "context"

// CellTextFunc returns the text of a cell found by a column enumeration.
type CellTextFunc func(item ColumnItem) string

// BranchCellText returns the CellText of the item's branch
// if it implements TextBranch, else an empty string.
func BranchCellText(item ColumnItem) string {
	if b, ok := item.Branch.(TextBranch); ok {
		return b.CellText(item.RowInBranch, item.ColumnInBranch)
	}
	return ""
}

// ViewStrings returns the texts of all rows of source
// for the visible columns of permutation in display order.
// A nil permutation shows all columns in native order.
//
// Every display column is read with one ColumnItemEnumerator
// using the passed options, cells the enumeration skips are empty strings.
func ViewStrings(ctx context.Context, source SectionSource, permutation *ColumnPermutation, options EnumerateOption, cellText CellTextFunc) ([][]string, error) {
	if permutation == nil {
		var err error
		permutation, err = NewIdentityColumnPermutation(source.ColumnCount(), false)
		if err != nil {
			return nil, err
		}
	}
	if cellText == nil {
		cellText = BranchCellText
	}
	numCols := permutation.VisibleColumnCount()
	rows := make([][]string, source.VisibleItemCount())
	for row := range rows {
		rows[row] = make([]string, numCols)
	}
	if len(rows) == 0 {
		return rows, nil
	}
	for col := range numCols {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		enumerator, err := NewColumnItemEnumerator(source, col, permutation, options, 0, NullIndex)
		if err != nil {
			return nil, err
		}
		for item := range enumerator.Items() {
			rows[item.RowInTree][col] = cellText(item)
		}
	}
	return rows, nil
}
