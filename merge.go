package treegrid

import "context"

// ExpansionSource is a SectionSource that can resolve
// the blank span of a cell.
type ExpansionSource interface {
	SectionSource

	// BlankExpansion returns the span of cells sharing one anchor cell
	// with the cell at row and displayColumn.
	BlankExpansion(row, displayColumn int, permutation *ColumnPermutation) (BlankExpansion, error)
}

// MergedCell is a rectangle of display cells shown as one cell.
// Row and Column are its top left cell.
// AnchorRow and AnchorColumn name the cell with data inside of it,
// or are NullIndex if the rectangle only holds blanks.
type MergedCell struct {
	Row          int
	Column       int
	RowSpan      int
	ColumnSpan   int
	AnchorRow    int
	AnchorColumn int
}

// Contains returns true if the cell at row and column
// lies within the merged cell.
func (m MergedCell) Contains(row, column int) bool {
	return row >= m.Row && row < m.Row+m.RowSpan &&
		column >= m.Column && column < m.Column+m.ColumnSpan
}

// MergeCells covers all rows and visible columns of source
// with non overlapping merged cells built from the blank expansions
// of their top left cells.
// The cells are returned ordered by row and then column.
// A nil permutation shows all columns in native order.
func MergeCells(ctx context.Context, source ExpansionSource, permutation *ColumnPermutation) ([]MergedCell, error) {
	if permutation == nil {
		var err error
		permutation, err = NewIdentityColumnPermutation(source.ColumnCount(), false)
		if err != nil {
			return nil, err
		}
	}
	var (
		numRows = source.VisibleItemCount()
		numCols = permutation.VisibleColumnCount()
		covered = newCoverage(numRows, numCols)
		cells   []MergedCell
	)
	for row := range numRows {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		for col := range numCols {
			if covered.at(row, col) {
				continue
			}
			exp, err := source.BlankExpansion(row, col, permutation)
			if err != nil {
				return nil, err
			}
			cell := MergedCell{
				Row:          row,
				Column:       col,
				AnchorRow:    NullIndex,
				AnchorColumn: NullIndex,
			}
			cell.RowSpan, cell.ColumnSpan = covered.span(exp, row, col)
			if exp.AnchorRow != NullIndex && exp.AnchorColumn != NullIndex && cell.Contains(exp.AnchorRow, exp.AnchorColumn) {
				cell.AnchorRow = exp.AnchorRow
				cell.AnchorColumn = exp.AnchorColumn
			}
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

// coverage marks the cells already taken by a merged cell.
type coverage struct {
	cells   []bool
	numCols int
}

func newCoverage(numRows, numCols int) *coverage {
	return &coverage{cells: make([]bool, numRows*numCols), numCols: numCols}
}

func (c *coverage) at(row, col int) bool { return c.cells[row*c.numCols+col] }

// span returns the rows and columns of exp from row and col on
// that are not covered yet and marks them as covered.
func (c *coverage) span(exp BlankExpansion, row, col int) (rowSpan, colSpan int) {
	bottom := row
	if exp.BottomRow != NullIndex {
		bottom = max(row, min(exp.BottomRow, len(c.cells)/c.numCols-1))
	}
	right := max(col, min(exp.RightColumn, c.numCols-1))

	colSpan = 1
	for col+colSpan <= right && !c.at(row, col+colSpan) {
		colSpan++
	}
	rowSpan = 1
rows:
	for row+rowSpan <= bottom {
		for x := col; x < col+colSpan; x++ {
			if c.at(row+rowSpan, x) {
				break rows
			}
		}
		rowSpan++
	}

	for y := row; y < row+rowSpan; y++ {
		for x := col; x < col+colSpan; x++ {
			c.cells[y*c.numCols+x] = true
		}
	}
	return rowSpan, colSpan
}
