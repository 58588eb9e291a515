package treegrid

// Section is a contiguous run of rows of one branch at one column,
// followed by the blank cells attached to the last row of the run.
//
// A section starting at absolute row s covers the real rows
// s through s+LastRelativeRow-FirstRelativeRow, followed by
// TrailingBlanks blank rows.
//
// A blank-only section has LastRelativeRow == FirstRelativeRow-1.
// Its Branch and LastRelativeRow then name the anchor cell of the blanks,
// a nil Branch means the blanks have no anchor in the column.
type Section struct {
	Branch           Branch
	FirstRelativeRow int
	LastRelativeRow  int
	RelativeColumn   int
	Level            int
	TrailingBlanks   int
	SimpleCell       bool

	// NextStartRow is the absolute row following the section,
	// or NullIndex if the section ends the row space.
	NextStartRow int
}

// RowCount returns the number of real rows of the section.
func (s *Section) RowCount() int {
	return s.LastRelativeRow - s.FirstRelativeRow + 1
}

// IsBlankOnly returns true if the section has no real rows.
func (s *Section) IsBlankOnly() bool {
	return s.LastRelativeRow < s.FirstRelativeRow
}

// SectionSource is implemented by the tree layer
// to feed a ColumnItemEnumerator with the sections of a column.
type SectionSource interface {
	// VisibleItemCount returns the number of rows of the tree.
	VisibleItemCount() int

	// ColumnCount returns the number of native columns of the tree.
	ColumnCount() int

	// NextSection returns the section of nativeColumn
	// starting at the absolute row startRow.
	// If startRow lies inside of a run or its blanks
	// the returned section covers only the part from startRow on.
	NextSection(startRow, nativeColumn int) Section
}
