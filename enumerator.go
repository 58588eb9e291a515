package treegrid

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ColumnItemEnumerator is a forward-only cursor over the cells
// of one column of a tree, far cheaper than querying every row on its own.
//
// The enumerator asks its SectionSource for contiguous runs of rows
// belonging to one branch and only keeps track of the position within
// the current run, so a step costs O(1) amortized.
//
// Three kinds of walks are supported:
//   - a row window from startRow through endRow
//   - a wraparound window where endRow < startRow, enumerating
//     startRow through the last row and then row 0 through endRow
//   - a strictly ascending filter of rows, jumping directly from
//     one filter row to the next
//
// Blank cells are skipped unless EnumerateReturnBlankAnchors is set,
// in which case a blank cell attached to a cell of the column
// is reported with the branch and row of that anchor and IsBlank returns true.
//
// Lifecycle: create, call MoveNext until it returns false,
// optionally Reset to walk the same window again.
// The cursor properties are only valid after MoveNext returned true.
//
// Thread safety: not safe for concurrent use.
// Any structural change of the tree or change of the ColumnPermutation
// invalidates the enumerator, using it afterwards gives undefined results.
type ColumnItemEnumerator struct {
	source        SectionSource
	permutation   *ColumnPermutation
	options       EnumerateOption
	displayColumn int
	nativeColumn  int
	rowCount      int

	// requested window, endRow is NullIndex for through the last row
	startRow int
	endRow   int

	limitRow    int
	cycleEndRow int
	cycle       bool
	done        bool

	row             int
	nextStartRow    int
	section         Section
	relativeRow     int
	lastRelativeRow int
	trailingBlanks  int
	blank           bool

	filter       []int
	filterIndex  int
	filterStates []FilterState
}

// NewColumnItemEnumerator returns an enumerator over displayColumn
// for the rows startRow through endRow.
//
// permutation can be nil in which case displayColumn is a native column.
// endRow can be NullIndex to enumerate through the last row.
// An endRow less than startRow enumerates from startRow through the last row
// and then wraps around to enumerate row 0 through endRow.
func NewColumnItemEnumerator(source SectionSource, displayColumn int, permutation *ColumnPermutation, options EnumerateOption, startRow, endRow int) (*ColumnItemEnumerator, error) {
	e, err := newColumnItemEnumerator(source, displayColumn, permutation, options)
	if err != nil {
		return nil, err
	}
	if (startRow < 0 || startRow >= e.rowCount) && !(startRow == 0 && e.rowCount == 0) {
		return nil, fmt.Errorf("start row %d not in [0..%d): %w", startRow, e.rowCount, ErrRowOutOfRange)
	}
	if endRow != NullIndex && (endRow < 0 || endRow >= e.rowCount) {
		return nil, fmt.Errorf("end row %d not in [0..%d): %w", endRow, e.rowCount, ErrRowOutOfRange)
	}
	e.startRow = startRow
	e.endRow = endRow
	e.Reset()
	return e, nil
}

// NewFilteredColumnItemEnumerator returns an enumerator over displayColumn
// that only visits the rows listed in filter.
//
// filter must be strictly ascending and within the rows of the tree.
// Filter rows without a cell in the column are skipped,
// with EnumerateMarkExcluded they are recorded as FilterExcluded.
// The enumerator keeps its own copy of filter.
func NewFilteredColumnItemEnumerator(source SectionSource, displayColumn int, permutation *ColumnPermutation, options EnumerateOption, filter []int) (*ColumnItemEnumerator, error) {
	e, err := newColumnItemEnumerator(source, displayColumn, permutation, options)
	if err != nil {
		return nil, err
	}
	if len(filter) == 0 {
		return nil, ErrEmptyFilter
	}
	for i, row := range filter {
		if row < 0 || row >= e.rowCount {
			return nil, fmt.Errorf("filter row %d not in [0..%d): %w", row, e.rowCount, ErrRowOutOfRange)
		}
		if i > 0 && row <= filter[i-1] {
			return nil, fmt.Errorf("filter row %d after %d: %w", row, filter[i-1], ErrFilterNotAscending)
		}
	}
	e.filter = slices.Clone(filter)
	e.filterStates = make([]FilterState, len(filter))
	e.startRow = filter[0]
	e.endRow = filter[len(filter)-1]
	e.Reset()
	return e, nil
}

func newColumnItemEnumerator(source SectionSource, displayColumn int, permutation *ColumnPermutation, options EnumerateOption) (*ColumnItemEnumerator, error) {
	if source == nil {
		return nil, errors.New("nil SectionSource")
	}
	columnCount := source.ColumnCount()
	nativeColumn := displayColumn
	if permutation != nil {
		if permutation.FullColumnCount() != columnCount {
			return nil, fmt.Errorf("permutation of %d columns for %d tree columns: %w", permutation.FullColumnCount(), columnCount, ErrPermutationMismatch)
		}
		var err error
		nativeColumn, err = permutation.GetNativeColumn(displayColumn)
		if err != nil {
			return nil, err
		}
	} else if displayColumn < 0 || displayColumn >= columnCount {
		return nil, fmt.Errorf("column %d not in [0..%d): %w", displayColumn, columnCount, ErrColumnOutOfRange)
	}
	return &ColumnItemEnumerator{
		source:        source,
		permutation:   permutation,
		options:       options,
		displayColumn: displayColumn,
		nativeColumn:  nativeColumn,
		rowCount:      source.VisibleItemCount(),
	}, nil
}

// Reset positions the enumerator before the first row of its window.
// A wraparound started by a previous walk is undone,
// so the next walk returns the same rows as the first one.
// Filter states are reset to FilterUnexamined.
func (e *ColumnItemEnumerator) Reset() {
	e.clearSection()
	e.done = e.rowCount == 0
	e.cycle = false
	e.row = e.startRow - 1
	e.nextStartRow = e.startRow
	lastRow := e.rowCount - 1
	switch {
	case e.filter != nil:
		e.limitRow = e.endRow
		e.filterIndex = 0
		clear(e.filterStates)
	case e.endRow == NullIndex:
		e.limitRow = lastRow
	case e.endRow < e.startRow:
		e.limitRow = lastRow
		e.cycleEndRow = e.endRow
		e.cycle = true
	default:
		e.limitRow = e.endRow
	}
}

// MoveNext advances to the next cell of the column
// and returns false if there are no more cells.
func (e *ColumnItemEnumerator) MoveNext() bool {
	if e.filter != nil {
		return e.moveNextFiltered()
	}
	return e.moveNextUnfiltered()
}

func (e *ColumnItemEnumerator) moveNextUnfiltered() bool {
	for !e.done {
		e.blank = false
		if e.relativeRow < e.lastRelativeRow {
			e.relativeRow++
			e.row++
			if e.row > e.limitRow {
				e.endPass()
				continue
			}
			return true
		}
		if e.trailingBlanks > 0 {
			if e.options.Has(EnumerateReturnBlankAnchors) && e.section.Branch != nil {
				e.trailingBlanks--
				e.row++
				if e.row > e.limitRow {
					e.endPass()
					continue
				}
				e.blank = true
				return true
			}
			e.row += e.trailingBlanks
			e.trailingBlanks = 0
			if e.row >= e.limitRow {
				e.endPass()
				continue
			}
		}
		if e.nextStartRow == NullIndex || e.nextStartRow > e.limitRow {
			e.endPass()
			continue
		}
		e.loadSection(e.nextStartRow)
	}
	return false
}

func (e *ColumnItemEnumerator) moveNextFiltered() bool {
	for !e.done {
		if e.filterIndex >= len(e.filter) {
			e.finish()
			return false
		}
		e.blank = false
		target := e.filter[e.filterIndex]
		distance := target - e.row
		remaining := e.lastRelativeRow - e.relativeRow
		switch {
		case distance <= remaining:
			// Jump within the current run
			e.relativeRow += distance
			e.row = target
			e.setFilterState(FilterFound)
			return true

		case distance <= remaining+e.trailingBlanks:
			// Target is one of the blanks following the current run
			e.trailingBlanks -= distance - remaining
			e.relativeRow = e.lastRelativeRow
			e.row = target
			if e.options.Has(EnumerateReturnBlankAnchors) && e.section.Branch != nil {
				e.blank = true
				e.setFilterState(FilterFound)
				return true
			}
			e.setFilterState(FilterExcluded)
			continue

		default:
			e.clearSection()
			e.row = target - 1
			e.nextStartRow = target
		}

		if !e.moveNextUnfiltered() {
			return false
		}
		for e.filterIndex < len(e.filter) && e.filter[e.filterIndex] < e.row {
			// Overshot filter rows are blanks without a returned anchor
			e.setFilterState(FilterExcluded)
		}
		if e.filterIndex < len(e.filter) && e.filter[e.filterIndex] == e.row {
			e.setFilterState(FilterFound)
			return true
		}
	}
	return false
}

// setFilterState records state for the current filter row
// and advances to the next one.
func (e *ColumnItemEnumerator) setFilterState(state FilterState) {
	if state == FilterFound || e.options.Has(EnumerateMarkExcluded) {
		e.filterStates[e.filterIndex] = state
	}
	e.filterIndex++
}

func (e *ColumnItemEnumerator) loadSection(startRow int) {
	s := e.source.NextSection(startRow, e.nativeColumn)
	if s.RowCount() < 0 {
		panic(fmt.Sprintf("treegrid: section at row %d has relative rows [%d..%d]", startRow, s.FirstRelativeRow, s.LastRelativeRow))
	}
	if covered := s.RowCount() + s.TrailingBlanks; covered == 0 ||
		(s.NextStartRow != NullIndex && s.NextStartRow != startRow+covered) {
		panic(fmt.Sprintf("treegrid: section at row %d covering %d rows continues at row %d", startRow, covered, s.NextStartRow))
	}
	e.section = s
	e.row = startRow - 1
	e.relativeRow = s.FirstRelativeRow - 1
	e.lastRelativeRow = s.LastRelativeRow
	e.trailingBlanks = s.TrailingBlanks
	e.nextStartRow = s.NextStartRow
}

func (e *ColumnItemEnumerator) clearSection() {
	e.section = Section{NextStartRow: NullIndex}
	e.relativeRow = NullIndex
	e.lastRelativeRow = NullIndex
	e.trailingBlanks = 0
	e.blank = false
}

// endPass ends the current pass over the rows,
// which either wraps around or finishes the enumeration.
func (e *ColumnItemEnumerator) endPass() {
	if e.cycle {
		e.wrapAround()
		return
	}
	e.finish()
}

// wrapAround starts the second pass of a wraparound enumeration
// from row 0 through the originally requested end row.
// It happens at most once per walk.
func (e *ColumnItemEnumerator) wrapAround() {
	e.limitRow, e.cycleEndRow = e.cycleEndRow, e.limitRow
	e.cycle = false
	e.clearSection()
	e.row = -1
	e.nextStartRow = 0
}

func (e *ColumnItemEnumerator) finish() {
	e.done = true
	e.clearSection()
	for e.filterIndex < len(e.filter) {
		e.setFilterState(FilterExcluded)
	}
}

// Branch returns the branch of the current cell,
// or the branch of the anchor cell if IsBlank returns true.
func (e *ColumnItemEnumerator) Branch() Branch { return e.section.Branch }

// RowInBranch returns the row of the current cell relative to its branch.
func (e *ColumnItemEnumerator) RowInBranch() int { return e.relativeRow }

// ColumnInBranch returns the column of the current cell relative to its branch.
func (e *ColumnItemEnumerator) ColumnInBranch() int { return e.section.RelativeColumn }

// RowInTree returns the absolute row of the current cell.
func (e *ColumnItemEnumerator) RowInTree() int { return e.row }

// Level returns the tree level of the branch of the current cell.
func (e *ColumnItemEnumerator) Level() int { return e.section.Level }

// ColumnInTree returns the enumerated native column.
func (e *ColumnItemEnumerator) ColumnInTree() int { return e.nativeColumn }

// DisplayColumn returns the enumerated display column.
func (e *ColumnItemEnumerator) DisplayColumn() int { return e.displayColumn }

// SimpleCell returns true if the current cell can't be expanded.
func (e *ColumnItemEnumerator) SimpleCell() bool { return e.section.SimpleCell }

// IsBlank returns true if the current row is a blank cell
// reported with its anchor because of EnumerateReturnBlankAnchors.
func (e *ColumnItemEnumerator) IsBlank() bool { return e.blank }

// Permutation returns the borrowed permutation or nil.
func (e *ColumnItemEnumerator) Permutation() *ColumnPermutation { return e.permutation }

// Filter returns the filter rows or nil for a row window enumeration.
func (e *ColumnItemEnumerator) Filter() []int { return e.filter }

// FilterState returns what the enumeration found out
// about the filter row at index.
func (e *ColumnItemEnumerator) FilterState(index int) FilterState {
	if index < 0 || index >= len(e.filterStates) {
		return FilterUnexamined
	}
	return e.filterStates[index]
}

// ExcludedRows returns the filter rows marked as FilterExcluded.
func (e *ColumnItemEnumerator) ExcludedRows() []int {
	var rows []int
	for i, state := range e.filterStates {
		if state == FilterExcluded {
			rows = append(rows, e.filter[i])
		}
	}
	return rows
}

// ColumnItem is a snapshot of the cursor of a ColumnItemEnumerator.
type ColumnItem struct {
	Branch         Branch
	RowInBranch    int
	ColumnInBranch int
	RowInTree      int
	Level          int
	ColumnInTree   int
	DisplayColumn  int
	SimpleCell     bool
	Blank          bool
}

// Current returns a snapshot of the cursor.
func (e *ColumnItemEnumerator) Current() ColumnItem {
	return ColumnItem{
		Branch:         e.section.Branch,
		RowInBranch:    e.relativeRow,
		ColumnInBranch: e.section.RelativeColumn,
		RowInTree:      e.row,
		Level:          e.section.Level,
		ColumnInTree:   e.nativeColumn,
		DisplayColumn:  e.displayColumn,
		SimpleCell:     e.section.SimpleCell,
		Blank:          e.blank,
	}
}

// Items resets the enumerator and returns an iterator
// over snapshots of all cells of its walk.
//
// Example:
//
//	for item := range enumerator.Items() {
//	    fmt.Println(item.RowInTree, item.RowInBranch)
//	}
func (e *ColumnItemEnumerator) Items() iter.Seq[ColumnItem] {
	return func(yield func(ColumnItem) bool) {
		e.Reset()
		for e.MoveNext() {
			if !yield(e.Current()) {
				return
			}
		}
	}
}
