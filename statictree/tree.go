// Package statictree implements an in-memory tree layer
// for the treegrid address translation engine.
//
// A Tree takes a snapshot of the expanded structure of its root branch
// and serves the column sections a treegrid.ColumnItemEnumerator walks.
// It is meant for trees that fit comfortably in memory:
// one row table for the whole tree and one segment table per enumerated
// column are kept until the next Refresh.
package statictree

import (
	"errors"
	"fmt"
	"sort"

	"github.com/domonda/go-treegrid"
)

var _ treegrid.ExpansionSource = new(Tree)

var (
	// ErrNilRoot is returned for a Tree without root branch.
	ErrNilRoot = errors.New("nil root branch")

	// ErrRecursiveBranch is returned when a branch is expanded
	// within its own subtree.
	ErrRecursiveBranch = errors.New("branch expanded within its own subtree")
)

// Item identifies the branch row shown at an absolute row of a Tree.
type Item struct {
	Branch treegrid.Branch
	Row    int
	Level  int
}

// Tree lays out a root branch and its expanded child branches
// as one flat list of rows.
//
// The rows of an expanded child branch follow directly below
// the row it was expanded from. A cell is blank if its column lies past
// the jagged column count of its row. Blank cells in columns the branch
// does not have at all are attached to the cell of the parent row above,
// blank cells of jagged rows are attached to the last cell of their row.
//
// Changing the branches requires a call to Refresh,
// which invalidates all enumerators created before.
type Tree struct {
	root        treegrid.Branch
	columnCount int
	rows        []rowRef
	layouts     [][]segment
	identity    *treegrid.ColumnPermutation
}

type node struct {
	branch    treegrid.Branch
	level     int
	columns   int
	parent    *node
	parentRow int
	parentAbs int
}

type rowRef struct {
	node *node
	row  int
}

// New returns a Tree showing root and its expanded child branches.
// The column count of the tree is the largest column count of its branches.
func New(root treegrid.Branch) (*Tree, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	t := &Tree{root: root}
	err := t.Refresh()
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Refresh re-reads the expanded structure and the sizes of all branches.
func (t *Tree) Refresh() error {
	t.rows = t.rows[:0]
	t.columnCount = 0
	t.layouts = nil
	t.identity = nil

	var walk func(n *node) error
	walk = func(n *node) error {
		t.columnCount = max(t.columnCount, n.columns)
		expander, _ := n.branch.(Expander)
		for row, count := 0, n.branch.VisibleItemCount(); row < count; row++ {
			abs := len(t.rows)
			t.rows = append(t.rows, rowRef{node: n, row: row})
			if expander == nil {
				continue
			}
			child := expander.ExpandedBranch(row)
			if child == nil {
				continue
			}
			for a := n; a != nil; a = a.parent {
				if a.branch == child {
					return fmt.Errorf("row %d at level %d: %w", row, n.level, ErrRecursiveBranch)
				}
			}
			err := walk(&node{
				branch:    child,
				level:     n.level + 1,
				columns:   treegrid.BranchColumnCount(child),
				parent:    n,
				parentRow: row,
				parentAbs: abs,
			})
			if err != nil {
				return err
			}
		}
		return nil
	}
	err := walk(&node{branch: t.root, columns: treegrid.BranchColumnCount(t.root)})
	if err != nil {
		t.rows = nil
		return err
	}
	t.layouts = make([][]segment, t.columnCount)
	return nil
}

// Root returns the root branch.
func (t *Tree) Root() treegrid.Branch { return t.root }

// VisibleItemCount returns the number of rows of the tree.
func (t *Tree) VisibleItemCount() int { return len(t.rows) }

// ColumnCount returns the number of native columns of the tree.
func (t *Tree) ColumnCount() int { return t.columnCount }

// ItemAt returns the branch row shown at the absolute row.
func (t *Tree) ItemAt(row int) (Item, error) {
	if row < 0 || row >= len(t.rows) {
		return Item{}, fmt.Errorf("row %d not in [0..%d): %w", row, len(t.rows), treegrid.ErrRowOutOfRange)
	}
	ref := t.rows[row]
	return Item{Branch: ref.node.branch, Row: ref.row, Level: ref.node.level}, nil
}

// NextSection implements treegrid.SectionSource.
// It panics if startRow or nativeColumn are out of range.
func (t *Tree) NextSection(startRow, nativeColumn int) treegrid.Section {
	if startRow < 0 || startRow >= len(t.rows) {
		panic(fmt.Sprintf("statictree: section start row %d not in [0..%d)", startRow, len(t.rows)))
	}
	seg, offset := t.segmentAt(startRow, nativeColumn)
	s := treegrid.Section{
		RelativeColumn: nativeColumn,
		// Only the first column holds expandable items
		SimpleCell:   nativeColumn > 0,
		NextStartRow: seg.end(),
	}
	if s.NextStartRow >= len(t.rows) {
		s.NextStartRow = treegrid.NullIndex
	}
	if seg.node != nil {
		s.Branch = seg.node.branch
		s.Level = seg.node.level
	}
	if realRows := seg.realRows(); offset < realRows {
		s.FirstRelativeRow = seg.first + offset
		s.LastRelativeRow = seg.last
		s.TrailingBlanks = seg.blanks
	} else {
		s.FirstRelativeRow = seg.last + 1
		s.LastRelativeRow = seg.last
		s.TrailingBlanks = seg.blanks - (offset - realRows)
	}
	return s
}

// segmentAt returns the segment of nativeColumn containing row
// and the offset of row within it.
func (t *Tree) segmentAt(row, nativeColumn int) (segment, int) {
	layout := t.layout(nativeColumn)
	i := sort.Search(len(layout), func(i int) bool { return layout[i].start > row }) - 1
	return layout[i], row - layout[i].start
}

// EnumerateColumnItems returns an enumerator over displayColumn
// for the rows startRow through endRow,
// see treegrid.NewColumnItemEnumerator.
func (t *Tree) EnumerateColumnItems(displayColumn int, permutation *treegrid.ColumnPermutation, options treegrid.EnumerateOption, startRow, endRow int) (*treegrid.ColumnItemEnumerator, error) {
	return treegrid.NewColumnItemEnumerator(t, displayColumn, permutation, options, startRow, endRow)
}

// EnumerateFilteredColumnItems returns an enumerator over displayColumn
// restricted to the filter rows,
// see treegrid.NewFilteredColumnItemEnumerator.
func (t *Tree) EnumerateFilteredColumnItems(displayColumn int, permutation *treegrid.ColumnPermutation, options treegrid.EnumerateOption, filter []int) (*treegrid.ColumnItemEnumerator, error) {
	return treegrid.NewFilteredColumnItemEnumerator(t, displayColumn, permutation, options, filter)
}

// BlankExpansion returns the span of cells sharing one anchor cell
// with the cell at row and displayColumn.
//
// With a nil permutation displayColumn is a native column
// and the returned columns are native columns.
//
// A cell with data spans its own row, the blank rows attached below it
// and the blank columns attached to it in its row.
// A blank cell in a column its branch does not have spans the blank rows
// attached to the parent cell above it.
// Any other blank cell spans the columns of its row
// attached to the same cell with data.
func (t *Tree) BlankExpansion(row, displayColumn int, permutation *treegrid.ColumnPermutation) (treegrid.BlankExpansion, error) {
	if row < 0 || row >= len(t.rows) {
		return treegrid.BlankExpansion{}, fmt.Errorf("row %d not in [0..%d): %w", row, len(t.rows), treegrid.ErrRowOutOfRange)
	}
	if permutation == nil {
		if t.identity == nil {
			var err error
			t.identity, err = treegrid.NewIdentityColumnPermutation(t.columnCount, false)
			if err != nil {
				return treegrid.BlankExpansion{}, err
			}
		}
		permutation = t.identity
	} else if permutation.FullColumnCount() != t.columnCount {
		return treegrid.BlankExpansion{}, fmt.Errorf("permutation of %d columns for %d tree columns: %w", permutation.FullColumnCount(), t.columnCount, treegrid.ErrPermutationMismatch)
	}
	nativeColumn, err := permutation.GetNativeColumn(displayColumn)
	if err != nil {
		return treegrid.BlankExpansion{}, err
	}

	ref := t.rows[row]
	lastNativeNonBlankColumn := treegrid.BranchJaggedColumnCount(ref.node.branch, ref.row) - 1
	seg, offset := t.segmentAt(row, nativeColumn)
	realRows := seg.realRows()

	if offset >= realRows && seg.node != nil && nativeColumn >= ref.node.columns {
		exp := treegrid.BlankExpansion{
			TopRow:       seg.start + realRows,
			BottomRow:    seg.end() - 1,
			LeftColumn:   displayColumn,
			RightColumn:  displayColumn,
			AnchorRow:    seg.anchorRow,
			AnchorColumn: displayColumn,
		}
		if realRows > 0 {
			// Anchor directly above the blanks
			exp.TopRow = seg.anchorRow
		}
		return exp, nil
	}

	exp, err := permutation.GetColumnExpansion(displayColumn, lastNativeNonBlankColumn)
	if err != nil {
		return treegrid.BlankExpansion{}, err
	}
	if exp.AnchorColumn != treegrid.NullIndex && ref.node.columns < t.columnCount {
		exp = branchColumnsOnly(permutation, exp, displayColumn, ref.node.columns)
	}
	exp.TopRow = row
	exp.BottomRow = row
	exp.AnchorRow = row
	switch {
	case exp.AnchorColumn == treegrid.NullIndex:
		exp.AnchorRow = treegrid.NullIndex
	case offset == realRows-1:
		exp.BottomRow = seg.end() - 1
	}
	return exp, nil
}

// branchColumnsOnly limits exp to the display columns around its anchor
// that exist in a branch of branchColumns columns.
// The blanks of the other columns are attached to a parent row.
// A display column cut off from its anchor that way
// is returned as a single cell without anchor.
func branchColumnsOnly(permutation *treegrid.ColumnPermutation, exp treegrid.BlankExpansion, displayColumn, branchColumns int) treegrid.BlankExpansion {
	inBranch := func(display int) bool {
		native, _ := permutation.GetNativeColumn(display)
		return native < branchColumns
	}
	left, right := exp.AnchorColumn, exp.AnchorColumn
	for left > exp.LeftColumn && inBranch(left-1) {
		left--
	}
	for right < exp.RightColumn && inBranch(right+1) {
		right++
	}
	if displayColumn < left || displayColumn > right {
		left, right = displayColumn, displayColumn
		exp.AnchorColumn = treegrid.NullIndex
	}
	exp.LeftColumn, exp.RightColumn = left, right
	return exp
}
