package treegrid

import (
	"fmt"
	"slices"
)

// ColumnPermutation maps between the native columns known to branches
// and the display columns of a view.
//
// Native columns that are not displayed are hidden and map to NullIndex.
// The number of native and visible columns is fixed at construction,
// only the display order can change via MoveVisibleColumn
// and ChangeVisibleColumnOrder.
//
// PreferLeftBlanks decides which neighbor absorbs blank cells
// lying between two cells with data. By default blank cells are
// attached to the closest data cell on their left, with PreferLeftBlanks
// they are attached to the closest data cell on their right, which is the
// natural choice for right-to-left layouts.
//
// A ColumnPermutation is owned by the view that created it.
// Enumerators and tree layers only borrow it, so changing the display
// order invalidates any ColumnItemEnumerator created with it.
//
// Example:
//
//	// 4 native columns, column 2 hidden, column 3 displayed first
//	perm, err := treegrid.NewColumnPermutation(4, []int{3, 0, 1}, false)
//	perm.GetNativeColumn(0)   // 3
//	perm.GetPermutedColumn(2) // NullIndex
//
// Thread safety: not safe for concurrent use while being modified.
type ColumnPermutation struct {
	nativeToDisplay  []int
	displayToNative  []int
	preferLeftBlanks bool
}

// NewColumnPermutation returns a ColumnPermutation over fullColumnCount
// native columns displaying visibleColumns in the passed order.
func NewColumnPermutation(fullColumnCount int, visibleColumns []int, preferLeftBlanks bool) (*ColumnPermutation, error) {
	if fullColumnCount < 1 {
		return nil, fmt.Errorf("full column count %d: %w", fullColumnCount, ErrColumnOutOfRange)
	}
	if len(visibleColumns) == 0 {
		return nil, ErrNoVisibleColumns
	}
	if len(visibleColumns) > fullColumnCount {
		return nil, fmt.Errorf("%d visible columns for %d native columns: %w", len(visibleColumns), fullColumnCount, ErrDuplicateColumn)
	}
	p := &ColumnPermutation{
		nativeToDisplay:  make([]int, fullColumnCount),
		displayToNative:  slices.Clone(visibleColumns),
		preferLeftBlanks: preferLeftBlanks,
	}
	for i := range p.nativeToDisplay {
		p.nativeToDisplay[i] = NullIndex
	}
	for display, native := range visibleColumns {
		if native < 0 || native >= fullColumnCount {
			return nil, fmt.Errorf("visible column %d not in [0..%d): %w", native, fullColumnCount, ErrColumnOutOfRange)
		}
		if p.nativeToDisplay[native] != NullIndex {
			return nil, fmt.Errorf("visible column %d: %w", native, ErrDuplicateColumn)
		}
		p.nativeToDisplay[native] = display
	}
	return p, nil
}

// NewIdentityColumnPermutation returns a ColumnPermutation
// displaying all columnCount native columns in native order.
func NewIdentityColumnPermutation(columnCount int, preferLeftBlanks bool) (*ColumnPermutation, error) {
	visible := make([]int, max(columnCount, 0))
	for i := range visible {
		visible[i] = i
	}
	return NewColumnPermutation(columnCount, visible, preferLeftBlanks)
}

// FullColumnCount returns the number of native columns.
func (p *ColumnPermutation) FullColumnCount() int { return len(p.nativeToDisplay) }

// VisibleColumnCount returns the number of display columns.
func (p *ColumnPermutation) VisibleColumnCount() int { return len(p.displayToNative) }

// PreferLeftBlanks returns true if blank cells between two cells with data
// are attached to the cell on their right.
func (p *ColumnPermutation) PreferLeftBlanks() bool { return p.preferLeftBlanks }

// VisibleColumns returns a copy of the native columns in display order.
func (p *ColumnPermutation) VisibleColumns() []int {
	return slices.Clone(p.displayToNative)
}

// GetNativeColumn returns the native column shown at displayColumn.
func (p *ColumnPermutation) GetNativeColumn(displayColumn int) (int, error) {
	if displayColumn < 0 || displayColumn >= len(p.displayToNative) {
		return NullIndex, fmt.Errorf("display column %d not in [0..%d): %w", displayColumn, len(p.displayToNative), ErrColumnOutOfRange)
	}
	return p.displayToNative[displayColumn], nil
}

// GetPermutedColumn returns the display column of nativeColumn
// or NullIndex if the native column is hidden.
func (p *ColumnPermutation) GetPermutedColumn(nativeColumn int) (int, error) {
	if nativeColumn < 0 || nativeColumn >= len(p.nativeToDisplay) {
		return NullIndex, fmt.Errorf("native column %d not in [0..%d): %w", nativeColumn, len(p.nativeToDisplay), ErrColumnOutOfRange)
	}
	return p.nativeToDisplay[nativeColumn], nil
}

// MoveVisibleColumn moves the display column at from to the position to,
// shifting the columns in between by one.
func (p *ColumnPermutation) MoveVisibleColumn(from, to int) error {
	n := len(p.displayToNative)
	if from < 0 || from >= n {
		return fmt.Errorf("move from display column %d not in [0..%d): %w", from, n, ErrColumnOutOfRange)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("move to display column %d not in [0..%d): %w", to, n, ErrColumnOutOfRange)
	}
	p.moveVisibleColumn(from, to)
	return nil
}

func (p *ColumnPermutation) moveVisibleColumn(from, to int) {
	if from == to {
		return
	}
	native := p.displayToNative[from]
	if from < to {
		copy(p.displayToNative[from:to], p.displayToNative[from+1:to+1])
		for d := from; d < to; d++ {
			p.nativeToDisplay[p.displayToNative[d]] = d
		}
	} else {
		copy(p.displayToNative[to+1:from+1], p.displayToNative[to:from])
		for d := to + 1; d <= from; d++ {
			p.nativeToDisplay[p.displayToNative[d]] = d
		}
	}
	p.displayToNative[to] = native
	p.nativeToDisplay[native] = to
}

// ChangeVisibleColumnOrder reorders the display columns from oldOrder
// to newOrder. Both are lists of the visible native columns,
// typically the order before and after a header control reordered its items.
//
// oldOrder must equal the current display order and newOrder must contain
// the same columns, otherwise an error wrapping ErrOrderMismatch
// is returned and the permutation is left unchanged.
func (p *ColumnPermutation) ChangeVisibleColumnOrder(oldOrder, newOrder []int) error {
	n := len(p.displayToNative)
	if len(oldOrder) != n || len(newOrder) != n {
		return fmt.Errorf("order lengths %d and %d for %d visible columns: %w", len(oldOrder), len(newOrder), n, ErrOrderMismatch)
	}
	if !slices.Equal(oldOrder, p.displayToNative) {
		return fmt.Errorf("old order %v differs from display order %v: %w", oldOrder, p.displayToNative, ErrOrderMismatch)
	}
	seen := make([]bool, len(p.nativeToDisplay))
	for _, native := range newOrder {
		if native < 0 || native >= len(p.nativeToDisplay) || p.nativeToDisplay[native] == NullIndex || seen[native] {
			return fmt.Errorf("new order %v is no reordering of %v: %w", newOrder, oldOrder, ErrOrderMismatch)
		}
		seen[native] = true
	}

	// Display columns [0, i) already hold newOrder[:i], the remaining
	// display columns hold the unconsumed entries of working in order.
	const consumed = NullIndex
	working := slices.Clone(oldOrder)
	j := 0
	for i, native := range newOrder {
		for working[j] == consumed {
			j++
		}
		if working[j] == native {
			j++
			continue
		}
		pos := i
		k := j
		for ; working[k] != native; k++ {
			if working[k] != consumed {
				pos++
			}
		}
		p.moveVisibleColumn(pos, i)
		working[k] = consumed
	}
	return nil
}

// GetColumnExpansion returns the span of display columns sharing one
// anchor cell with displayColumn in a row whose native columns
// up to lastNativeNonBlankColumn carry data.
//
// The row fields of the result are NullIndex,
// they have to be resolved by the tree layer.
// If no display column carries data, AnchorColumn is NullIndex
// and the span covers all display columns.
func (p *ColumnPermutation) GetColumnExpansion(displayColumn, lastNativeNonBlankColumn int) (BlankExpansion, error) {
	last := len(p.displayToNative) - 1
	if displayColumn < 0 || displayColumn > last {
		return BlankExpansion{}, fmt.Errorf("display column %d not in [0..%d): %w", displayColumn, last+1, ErrColumnOutOfRange)
	}
	exp := BlankExpansion{
		TopRow:       NullIndex,
		BottomRow:    NullIndex,
		AnchorRow:    NullIndex,
		AnchorColumn: NullIndex,
	}

	// Blanks are attached in the back direction of their anchor
	back, fwd := -1, 1
	backEdge, fwdEdge := 0, last
	if p.preferLeftBlanks {
		back, fwd = 1, -1
		backEdge, fwdEdge = last, 0
	}

	anchor := p.findDataColumn(displayColumn, back, lastNativeNonBlankColumn)
	if anchor == NullIndex {
		anchor = p.findDataColumn(displayColumn, fwd, lastNativeNonBlankColumn)
	}
	if anchor == NullIndex {
		exp.LeftColumn = 0
		exp.RightColumn = last
		return exp, nil
	}

	near := anchor
	if p.findDataColumn(anchor+back, back, lastNativeNonBlankColumn) == NullIndex {
		// Leading blanks before the first data column
		near = backEdge
	}
	far := fwdEdge
	if next := p.findDataColumn(anchor+fwd, fwd, lastNativeNonBlankColumn); next != NullIndex {
		far = next - fwd
	}
	exp.LeftColumn = min(near, far)
	exp.RightColumn = max(near, far)
	exp.AnchorColumn = anchor
	return exp, nil
}

func (p *ColumnPermutation) findDataColumn(from, step, lastNativeNonBlankColumn int) int {
	for d := from; d >= 0 && d < len(p.displayToNative); d += step {
		if p.displayToNative[d] <= lastNativeNonBlankColumn {
			return d
		}
	}
	return NullIndex
}

// Clone returns a deep copy of the permutation.
func (p *ColumnPermutation) Clone() *ColumnPermutation {
	return &ColumnPermutation{
		nativeToDisplay:  slices.Clone(p.nativeToDisplay),
		displayToNative:  slices.Clone(p.displayToNative),
		preferLeftBlanks: p.preferLeftBlanks,
	}
}

// Equal returns true if other has the same columns
// in the same display order and the same blank preference.
func (p *ColumnPermutation) Equal(other *ColumnPermutation) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.preferLeftBlanks == other.preferLeftBlanks &&
		len(p.nativeToDisplay) == len(other.nativeToDisplay) &&
		slices.Equal(p.displayToNative, other.displayToNative)
}

func (p *ColumnPermutation) String() string {
	return fmt.Sprintf("ColumnPermutation%v of %d", p.displayToNative, len(p.nativeToDisplay))
}
