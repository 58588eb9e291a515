package treegrid

import "errors"

// Argument errors
var (
	// ErrColumnOutOfRange indicates a native or display column index
	// outside of the valid range of a ColumnPermutation or tree.
	ErrColumnOutOfRange = errors.New("column index out of range")

	// ErrRowOutOfRange indicates an absolute row index outside
	// of [0, VisibleItemCount).
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrDuplicateColumn indicates that a native column appears
	// more than once in a list of visible columns.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrNoVisibleColumns indicates a ColumnPermutation without visible columns.
	ErrNoVisibleColumns = errors.New("no visible columns")
)

// Column order errors
var (
	// ErrOrderMismatch is returned by ColumnPermutation.ChangeVisibleColumnOrder
	// when the old order does not match the current display order
	// or the new order can't be reached from it.
	// The permutation is not modified in that case.
	ErrOrderMismatch = errors.New("column orders can't be reconciled")

	// ErrPermutationMismatch indicates a ColumnPermutation whose
	// FullColumnCount differs from the column count of the tree it is used with.
	ErrPermutationMismatch = errors.New("permutation does not match tree columns")
)

// Filter errors
var (
	// ErrEmptyFilter indicates a filtered enumeration without filter rows.
	ErrEmptyFilter = errors.New("empty row filter")

	// ErrFilterNotAscending indicates filter rows that are not strictly ascending.
	ErrFilterNotAscending = errors.New("filter rows not strictly ascending")
)
