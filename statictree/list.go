package statictree

import "github.com/domonda/go-treegrid"

var (
	_ treegrid.JaggedColumnBranch = new(List)
	_ treegrid.TextBranch         = new(List)
	_ Expander                    = new(List)
)

// Expander is implemented by branches with expanded rows.
// A Tree lists the rows of an expanded child branch
// directly below the row it was expanded from.
type Expander interface {
	// ExpandedBranch returns the child branch of row
	// or nil if the row is collapsed.
	ExpandedBranch(row int) treegrid.Branch
}

// List is a branch holding its cell texts in memory.
//
// Columns sets the column count of the branch.
// A row with fewer cells than Columns is jagged, its missing
// cells are blank and attached to the last cell of the row.
// A row with more cells than Columns has its extra cells ignored.
//
// Children holds the expanded child branches by row.
//
// Example:
//
//	root := statictree.NewList(2,
//	    []string{"Fruits", "3"},
//	    []string{"Vegetables"}, // jagged row
//	)
//	root.Expand(0, statictree.NewList(1,
//	    []string{"Apple"},
//	    []string{"Banana"},
//	    []string{"Cherry"},
//	))
type List struct {
	Columns  int
	Rows     [][]string
	Children map[int]*List
}

// NewList returns a List with the passed column count and rows.
func NewList(columns int, rows ...[]string) *List {
	return &List{Columns: columns, Rows: rows}
}

// Expand sets child as expanded branch of row
// or collapses the row if child is nil.
// It returns the List to allow chaining.
func (l *List) Expand(row int, child *List) *List {
	if child == nil {
		delete(l.Children, row)
		return l
	}
	if l.Children == nil {
		l.Children = make(map[int]*List)
	}
	l.Children[row] = child
	return l
}

func (l *List) VisibleItemCount() int { return len(l.Rows) }

func (l *List) ColumnCount() int { return max(l.Columns, 1) }

func (l *List) JaggedColumnCount(row int) int {
	if row < 0 || row >= len(l.Rows) {
		return 0
	}
	return min(len(l.Rows[row]), l.ColumnCount())
}

func (l *List) CellText(row, column int) string {
	if row < 0 || row >= len(l.Rows) || column < 0 || column >= len(l.Rows[row]) {
		return ""
	}
	return l.Rows[row][column]
}

func (l *List) ExpandedBranch(row int) treegrid.Branch {
	// Don't return a typed nil as interface
	if child := l.Children[row]; child != nil {
		return child
	}
	return nil
}
