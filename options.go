package treegrid

import (
	"fmt"
	"strings"
)

// EnumerateOption is a set of bit flags
// configuring a ColumnItemEnumerator.
type EnumerateOption int

const (
	// EnumerateReturnBlankAnchors makes MoveNext stop at blank cells
	// attached to a cell of the enumerated column
	// and report that anchor cell instead of skipping them.
	EnumerateReturnBlankAnchors EnumerateOption = 1 << iota

	// EnumerateMarkExcluded records filter rows that do not exist
	// as cells in the enumerated column as FilterExcluded.
	EnumerateMarkExcluded
)

func (o EnumerateOption) Has(option EnumerateOption) bool {
	return o&option != 0
}

func (o EnumerateOption) String() string {
	var b strings.Builder
	if o.Has(EnumerateReturnBlankAnchors) {
		b.WriteString("ReturnBlankAnchors")
	}
	if o.Has(EnumerateMarkExcluded) {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString("MarkExcluded")
	}
	if b.Len() == 0 {
		return "no EnumerateOption"
	}
	return b.String()
}

// FilterState tells what an enumeration found out about one filter row.
type FilterState uint8

const (
	// FilterUnexamined is the state of filter rows
	// the enumeration did not reach yet.
	FilterUnexamined FilterState = iota
	// FilterFound marks filter rows returned by MoveNext.
	FilterFound
	// FilterExcluded marks filter rows without a cell in the enumerated column.
	FilterExcluded
)

func (s FilterState) String() string {
	switch s {
	case FilterUnexamined:
		return "Unexamined"
	case FilterFound:
		return "Found"
	case FilterExcluded:
		return "Excluded"
	}
	return fmt.Sprintf("FilterState(%d)", uint8(s))
}
