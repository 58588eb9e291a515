package statictree

import "github.com/domonda/go-treegrid"

// segment is a run of consecutive real rows of one branch in one column
// followed by the blanks attached to its last row.
// A blank-only segment has last == first-1 and node/last name the anchor
// of its blanks, a nil node means the blanks have no anchor in the column.
type segment struct {
	start     int
	node      *node
	first     int
	last      int
	blanks    int
	anchorRow int
}

func (s *segment) realRows() int { return s.last - s.first + 1 }

func (s *segment) end() int { return s.start + s.realRows() + s.blanks }

type anchor struct {
	node *node
	row  int
	abs  int
}

// layout returns the segment table of nativeColumn,
// building it on first use.
func (t *Tree) layout(nativeColumn int) []segment {
	if l := t.layouts[nativeColumn]; l != nil {
		return l
	}
	var (
		segments []segment
		anchors  = make(map[*node]*anchor)
	)
	for abs, ref := range t.rows {
		if nativeColumn < treegrid.BranchJaggedColumnCount(ref.node.branch, ref.row) {
			if n := len(segments); n > 0 {
				cur := &segments[n-1]
				if cur.node == ref.node && cur.blanks == 0 && cur.last == ref.row-1 && cur.realRows() > 0 {
					cur.last++
					cur.anchorRow = abs
					continue
				}
			}
			segments = append(segments, segment{
				start:     abs,
				node:      ref.node,
				first:     ref.row,
				last:      ref.row,
				anchorRow: abs,
			})
			continue
		}

		a, ok := anchors[ref.node]
		if !ok {
			a = blankAnchor(ref.node, nativeColumn)
			anchors[ref.node] = a
		}
		if n := len(segments); n > 0 && segments[n-1].hasAnchor(a) {
			segments[n-1].blanks++
			continue
		}
		s := segment{
			start:     abs,
			first:     0,
			last:      treegrid.NullIndex,
			blanks:    1,
			anchorRow: treegrid.NullIndex,
		}
		if a != nil {
			s.node = a.node
			s.first = a.row + 1
			s.last = a.row
			s.anchorRow = a.abs
		}
		segments = append(segments, s)
	}
	t.layouts[nativeColumn] = segments
	return segments
}

func (s *segment) hasAnchor(a *anchor) bool {
	if a == nil {
		return s.node == nil
	}
	return s.node == a.node && s.last == a.row
}

// blankAnchor returns the anchor in nativeColumn for the blank cells
// of rows of n, or nil if they have none.
// Only cells in columns the branch does not have are attached
// to the parent row above, the blanks of jagged rows are not.
func blankAnchor(n *node, nativeColumn int) *anchor {
	if nativeColumn < n.columns {
		return nil
	}
	for c := n; c.parent != nil; c = c.parent {
		p := c.parent
		if nativeColumn < treegrid.BranchJaggedColumnCount(p.branch, c.parentRow) {
			return &anchor{node: p, row: c.parentRow, abs: c.parentAbs}
		}
		if nativeColumn < p.columns {
			return nil
		}
	}
	return nil
}
