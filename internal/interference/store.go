package interference

import "fmt"

// unset marks a slot that has not yet been committed by either axis.
const unset Color = -1

type cell struct {
	xColor Color
	yColor Color
}

// Store is the interference board of spec.md §3.2: an nxs×nys rectangle of
// cells, each holding an independent x_color and y_color slot. It never
// retains the `compact` placement a caller passes to a Select method —
// only the per-cell color integers it computes from it — so Unselect
// needs nothing but the line's id (spec.md §4.5).
type Store struct {
	nxs, nys int
	cells    []cell
}

// New constructs a Store of the given dimensions with every slot unset.
func New(nxs, nys int) *Store {
	cells := make([]cell, nxs*nys)
	for i := range cells {
		cells[i] = cell{xColor: unset, yColor: unset}
	}
	return &Store{nxs: nxs, nys: nys, cells: cells}
}

func (s *Store) at(xid, yid int) int {
	if xid < 0 || xid >= s.nxs || yid < 0 || yid >= s.nys {
		panic(fmt.Sprintf("interference: cell (%d,%d) out of bounds for %dx%d board", xid, yid, s.nxs, s.nys))
	}
	return xid*s.nys + yid
}

// IsXSelectable reports whether x-line xid may be committed with the given
// compact placement: every cell on the line must have an unset x_color,
// and wherever y_color is already set it must agree with the color this
// placement would write (spec.md §4.5).
func (s *Store) IsXSelectable(xid int, compact []Block) bool {
	for yid := 0; yid < s.nys; yid++ {
		c := s.cells[s.at(xid, yid)]
		if c.xColor != unset {
			return false
		}
		want := ColorOf(yid, compact)
		if c.yColor != unset && c.yColor != want {
			return false
		}
	}
	return true
}

// XSelect commits x-line xid's placement, writing one color per cell on
// the line. Callers must have just checked IsXSelectable.
func (s *Store) XSelect(xid int, compact []Block) {
	for yid := 0; yid < s.nys; yid++ {
		idx := s.at(xid, yid)
		s.cells[idx].xColor = ColorOf(yid, compact)
	}
}

// XUnselect clears x-line xid's x_color slots, the exact inverse of
// XSelect.
func (s *Store) XUnselect(xid int) {
	for yid := 0; yid < s.nys; yid++ {
		s.cells[s.at(xid, yid)].xColor = unset
	}
}

// IsYSelectable is IsXSelectable with the roles of the axes swapped.
func (s *Store) IsYSelectable(yid int, compact []Block) bool {
	for xid := 0; xid < s.nxs; xid++ {
		c := s.cells[s.at(xid, yid)]
		if c.yColor != unset {
			return false
		}
		want := ColorOf(xid, compact)
		if c.xColor != unset && c.xColor != want {
			return false
		}
	}
	return true
}

// YSelect is XSelect with the roles of the axes swapped.
func (s *Store) YSelect(yid int, compact []Block) {
	for xid := 0; xid < s.nxs; xid++ {
		idx := s.at(xid, yid)
		s.cells[idx].yColor = ColorOf(xid, compact)
	}
}

// YUnselect is XUnselect with the roles of the axes swapped.
func (s *Store) YUnselect(yid int) {
	for xid := 0; xid < s.nxs; xid++ {
		s.cells[s.at(xid, yid)].yColor = unset
	}
}

// CellColor returns the resolved color of cell (xid, yid): if both slots
// are set they are invariantly equal (spec.md §3.2), so either can be
// returned; if only one is set, that one is returned; if neither is set
// the cell is blank. Used by the solution printer once a full cover has
// committed every line on both axes.
func (s *Store) CellColor(xid, yid int) Color {
	c := s.cells[s.at(xid, yid)]
	if c.xColor != unset {
		return c.xColor
	}
	if c.yColor != unset {
		return c.yColor
	}
	return Blank
}

// Dimensions returns the board's (nxs, nys) extents.
func (s *Store) Dimensions() (int, int) {
	return s.nxs, s.nys
}
