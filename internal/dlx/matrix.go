// Package dlx implements Knuth's Dancing Links algorithm over a generic
// exact-cover matrix, with a pluggable column selector and an optional
// interference hook that can veto or be notified of row selection.
package dlx

import "fmt"

// Kind distinguishes primary columns, which every solution must cover
// exactly once, from secondary columns, which a solution may cover at
// most once and which never participate in the termination check.
type Kind int

const (
	Primary Kind = iota
	Secondary
)

// ColumnDesc describes one column of the matrix at construction time.
type ColumnDesc struct {
	Name string
	Kind Kind
}

// RowID identifies one row of the matrix. By convention it is the arena
// index of that row's leftmost node, so it is stable across cover/uncover
// but meaningless to compare across different matrices.
type RowID int32

const noID RowID = -1

// nodeID is an arena index. Index 0 is always the header sentinel.
type nodeID int32

const headerID nodeID = 0

// node is one entry of the toroidal doubly-linked matrix. Column header
// nodes and row nodes share this representation; header nodes additionally
// have an entry in columnMeta keyed by the same index.
type node struct {
	left, right, up, down nodeID
	col                   nodeID // owning column header (a column header's own id; 0 for the sentinel)
	rowID                 RowID  // shared by every node in one row; -1 for header/column nodes
}

// columnMeta holds the per-column bookkeeping that only header nodes need.
type columnMeta struct {
	name string
	kind Kind
	size int
}

// Matrix is the toroidal exact-cover matrix of spec.md §3.1, realized as
// an arena of nodes indexed by integer handle (spec.md §9's recommended
// realization) rather than as a graph of pointers. Row payloads of type P
// live in a map keyed by RowID.
type Matrix[P any] struct {
	nodes   []node
	columns map[nodeID]*columnMeta // keyed by column node id; header (0) has no entry
	colByID []nodeID                // construction-order column node ids
	payload map[RowID]P

	interference Interference[P]
}

// New constructs a Matrix from an ordered list of column descriptors.
// Primary columns are spliced into the header ring in order; secondary
// columns are allocated but left self-linked, so the column selector never
// sees them.
func New[P any](columns []ColumnDesc) *Matrix[P] {
	m := &Matrix[P]{
		nodes:   make([]node, 1, len(columns)+1),
		columns: make(map[nodeID]*columnMeta, len(columns)),
		colByID: make([]nodeID, 0, len(columns)),
		payload: make(map[RowID]P),
	}
	m.nodes[headerID] = node{left: headerID, right: headerID, up: headerID, down: headerID, rowID: noID}

	for _, cd := range columns {
		id := m.allocNode()
		n := &m.nodes[id]
		n.up, n.down = id, id
		n.col = id
		n.rowID = noID
		m.columns[id] = &columnMeta{name: cd.Name, kind: cd.Kind}
		m.colByID = append(m.colByID, id)

		if cd.Kind == Primary {
			h := &m.nodes[headerID]
			last := h.left
			n.left, n.right = last, headerID
			m.nodes[last].right = id
			h.left = id
		} else {
			n.left, n.right = id, id
		}
	}
	return m
}

func (m *Matrix[P]) allocNode() nodeID {
	m.nodes = append(m.nodes, node{})
	return nodeID(len(m.nodes) - 1)
}

// ColumnIndexError reports a row referencing a column outside the range
// established at construction time (spec.md §7 InvalidColumnIndex).
type ColumnIndexError struct {
	RowIndex, ColumnIndex, NumColumns int
}

func (e *ColumnIndexError) Error() string {
	return fmt.Sprintf("row %d references column %d, but matrix has %d columns",
		e.RowIndex, e.ColumnIndex, e.NumColumns)
}

// DuplicateColumnError reports a row listing the same column index twice.
type DuplicateColumnError struct {
	RowIndex, ColumnIndex int
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("row %d lists column %d more than once", e.RowIndex, e.ColumnIndex)
}

// AppendRows allocates one row per entry of rows (each a set of column
// indices into the construction-order list passed to New), splicing each
// node into its column's vertical ring at the bottom and linking the row's
// nodes into a horizontal ring in the given order. Empty rows are ignored.
// Returns one RowID per non-empty row, in order.
func (m *Matrix[P]) AppendRows(rows [][]int, payloads []P) ([]RowID, error) {
	ids := make([]RowID, 0, len(rows))
	for i, cols := range rows {
		if len(cols) == 0 {
			continue
		}

		seen := make(map[int]bool, len(cols))
		rowNodes := make([]nodeID, 0, len(cols))
		for _, ci := range cols {
			if ci < 0 || ci >= len(m.colByID) {
				return nil, &ColumnIndexError{RowIndex: i, ColumnIndex: ci, NumColumns: len(m.colByID)}
			}
			if seen[ci] {
				return nil, &DuplicateColumnError{RowIndex: i, ColumnIndex: ci}
			}
			seen[ci] = true
			rowNodes = append(rowNodes, m.colByID[ci])
		}

		rowID := RowID(m.allocNode())
		for k, colID := range rowNodes {
			var id nodeID
			if k == 0 {
				id = nodeID(rowID)
			} else {
				id = m.allocNode()
			}
			n := &m.nodes[id]
			n.col = colID
			n.rowID = rowID

			meta := m.columns[colID]
			colHead := &m.nodes[colID]
			last := colHead.up
			n.up, n.down = last, colID
			m.nodes[last].down = id
			colHead.up = id
			meta.size++

			rowNodes[k] = id
		}

		for k := range rowNodes {
			next := rowNodes[(k+1)%len(rowNodes)]
			prev := rowNodes[(k-1+len(rowNodes))%len(rowNodes)]
			m.nodes[rowNodes[k]].left = prev
			m.nodes[rowNodes[k]].right = next
		}

		m.payload[rowID] = payloads[i]
		ids = append(ids, rowID)
	}
	return ids, nil
}

// Decode returns the payload attached to the row identified by id.
func (m *Matrix[P]) Decode(id RowID) P {
	return m.payload[id]
}

// SetInterference installs the interference hook consulted and notified
// during search (spec.md §4.5/§4.6). Passing nil restores the trivial
// no-op gate.
func (m *Matrix[P]) SetInterference(interf Interference[P]) {
	m.interference = interf
}

// cover unlinks column c from the header ring, then unlinks every node
// that shares a row with a node in column c's vertical ring, decrementing
// each affected column's size. Returns the number of link updates
// performed, for statistics (spec.md §4.2).
func (m *Matrix[P]) cover(c nodeID) int {
	updates := 0
	ch := &m.nodes[c]
	m.nodes[ch.right].left = ch.left
	m.nodes[ch.left].right = ch.right

	for i := ch.down; i != c; i = m.nodes[i].down {
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			jn := &m.nodes[j]
			m.nodes[jn.down].up = jn.up
			m.nodes[jn.up].down = jn.down
			m.columns[jn.col].size--
			updates++
		}
	}
	return updates
}

// uncover is the exact inverse of cover, restoring rows bottom-to-top and,
// within each row, right-to-left.
func (m *Matrix[P]) uncover(c nodeID) {
	ch := &m.nodes[c]
	for i := ch.up; i != c; i = m.nodes[i].up {
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			jn := &m.nodes[j]
			m.columns[jn.col].size++
			m.nodes[jn.down].up = j
			m.nodes[jn.up].down = j
		}
	}
	m.nodes[ch.right].left = c
	m.nodes[ch.left].right = c
}

// columnName and columnSize are small accessors used by the default
// selector and by diagnostics; they are not part of the public API.
func (m *Matrix[P]) columnName(c nodeID) string { return m.columns[c].name }
func (m *Matrix[P]) columnSize(c nodeID) int    { return m.columns[c].size }
