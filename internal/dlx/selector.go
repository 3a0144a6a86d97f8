package dlx

// ColumnID identifies a column header node, including the header sentinel
// itself (Header). It is the handle a ColumnSelector works with; it carries
// no information about row structure.
type ColumnID int32

// Header is the sentinel column-list anchor. A ColumnSelector returns Header
// to signal "nothing left to branch on" — which only happens when every
// primary column has already been covered.
const Header ColumnID = ColumnID(headerID)

// NextColumn returns the column following c in the current primary ring.
// Following Header far enough always returns to Header.
func (m *Matrix[P]) NextColumn(c ColumnID) ColumnID {
	return ColumnID(m.nodes[nodeID(c)].right)
}

// ColumnSize returns the number of live nodes currently in column c's
// vertical ring.
func (m *Matrix[P]) ColumnSize(c ColumnID) int {
	return m.columnSize(nodeID(c))
}

// ColumnName returns the caller-supplied name of column c.
func (m *Matrix[P]) ColumnName(c ColumnID) string {
	return m.columnName(nodeID(c))
}

// ColumnSelector chooses the next column to branch on during search
// (spec.md §4.4). Select must return either Header (to signal no further
// choice is needed — only valid when the header ring is empty) or a column
// currently present in the primary ring.
type ColumnSelector[P any] interface {
	Select(m *Matrix[P]) ColumnID
}

// MinSizeSelector implements Knuth's "choose the column with the smallest
// S" branching rule: the default, and the only heuristic spec.md allows
// (spec.md §1 Non-goals: "no heuristics beyond Knuth's smallest column
// size S branching rule"). Ties are broken by first-seen, i.e. leftmost in
// the current header ring.
type MinSizeSelector[P any] struct{}

func (MinSizeSelector[P]) Select(m *Matrix[P]) ColumnID {
	chosen := Header
	minSize := -1
	for c := m.NextColumn(Header); c != Header; c = m.NextColumn(c) {
		size := m.ColumnSize(c)
		if minSize == -1 || size < minSize {
			chosen, minSize = c, size
		}
	}
	return chosen
}
