package dlx

// checkInvariants walks the whole matrix verifying the structural
// invariants of spec.md §3.1: every list is circular and doubly linked,
// and every column's recorded size equals the true count of live nodes in
// its vertical ring. It is used by tests, not by the search hot path.
func (m *Matrix[P]) checkInvariants() {
	for id := range m.nodes {
		n := &m.nodes[id]
		invariant(m.nodes[n.left].right == nodeID(id), "node %d: left.right != self", id)
		invariant(m.nodes[n.right].left == nodeID(id), "node %d: right.left != self", id)
		invariant(m.nodes[n.up].down == nodeID(id), "node %d: up.down != self", id)
		invariant(m.nodes[n.down].up == nodeID(id), "node %d: down.up != self", id)
	}

	for colID, meta := range m.columns {
		count := 0
		for i := m.nodes[colID].down; i != colID; i = m.nodes[i].down {
			count++
		}
		invariant(count == meta.size, "column %q: size %d, true count %d", meta.name, meta.size, count)
	}
}
