package dlx

import "iter"

// Stats records the per-depth counters of spec.md §4.3: how many rows were
// tried at each depth, and how many link updates cover/uncover performed.
// Both slices grow lazily to at least depth+1 as the search descends, and
// are monotonically non-decreasing across a single Solve iteration (the
// search never rewinds a counter, only appends to it) — spec.md §5.
type Stats struct {
	Nodes   []int // rows tried, per depth
	Updates []int // link operations performed by cover, per depth
}

func (s *Stats) ensureDepth(depth int) {
	for len(s.Nodes) <= depth {
		s.Nodes = append(s.Nodes, 0)
	}
	for len(s.Updates) <= depth {
		s.Updates = append(s.Updates, 0)
	}
}

// Solve returns a lazy sequence of exact covers, each a slice of RowID
// whose rows together cover every primary column exactly once (and each
// secondary column at most once). Solutions are produced in the
// deterministic order induced by the selector's column choice and
// top-to-bottom row iteration within each column (spec.md §4.3).
//
// The returned iter.Seq is the idiomatic rendering of "lazy producer of
// solutions" (spec.md §9): ranging over it and breaking early abandons the
// search with nothing left to reclaim — there is no goroutine underneath,
// only a resumed call stack, exactly mirroring spec.md §5's suspension
// model.
func (m *Matrix[P]) Solve() iter.Seq[[]RowID] {
	return m.SolveWith(MinSizeSelector[P]{})
}

// SolveWith is Solve parameterized by an explicit ColumnSelector, for
// callers that want a branching rule other than the default (spec.md
// §4.4 — the selector is pluggable even though spec.md's own Non-goals
// restrict the *shipped* default to minimum-size branching).
func (m *Matrix[P]) SolveWith(selector ColumnSelector[P]) iter.Seq[[]RowID] {
	return func(yield func([]RowID) bool) {
		stats := &Stats{}
		partial := make([]RowID, 0, 16)
		m.search(0, selector, stats, &partial, yield)
	}
}

// search is the recursive depth-first step of spec.md §4.3. It returns
// false if the caller's yield asked the whole search to stop.
func (m *Matrix[P]) search(depth int, selector ColumnSelector[P], stats *Stats, partial *[]RowID, yield func([]RowID) bool) bool {
	if m.nodes[headerID].right == headerID {
		sol := append([]RowID(nil), (*partial)...)
		return yield(sol)
	}

	stats.ensureDepth(depth)

	c := selector.Select(m)
	if c == Header || m.ColumnSize(c) == 0 {
		return true
	}

	cID := nodeID(c)
	stats.Updates[depth] += m.cover(cID)

	keepGoing := true
	for r := m.nodes[cID].down; r != cID && keepGoing; r = m.nodes[r].down {
		rowID := m.nodes[r].rowID
		payload := m.payload[rowID]

		if m.interference != nil && !m.interference.Accepts(rowID, payload) {
			continue
		}
		if m.interference != nil {
			m.interference.Commit(rowID, payload)
		}

		*partial = append(*partial, rowID)
		stats.Nodes[depth]++

		for j := m.nodes[r].right; j != r; j = m.nodes[j].right {
			m.cover(m.nodes[j].col)
		}

		keepGoing = m.search(depth+1, selector, stats, partial, yield)

		for j := m.nodes[r].left; j != r; j = m.nodes[j].left {
			m.uncover(m.nodes[j].col)
		}

		*partial = (*partial)[:len(*partial)-1]

		if m.interference != nil {
			m.interference.Rollback(rowID, payload)
		}
	}

	m.uncover(cID)
	return keepGoing
}
