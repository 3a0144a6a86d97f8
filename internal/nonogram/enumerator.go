package nonogram

import "github.com/sraaphorst/nonogram/internal/interference"

// Enumerate produces every legal placement of clue on a line of length n,
// each placement expressed as a compact list of individually-colored
// cells (spec.md §4.7). A clue with no blocks at all (the empty-clue line,
// spec.md §9 supplemental decision 2) enumerates to exactly one placement:
// the empty one, with no cells at all — so that line's exact-cover column
// is still coverable by a single, trivially-blank row.
func Enumerate(n int, clue LineClue) [][]interference.Block {
	return enumerate(0, 0, clue, n)
}

// enumerate is spec.md §4.7's recursive definition verbatim: reaching the
// end of the clue (i == len(clue)) always yields one empty continuation,
// whether or not any blocks were placed before it — which is what makes
// the empty-clue line (len(clue) == 0) work without a special case, unlike
// original_source/nono.py's enumerator, whose equivalent base case
// returns no continuations at all and relies on a separate, ad hoc check
// at the final block to paper over it (a patch that only covers the
// "at least one block" case). See DESIGN.md for this decision's grounding.
func enumerate(i, start int, clue LineClue, n int) [][]interference.Block {
	if i == len(clue) {
		return [][]interference.Block{{}}
	}

	b := clue[i]
	var placements [][]interference.Block
	for c := start; c <= n-b.Size; c++ {
		cells := make([]interference.Block, b.Size)
		for k := 0; k < b.Size; k++ {
			cells[k] = interference.Block{Idx: c + k, Color: b.Color}
		}

		for _, rest := range enumerate(i+1, c+gap(b), clue, n) {
			placement := make([]interference.Block, 0, len(cells)+len(rest))
			placement = append(placement, cells...)
			placement = append(placement, rest...)
			placements = append(placements, placement)
		}
	}
	return placements
}

// gap is spec.md §4.7's block separation rule: adjacent monochrome blocks
// need at least one blank cell between them; adjacent colored blocks do
// not, even when they share a color — spec.md §9's documented open
// question, preserved here rather than silently "fixed", exactly as
// spec.md §4.7's note directs ("Reimplementations should preserve this
// behavior to stay bug-compatible").
func gap(b Block) int {
	if b.Color == "" {
		return b.Size + 1
	}
	return b.Size
}
