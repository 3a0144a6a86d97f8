// Package interference implements the cross-axis consistency store of
// spec.md §3.2/§4.5: a rectangular board where every cell carries two
// independent color slots, one committed by a row-line decision and one by
// a column-line decision, with a predicate gating whether a line placement
// may be committed at all.
package interference

import "strings"

// Color is the integer encoding of spec.md §4.5: 0 is blank, 1 is a
// monochrome fill, and 2+ is a letter-encoded color (2 for 'a', 3 for 'b',
// and so on).
type Color int

const (
	Blank  Color = 0
	Filled Color = 1
)

// Block is one entry of a compact placement: the index along the
// perpendicular axis and the color written there. It mirrors spec.md
// §4.5's `compact` entries, `{idx, color}`.
type Block struct {
	Idx   int
	Color string
}

// ColorOf implements spec.md §4.5's color_of: look up idx among blocks; if
// absent the cell is blank, if present with an empty color string it's a
// monochrome fill, otherwise it's the letter-encoded color of the block's
// first (lowercased) character.
func ColorOf(idx int, blocks []Block) Color {
	for _, b := range blocks {
		if b.Idx != idx {
			continue
		}
		if b.Color == "" {
			return Filled
		}
		first := strings.ToLower(b.Color[:1])[0]
		return Color(2 + int(first-'a'))
	}
	return Blank
}
