package nonogram

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sraaphorst/nonogram/internal/interference"
)

// CellChar renders one resolved Color as the single character spec.md
// §6.2 mandates: '0' for blank, '1' for a monochrome fill, otherwise the
// first letter of the cell's color.
func CellChar(c interference.Color) byte {
	switch {
	case c == interference.Blank:
		return '0'
	case c == interference.Filled:
		return '1'
	default:
		return byte('a' + (int(c) - 2))
	}
}

// GridString renders a decoded grid as spec.md §6.2's R rows of C
// characters.
func GridString(grid [][]interference.Color) string {
	var b strings.Builder
	for _, row := range grid {
		for _, c := range row {
			b.WriteByte(CellChar(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PrintSize writes the "Puzzle size: R x C" header line spec.md §6.2
// fixes exactly, colorized the way the teacher's printer colorizes its
// own headers (color auto-disables when stdout is not a terminal, so the literal
// text survives untouched when stdout is redirected).
func PrintSize(w io.Writer, nrows, ncols int) {
	color.New(color.FgHiWhite).Fprintf(w, "Puzzle size: %d x %d\n", nrows, ncols)
}

// PrintSolution writes the "Solution:" header followed by the rendered
// grid, per spec.md §6.2.
func PrintSolution(w io.Writer, grid [][]interference.Color) {
	color.New(color.FgHiWhite).Fprintln(w, "Solution:")
	fmt.Fprint(w, GridString(grid))
}
