package nonogram

import (
	"reflect"
	"testing"

	"github.com/sraaphorst/nonogram/internal/interference"
)

func solveAll(t *testing.T, puzzle string) [][][]interference.Color {
	t.Helper()
	spec, err := Parse(puzzle)
	if err != nil {
		t.Fatalf("Parse(%q): %v", puzzle, err)
	}
	reduction, err := Reduce(spec)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}

	var grids [][][]interference.Color
	for sol := range reduction.Matrix.Solve() {
		grids = append(grids, reduction.DecodeGrid(sol))
	}
	return grids
}

func gridString(grid [][]interference.Color) string {
	return GridString(grid)
}

// Monochrome 3x3 nonogram with a fully determined, unique solution: a
// filled plus-shaped middle row and column force every other cell.
func TestScenarioMonochrome3x3(t *testing.T) {
	grids := solveAll(t, "1/3/1|1/3/1")
	if len(grids) != 1 {
		t.Fatalf("expected exactly one solution, got %d", len(grids))
	}
	want := "010\n111\n010\n"
	if got := gridString(grids[0]); got != want {
		t.Fatalf("got grid:\n%s\nwant:\n%s", got, want)
	}
}

// S3 — 2x2 trivial (spec.md §8.2).
func TestScenarioS3Trivial2x2(t *testing.T) {
	grids := solveAll(t, "2/2|2/2")
	if len(grids) != 1 {
		t.Fatalf("expected exactly one solution, got %d", len(grids))
	}
	want := "11\n11\n"
	if got := gridString(grids[0]); got != want {
		t.Fatalf("got grid:\n%s\nwant:\n%s", got, want)
	}
}

// Contradictory puzzle: the rows force every cell filled while the
// columns force every cell blank, so no grid can satisfy both axes.
func TestScenarioContradictoryPuzzle(t *testing.T) {
	grids := solveAll(t, "2/2|0/0")
	if len(grids) != 0 {
		t.Fatalf("expected zero solutions, got %d: %v", len(grids), grids)
	}
}

// S5 — Colored 3x3 (spec.md §8.2): grid must satisfy both row and column
// color clues simultaneously.
func TestScenarioS5Colored3x3(t *testing.T) {
	grids := solveAll(t, "1a/1b/1a,1b|1a,1a/1b/1b")
	if len(grids) == 0 {
		t.Fatal("expected at least one solution")
	}
	// The row clues force exactly one 'a' cell in row 0, one 'b' cell in
	// row 1, and one 'a' plus one 'b' cell in row 2. Verify that directly
	// on the produced grid rather than re-deriving column placement.
	grid := grids[0]
	countColor := func(row []interference.Color, want byte) int {
		n := 0
		for _, c := range row {
			if CellChar(c) == want {
				n++
			}
		}
		return n
	}
	if countColor(grid[0], 'a') != 1 {
		t.Fatalf("row 0 should have exactly one 'a' cell, got grid %v", grid)
	}
	if countColor(grid[1], 'b') != 1 {
		t.Fatalf("row 1 should have exactly one 'b' cell, got grid %v", grid)
	}
	if countColor(grid[2], 'a') != 1 || countColor(grid[2], 'b') != 1 {
		t.Fatalf("row 2 should have exactly one 'a' and one 'b' cell, got grid %v", grid)
	}
}

// Ambiguous puzzle, analogous to S6 (spec.md §8.2's 5x5 is illustrative;
// this 2x2 permutation-matrix puzzle is the smallest grid that is
// genuinely ambiguous): both solutions must be emitted, in the same
// deterministic order on repeated runs.
func TestAmbiguousPuzzleEmitsAllSolutionsDeterministically(t *testing.T) {
	puzzle := "1/1|1/1"

	first := solveAll(t, puzzle)
	second := solveAll(t, puzzle)

	if len(first) != 2 {
		t.Fatalf("expected 2 solutions, got %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("solve order was not deterministic across runs:\n%v\nvs\n%v", first, second)
	}
}

func TestDecodeGridEmptyClueLineIsAllBlank(t *testing.T) {
	grids := solveAll(t, "0|0")
	if len(grids) != 1 {
		t.Fatalf("expected exactly one solution for an all-blank 1x1 puzzle, got %d", len(grids))
	}
	if got := gridString(grids[0]); got != "0\n" {
		t.Fatalf("expected a blank cell, got %q", got)
	}
}
