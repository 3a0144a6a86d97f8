package nonogram

import (
	"testing"

	"github.com/sraaphorst/nonogram/internal/interference"
)

func TestEnumerateEmptyClueYieldsOneEmptyPlacement(t *testing.T) {
	placements := Enumerate(5, nil)
	if len(placements) != 1 {
		t.Fatalf("expected exactly one placement for an empty clue, got %d", len(placements))
	}
	if len(placements[0]) != 0 {
		t.Fatalf("expected the empty clue's placement to have no cells, got %v", placements[0])
	}
}

func TestEnumerateSingleBlockAllPositions(t *testing.T) {
	placements := Enumerate(3, LineClue{{Size: 2}})
	// A size-2 block in a length-3 line can start at 0 or 1.
	if len(placements) != 2 {
		t.Fatalf("expected 2 placements, got %d: %v", len(placements), placements)
	}
}

func TestEnumerateTwoMonochromeBlocksRequireGap(t *testing.T) {
	// "1,1" in a line of length 3: only one placement, [0, 2].
	placements := Enumerate(3, LineClue{{Size: 1}, {Size: 1}})
	if len(placements) != 1 {
		t.Fatalf("expected exactly one placement, got %d: %v", len(placements), placements)
	}
	p := placements[0]
	if len(p) != 2 || p[0].Idx != 0 || p[1].Idx != 2 {
		t.Fatalf("expected cells at indices 0 and 2, got %v", p)
	}
}

func TestEnumerateImpossibleClueYieldsNothing(t *testing.T) {
	// "2" clue needs 2 cells but the line has length 0: doesn't fit any
	// position, but also doesn't hit the empty-clue base case since the
	// clue isn't empty.
	placements := Enumerate(0, LineClue{{Size: 2}})
	if len(placements) != 0 {
		t.Fatalf("expected zero placements for an impossible clue, got %d", len(placements))
	}
}

func TestEnumerateColoredBlocksMayAbutSameColor(t *testing.T) {
	// Documented open question (spec.md §4.7/§9): adjacent same-color
	// blocks are NOT required to have a gap. In a line of length 2, two
	// size-1 "a" blocks can be placed starting at 0 and 1 (abutting).
	placements := Enumerate(2, LineClue{{Size: 1, Color: "a"}, {Size: 1, Color: "a"}})

	foundAbutting := false
	for _, p := range placements {
		if len(p) == 2 && p[0].Idx == 0 && p[1].Idx == 1 {
			foundAbutting = true
		}
	}
	if !foundAbutting {
		t.Fatal("expected an abutting same-color placement to be enumerated (bug-compatible per spec.md §9)")
	}
}

func TestEnumerateColorOfMatchesCompact(t *testing.T) {
	placements := Enumerate(3, LineClue{{Size: 1, Color: "b"}})
	if len(placements) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(placements))
	}
	p := placements[0]
	if got := interference.ColorOf(0, p); got != interference.Color(2+int('b'-'a')) {
		t.Fatalf("ColorOf(0, ...) = %d, want the encoded color for 'b'", got)
	}
	if got := interference.ColorOf(1, p); got != interference.Blank {
		t.Fatalf("ColorOf(1, ...) = %d, want Blank", got)
	}
}
