package dlx

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
)

// SearchOptions configures the convenience entry points below. It plays the
// role the teacher's DancingLinksOptions plays for its single-solution
// Sudoku search: the core recursive algorithm of spec.md §4.3 never
// consults it directly, only the wrappers that sit on top of Solve.
type SearchOptions struct {
	TimeLimit    time.Duration
	MaxSolutions int
	Debug        bool
}

// DefaultSearchOptions mirrors the teacher's DefaultDancingLinksOptions:
// a generous time budget and a cap of one solution, the common case of
// "does this puzzle have an answer".
func DefaultSearchOptions() *SearchOptions {
	return &SearchOptions{
		TimeLimit:    10 * time.Second,
		MaxSolutions: 1,
	}
}

// SolveWithStats runs Solve and additionally reports Stats and whether the
// configured time limit cut the search short (stopping at the solution cap
// does not set timedOut). The time
// limit is checked at the same suspension points solution emission already
// uses (spec.md §5's single-threaded cooperative model), via
// context.Context cancellation rather than a separate timer goroutine.
func (m *Matrix[P]) SolveWithStats(opts *SearchOptions) (solutions [][]RowID, stats *Stats, timedOut bool) {
	if opts == nil {
		opts = DefaultSearchOptions()
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if opts.TimeLimit > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	stats = &Stats{}
	partial := make([]RowID, 0, 16)
	cutShort := false

	yield := func(sol []RowID) bool {
		solutions = append(solutions, sol)
		if opts.Debug {
			fmt.Printf("found solution #%d at %d rows\n", len(solutions), len(sol))
		}
		if ctx.Err() != nil {
			cutShort = true
			return false
		}
		if opts.MaxSolutions > 0 && len(solutions) >= opts.MaxSolutions {
			return false
		}
		return true
	}

	m.search(0, MinSizeSelector[P]{}, stats, &partial, yield)
	return solutions, stats, cutShort
}

// CountSolutions counts up to maxSolutions exact covers without
// materializing them, mirroring the teacher's CountSolutions convenience
// method. maxSolutions <= 0 means "no cap".
func (m *Matrix[P]) CountSolutions(maxSolutions int) int {
	count := 0
	stats := &Stats{}
	partial := make([]RowID, 0, 16)
	m.search(0, MinSizeSelector[P]{}, stats, &partial, func([]RowID) bool {
		count++
		return maxSolutions <= 0 || count < maxSolutions
	})
	return count
}

// PrintStats renders search statistics the way the teacher's
// DancingLinksStats.PrintStats does: a colorized header followed by
// per-metric lines, with the numbers themselves highlighted.
func (s *Stats) PrintStats() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Statistics"))
	fmt.Printf("%s\n", color.HiCyanString("========================"))

	totalNodes, totalUpdates := 0, 0
	for _, n := range s.Nodes {
		totalNodes += n
	}
	for _, u := range s.Updates {
		totalUpdates += u
	}

	fmt.Printf("Depth reached:   %s\n", color.HiYellowString("%d", len(s.Nodes)))
	fmt.Printf("Rows tried:      %s\n", color.HiGreenString("%d", totalNodes))
	fmt.Printf("Link updates:    %s\n", color.HiMagentaString("%d", totalUpdates))
}
