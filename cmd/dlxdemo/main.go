// Command dlxdemo demonstrates the generic exact-cover engine directly,
// independent of the nonogram reduction, on Knuth's 6-column example
// (spec.md §8.2 S1) — grounded on the teacher's three-method
// demonstration shape (examples/dancing_links_basic.go,
// cmd/dancing_links_demo): a basic solve, a solve with statistics, and a
// solution count.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/sraaphorst/nonogram/internal/dlx"
)

func knuthMatrix() (*dlx.Matrix[string], map[dlx.RowID]string) {
	m := dlx.New[string]([]dlx.ColumnDesc{
		{Name: "A", Kind: dlx.Primary},
		{Name: "B", Kind: dlx.Primary},
		{Name: "C", Kind: dlx.Primary},
		{Name: "D", Kind: dlx.Primary},
		{Name: "E", Kind: dlx.Primary},
		{Name: "F", Kind: dlx.Primary},
		{Name: "G", Kind: dlx.Secondary},
	})
	names := []string{"C E F", "A D F", "B C F", "A D", "B G"}
	ids, err := m.AppendRows([][]int{
		{2, 4, 5},
		{0, 3, 5},
		{1, 2, 5},
		{0, 3},
		{1, 6},
	}, names)
	if err != nil {
		panic(err)
	}

	byName := make(map[dlx.RowID]string, len(ids))
	for i, id := range ids {
		byName[id] = names[i]
	}
	return m, byName
}

func main() {
	color.HiWhite("Dancing Links Algorithm Demonstration")
	color.HiWhite("=====================================")

	fmt.Println("\n--- Method 1: Basic Solve ---")
	m, names := knuthMatrix()
	for sol := range m.Solve() {
		fmt.Print("Solution: ")
		for i, r := range sol {
			if i > 0 {
				fmt.Print(" | ")
			}
			fmt.Print(names[r])
		}
		fmt.Println()
	}

	fmt.Println("\n--- Method 2: Solve With Statistics ---")
	m2, _ := knuthMatrix()
	solutions, stats, timedOut := m2.SolveWithStats(nil)
	fmt.Printf("Found %d solution(s), timed out = %v\n", len(solutions), timedOut)
	stats.PrintStats()

	fmt.Println("\n--- Method 3: Count Solutions ---")
	m3, _ := knuthMatrix()
	fmt.Printf("Total solutions (capped at 10): %d\n", m3.CountSolutions(10))
}
