// Command nonogram solves the nonogram puzzle named on the command line
// and prints every solution it finds, per spec.md §6.2.
package main

import (
	"fmt"
	"os"

	"github.com/sraaphorst/nonogram/internal/nonogram"
)

func main() {
	if len(os.Args) != 2 {
		fatal("usage", fmt.Errorf("expected a single puzzle file argument"))
	}
	path := os.Args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		fatal("reading puzzle file", err)
	}

	spec, err := nonogram.Parse(string(content))
	if err != nil {
		fatal("parsing puzzle", err)
	}

	reduction, err := nonogram.Reduce(spec)
	if err != nil {
		fatal("building exact-cover instance", err)
	}

	nonogram.PrintSize(os.Stdout, reduction.NumRows, reduction.NumCols)

	for solution := range reduction.Matrix.Solve() {
		grid := reduction.DecodeGrid(solution)
		nonogram.PrintSolution(os.Stdout, grid)
	}
}

func fatal(context string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %s\n", context, err)
	os.Exit(1)
}
