package dlx

import "fmt"

// invariant panics if cond is false. Internal link/size/pairing invariants
// are bugs, not user-visible errors (spec.md §7: "all internal invariants
// ... are assertions, not runtime errors"), so they panic rather than
// returning an error that a caller might plausibly recover from.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("dlx: invariant violated: "+format, args...))
	}
}
