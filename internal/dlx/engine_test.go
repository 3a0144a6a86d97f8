package dlx

import "testing"

// countingInterference records the multiset of Commit/Rollback calls so
// tests can assert they are paired (spec.md §8.1 "Paired notifications").
// Accepts rejects any row whose payload is in the reject set, to exercise
// the "skip without pushing" path of spec.md §4.3.
type countingInterference struct {
	commits, rollbacks int
	reject             map[string]bool
}

func (c *countingInterference) Accepts(_ RowID, payload string) bool {
	return !c.reject[payload]
}
func (c *countingInterference) Commit(_ RowID, _ string)   { c.commits++ }
func (c *countingInterference) Rollback(_ RowID, _ string) { c.rollbacks++ }

func TestInterferenceNotificationsArePaired(t *testing.T) {
	m, _ := knuthExample(t)
	interf := &countingInterference{reject: map[string]bool{}}
	m.SetInterference(interf)

	count := 0
	for range m.Solve() {
		count++
	}

	if interf.commits != interf.rollbacks {
		t.Fatalf("commits (%d) != rollbacks (%d)", interf.commits, interf.rollbacks)
	}
	if interf.commits == 0 {
		t.Fatal("expected at least one commit during search")
	}
	if count != 1 {
		t.Fatalf("expected 1 solution, got %d", count)
	}
}

func TestInterferenceRejectionPrunesSearch(t *testing.T) {
	m, _ := knuthExample(t)
	// "BG" is the only row that can cover secondary column G; rejecting
	// it must leave zero solutions, since B can then only be covered by
	// "BCF", which clashes on C with "CEF", the only row covering E.
	interf := &countingInterference{reject: map[string]bool{"BG": true}}
	m.SetInterference(interf)

	count := 0
	for range m.Solve() {
		count++
	}
	if count != 0 {
		t.Fatalf("expected rejection of BG to eliminate the only solution, got %d solutions", count)
	}
	if interf.commits != interf.rollbacks {
		t.Fatalf("commits (%d) != rollbacks (%d) even on the rejecting path", interf.commits, interf.rollbacks)
	}
}

func TestNoInterferenceAcceptsEverything(t *testing.T) {
	m, _ := knuthExample(t)
	count := 0
	for range m.Solve() {
		count++
	}
	if count != 1 {
		t.Fatalf("expected 1 solution with no interference installed, got %d", count)
	}
}

func TestNoOpInterferenceBehavesLikeNoInterference(t *testing.T) {
	m, _ := knuthExample(t)
	m.SetInterference(NoOp[string]{})
	count := 0
	for range m.Solve() {
		count++
	}
	if count != 1 {
		t.Fatalf("expected 1 solution with NoOp interference, got %d", count)
	}
}
