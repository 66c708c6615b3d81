package simplesat

import (
	"strings"
	"testing"
)

func TestDebugSnapshot(t *testing.T) {
	sv, err := ParseDIMACS(strings.NewReader("p cnf 3 2\n1 -3 0\n2 3 -1 0\n"))
	if err != nil {
		t.Fatalf("ParseDIMACS: %s", err)
	}
	if sol := sv.Solve(); sol != Satisfiable {
		t.Fatalf("Solve() = %s, want SATISFIABLE", sol)
	}

	snap := sv.DebugSnapshot()
	for _, want := range []string{"NSatClauses", "NUnsatClauses", "Trail"} {
		if !strings.Contains(snap, want) {
			t.Errorf("DebugSnapshot() missing field %q:\n%s", want, snap)
		}
	}
}
