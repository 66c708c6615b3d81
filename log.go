package simplesat

import (
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
)

// LogrusTracer adapts a *logrus.Logger to the Tracer interface so a
// caller can wire the solver's branch/propagate tracing into structured
// logging instead of writing its own formatter.
type LogrusTracer struct {
	Log *logrus.Logger
}

// Tracef implements Tracer by emitting the message at debug level.
func (t *LogrusTracer) Tracef(format string, args ...interface{}) {
	t.Log.Debugf(format, args...)
}

// DebugSnapshot renders a pretty-printed snapshot of the solver's current
// trail and clause-satisfaction counters. It's meant for a Tracer to
// attach to a log line when something looks wrong (an assertion about to
// fail, an invariant check in a property test) — not for per-branch
// tracing, which would be far too noisy to pretty-print.
func (sv *Solver) DebugSnapshot() string {
	return pretty.Sprint(struct {
		NSatClauses   int
		NUnsatClauses int
		Trail         []int
	}{
		NSatClauses:   sv.nSatClauses,
		NUnsatClauses: sv.nUnsatClauses,
		Trail:         sv.trailSigned(),
	})
}

func (sv *Solver) trailSigned() []int {
	out := make([]int, len(sv.assigned))
	for i, l := range sv.assigned {
		out[i] = ToSigned(l)
	}
	return out
}
