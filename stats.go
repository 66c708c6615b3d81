package simplesat

import "time"

// Stats holds the performance counters and timing of a single Solve call.
// The set of fields may grow over time; treat this as append-only.
type Stats struct {
	Branches         int64
	UnitPropagations int64

	StartTime time.Time
	StopTime  time.Time
}

// Elapsed returns the wall-clock duration of the solve.
func (s Stats) Elapsed() time.Duration {
	return s.StopTime.Sub(s.StartTime)
}
