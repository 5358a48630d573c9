package sim

import "math"

// Time is a point on the simulation clock. Durations returned by TimeAdvance share the
// unit; the kernel never interprets it as wall time.
type Time = float64

// Infinity is the time-advance value of a model with no scheduled internal event.
// A passive model (observer, drained generator) returns it until input arrives.
var Infinity = math.Inf(1)

// IsInfinite reports whether t is the no-scheduled-event sentinel.
func IsInfinite(t Time) bool {
	return math.IsInf(t, 1)
}
