package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Simulator drives exactly one AtomicModel through the event protocol. It tracks
// the time of the model's last transition (tLast) and next internal event (tNext)
// and decides which transition kind each advance of the clock requires.
//
// Simulators are not safe for concurrent use; the Coordinator serializes access
// to each one.
type Simulator struct {
	model AtomicModel
	tLast Time
	tNext Time
}

// NewSimulator initializes the driver for model at simulation time at.
func NewSimulator(model AtomicModel, at Time) *Simulator {
	s := &Simulator{model: model, tLast: at}
	s.tNext = at + s.timeAdvance(at)
	return s
}

// Model returns the driven model.
func (s *Simulator) Model() AtomicModel { return s.model }

// ModelID returns the driven model's identifier.
func (s *Simulator) ModelID() string { return s.model.ModelID() }

// NextTime returns the absolute time of the model's next internal event,
// Infinity when none is scheduled.
func (s *Simulator) NextTime() Time { return s.tNext }

// CollectOutput returns the model's output bag for its internal event at time at.
// Output is only defined at the imminent instant; collecting it at any other time
// is a coordinator bug.
func (s *Simulator) CollectOutput(at Time) Bag {
	if IsInfinite(s.tNext) {
		panic(fmt.Sprintf("model %s: output collected with no scheduled internal event", s.ModelID()))
	}
	if at != s.tNext {
		panic(fmt.Sprintf("model %s: output collected at %g, next event at %g", s.ModelID(), at, s.tNext))
	}
	return s.model.Output()
}

// Transition advances the model to time at, applying the internal, external, or
// confluent transition as the protocol dictates, then reschedules the next
// internal event from the model's new state.
func (s *Simulator) Transition(at Time, inputs Bag) {
	if at < s.tLast {
		panic(fmt.Sprintf("model %s: clock went backwards: %g < %g", s.ModelID(), at, s.tLast))
	}
	if at > s.tNext {
		panic(fmt.Sprintf("model %s: missed internal event: transition at %g, next event at %g", s.ModelID(), at, s.tNext))
	}

	switch {
	case at == s.tNext && len(inputs) == 0:
		logrus.Debugf("model %s: internal transition at %g", s.ModelID(), at)
		s.model.InternalTransition(at)
	case at == s.tNext:
		logrus.Debugf("model %s: confluent transition at %g with %d inputs", s.ModelID(), at, len(inputs))
		s.model.ConfluentTransition(at, inputs)
	case len(inputs) > 0:
		logrus.Debugf("model %s: external transition at %g with %d inputs", s.ModelID(), at, len(inputs))
		s.model.ExternalTransition(at, inputs)
	default:
		panic(fmt.Sprintf("model %s: transition at %g with no event and no inputs", s.ModelID(), at))
	}

	s.tLast = at
	s.tNext = at + s.timeAdvance(at)
}

// timeAdvance queries the model and validates the result. A negative or NaN
// advance is a model bug.
func (s *Simulator) timeAdvance(at Time) Time {
	ta := s.model.TimeAdvance(at)
	if math.IsNaN(ta) || ta < 0 {
		panic(fmt.Sprintf("model %s: invalid time advance %g at %g", s.ModelID(), ta, at))
	}
	return ta
}
