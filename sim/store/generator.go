package store

import (
	"fmt"

	"github.com/storesim/storesim/sim"
)

// GeneratorID is the default identifier of the customer generator.
const GeneratorID = "customerGenerator"

// CustomerGenerator releases customers into the store on a fixed schedule.
// Each scheduled instant is emitted exactly once: the entry leaves the
// schedule in the internal transition that immediately follows its emission.
type CustomerGenerator struct {
	id       string
	out      sim.Port[Customer]
	schedule *Schedule
}

// NewCustomerGenerator creates a generator draining schedule on port "OUTPUT".
func NewCustomerGenerator(schedule *Schedule) *CustomerGenerator {
	return &CustomerGenerator{
		id:       GeneratorID,
		out:      sim.NewPort[Customer]("OUTPUT"),
		schedule: schedule,
	}
}

// ModelID returns the generator's identifier.
func (g *CustomerGenerator) ModelID() string { return g.id }

// OutputPort returns the port customers are released on.
func (g *CustomerGenerator) OutputPort() sim.Port[Customer] { return g.out }

// TimeAdvance returns the time until the next scheduled arrival instant,
// Infinity once the schedule is drained.
func (g *CustomerGenerator) TimeAdvance(at sim.Time) sim.Time {
	first, ok := g.schedule.First()
	if !ok {
		return sim.Infinity
	}
	ta := first.At - at
	if ta < 0 {
		return 0
	}
	return ta
}

// Output emits every customer scheduled for the earliest remaining instant,
// unaltered and in schedule order.
func (g *CustomerGenerator) Output() sim.Bag {
	first, ok := g.schedule.First()
	if !ok {
		panic(fmt.Sprintf("generator %s: output requested with an empty schedule", g.id))
	}
	bag := make(sim.Bag, 0, len(first.Customers))
	for _, customer := range first.Customers {
		bag = append(bag, g.out.NewValue(customer))
	}
	return bag
}

// InternalTransition drops the entry whose customers were just emitted.
func (g *CustomerGenerator) InternalTransition(at sim.Time) {
	first, ok := g.schedule.First()
	if !ok {
		panic(fmt.Sprintf("generator %s: emission with an empty schedule", g.id))
	}
	if d := at - first.At; d < -timeTolerance || d > timeTolerance {
		panic(fmt.Sprintf("generator %s: emission at %g, first arrivals scheduled at %g", g.id, at, first.At))
	}
	g.schedule.RemoveFirst()
}

// ExternalTransition is a no-op: the generator has no input ports.
func (g *CustomerGenerator) ExternalTransition(at sim.Time, inputs sim.Bag) {}

// ConfluentTransition is a no-op for the same reason; nothing routes input to
// the generator, so the collision cannot arise.
func (g *CustomerGenerator) ConfluentTransition(at sim.Time, inputs sim.Bag) {}
