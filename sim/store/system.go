package store

import (
	"github.com/storesim/storesim/sim"
	"github.com/storesim/storesim/sim/store/recorder"
)

// ClerkID is the identifier of the clerk the default store topology feeds.
const ClerkID = "clerk1"

// System is the assembled store: one generator, one clerk, one observer,
// coupled under a coordinator. Models transition in registration order
// (generator, clerk, observer) whenever their events coincide.
type System struct {
	Generator   *CustomerGenerator
	Clerk       *Clerk
	Observer    *StoreObserver
	Coordinator *sim.Coordinator
}

// NewSystem assembles the store around schedule, starting the clock at 0 and
// forwarding every observed departure to rec.
func NewSystem(schedule *Schedule, rec recorder.Recorder) *System {
	generator := NewCustomerGenerator(schedule)
	clerk := NewClerk(ClerkID)
	observer := NewStoreObserver(rec)

	coordinator := sim.NewCoordinator(0, sim.NewCouplings(
		NewStoreCoupling(generator, clerk, observer),
	))
	coordinator.Register(generator)
	coordinator.Register(clerk)
	coordinator.Register(observer)

	return &System{
		Generator:   generator,
		Clerk:       clerk,
		Observer:    observer,
		Coordinator: coordinator,
	}
}

// Run executes the store until the given horizon; events scheduled exactly at
// the horizon still execute.
func (s *System) Run(until sim.Time) {
	s.Coordinator.Run(until)
}
