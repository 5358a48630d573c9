// Package message defines the wire messages a simulation bridge exchanges with
// model drivers, and a JSON codec for them. Messages carry polymorphic model
// values; each value type registers a tag via RegisterValue so the decoder can
// recover concrete types from tagged JSON.
package message

import "github.com/storesim/storesim/sim"

// InitSim starts a model driver at the given simulation time.
type InitSim struct {
	Time sim.Time
}

// ExecuteTransition delivers a transition instant together with the input
// values routed to the receiving model. An empty Inputs bag requests the
// internal transition.
type ExecuteTransition struct {
	Time   sim.Time
	Inputs sim.Bag
}

// ModelOutput reports the values a model emitted at its event instant.
type ModelOutput struct {
	Time    sim.Time
	Sender  string
	Outputs sim.Bag
}
