// Package sim provides the parallel discrete-event simulation kernel for storesim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - model.go: the AtomicModel contract (time advance, output, three transition kinds)
//   - simulator.go: the per-model driver that enforces the event protocol
//   - coordinator.go: the joint-step loop that advances a set of models as one coupled model
//
// # Architecture
//
// The sim package defines the model contract and the drivers; concrete models live in
// sub-packages:
//   - sim/store/: the single-server store (customer generator, clerk, observer, routing)
//   - sim/workload/: customer schedule specs loaded from YAML
//   - sim/message/: the polymorphic JSON envelope used for bridge traffic
//
// Value types carried over the bridge register themselves via init() functions that call
// message.RegisterValue (sim/store registers Customer).
//
// # Event protocol
//
// Each model advances through alternating phases: the driver asks TimeAdvance for the
// next internal event, collects Output exactly at that instant, then applies one of the
// three transitions. Violations of this protocol (time moving backward, output collected
// away from the event instant, a transition past the scheduled event) are coordinator
// bugs and panic rather than return errors.
package sim
