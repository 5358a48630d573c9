// Package store implements the single-server store as atomic models: a
// CustomerGenerator releasing customers on a fixed schedule, a Clerk serving
// them one at a time in arrival order, and a StoreObserver recording each
// departure. StoreCoupling wires the three together for a Coordinator.
package store

import "github.com/storesim/storesim/sim"

// Customer is the value passed between the store models. A customer is
// immutable once emitted; state changes produce new values.
//
// The JSON field names are the wire contract for bridged simulations: exactly
// twait, tenter and tleave, all numeric.
type Customer struct {
	// TWait is the service duration the customer requires at the clerk.
	TWait sim.Time `json:"twait"`
	// TEnter is the instant the customer enters the store.
	TEnter sim.Time `json:"tenter"`
	// TLeave is the instant the customer departs. Zero until service is
	// scheduled.
	TLeave sim.Time `json:"tleave"`
}

// WithTLeave returns a copy of c with the departure time set.
func (c Customer) WithTLeave(t sim.Time) Customer {
	c.TLeave = t
	return c
}
