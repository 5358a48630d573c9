package store

import (
	"github.com/storesim/storesim/sim"
	"github.com/storesim/storesim/sim/store/recorder"
)

// ObserverID is the default identifier of the store observer.
const ObserverID = "customerObserver"

// StoreObserver is a stateless sink that records every customer delivered to
// its "INPUT" port. It never schedules events of its own.
type StoreObserver struct {
	id  string
	in  sim.Port[Customer]
	rec recorder.Recorder
}

// NewStoreObserver creates an observer forwarding departures to rec.
func NewStoreObserver(rec recorder.Recorder) *StoreObserver {
	return &StoreObserver{
		id:  ObserverID,
		in:  sim.NewPort[Customer]("INPUT"),
		rec: rec,
	}
}

// ModelID returns the observer's identifier.
func (o *StoreObserver) ModelID() string { return o.id }

// InputPort returns the port departures are delivered on.
func (o *StoreObserver) InputPort() sim.Port[Customer] { return o.in }

// TimeAdvance always returns Infinity; the observer is purely reactive.
func (o *StoreObserver) TimeAdvance(at sim.Time) sim.Time { return sim.Infinity }

// Output returns an empty bag; the observer emits nothing.
func (o *StoreObserver) Output() sim.Bag { return nil }

// InternalTransition is unreachable (TimeAdvance never schedules an event)
// and changes nothing.
func (o *StoreObserver) InternalTransition(at sim.Time) {}

// ExternalTransition records each delivered customer at the delivery instant.
func (o *StoreObserver) ExternalTransition(at sim.Time, inputs sim.Bag) {
	for _, pv := range inputs {
		customer := o.in.MustValue(pv)
		o.rec.Record(recorder.Departure{
			At:     at,
			TWait:  customer.TWait,
			TEnter: customer.TEnter,
			TLeave: customer.TLeave,
		})
	}
}

// ConfluentTransition behaves exactly like ExternalTransition.
func (o *StoreObserver) ConfluentTransition(at sim.Time, inputs sim.Bag) {
	o.ExternalTransition(at, inputs)
}
