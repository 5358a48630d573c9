package store

import (
	"fmt"

	"github.com/storesim/storesim/sim"
)

// timeTolerance absorbs float64 round-trip error when a transition instant is
// checked against a model-computed event time.
const timeTolerance = 1e-9

// Clerk serves customers one at a time in arrival order. Its state is the
// queue of customers in the store: the head is in service and carries its
// final departure time, everyone behind it still has TLeave zero.
type Clerk struct {
	id    string
	in    sim.Port[Customer]
	out   sim.Port[Customer]
	queue []Customer
}

// NewClerk creates an idle clerk with the given model identifier. Customers
// arrive on port "arrive" and depart on port "depart".
func NewClerk(id string) *Clerk {
	return &Clerk{
		id:  id,
		in:  sim.NewPort[Customer]("arrive"),
		out: sim.NewPort[Customer]("depart"),
	}
}

// ModelID returns the clerk's identifier.
func (c *Clerk) ModelID() string { return c.id }

// ArrivePort returns the clerk's input port.
func (c *Clerk) ArrivePort() sim.Port[Customer] { return c.in }

// DepartPort returns the clerk's output port.
func (c *Clerk) DepartPort() sim.Port[Customer] { return c.out }

// QueueLength reports how many customers are at the clerk, the one in service
// included.
func (c *Clerk) QueueLength() int { return len(c.queue) }

// TimeAdvance returns the time until the customer in service departs, Infinity
// when the store is empty.
func (c *Clerk) TimeAdvance(at sim.Time) sim.Time {
	if len(c.queue) == 0 {
		return sim.Infinity
	}
	// A clock carried through the driver can land an ulp past TLeave; the
	// advance clamps at zero rather than going negative.
	ta := c.queue[0].TLeave - at
	if ta < 0 {
		return 0
	}
	return ta
}

// Output emits the departing customer, final departure time included.
func (c *Clerk) Output() sim.Bag {
	if len(c.queue) == 0 {
		panic(fmt.Sprintf("clerk %s: output requested with no customer in service", c.id))
	}
	return sim.Bag{c.out.NewValue(c.queue[0])}
}

// InternalTransition removes the departing customer and starts serving the
// next one, if any. Calling it with an empty queue or away from the head's
// departure time is a driver bug.
func (c *Clerk) InternalTransition(at sim.Time) {
	if len(c.queue) == 0 {
		panic(fmt.Sprintf("clerk %s: departure with no customer in service", c.id))
	}
	if d := at - c.queue[0].TLeave; d < -timeTolerance || d > timeTolerance {
		panic(fmt.Sprintf("clerk %s: departure at %g, customer in service leaves at %g", c.id, at, c.queue[0].TLeave))
	}
	c.queue = c.queue[1:]
	if len(c.queue) > 0 {
		c.serveNext(at)
	}
}

// ExternalTransition appends each arriving customer in bag order. An arrival
// that finds the store empty starts service immediately.
func (c *Clerk) ExternalTransition(at sim.Time, inputs sim.Bag) {
	for _, pv := range inputs {
		c.queue = append(c.queue, c.in.MustValue(pv))
		if len(c.queue) == 1 {
			c.serveNext(at)
		}
	}
}

// ConfluentTransition resolves an arrival coincident with a departure: the
// departure completes first, then the arrival joins like any other. An arrival
// that finds the store emptied by that departure starts service at once.
func (c *Clerk) ConfluentTransition(at sim.Time, inputs sim.Bag) {
	c.InternalTransition(at)
	c.ExternalTransition(at, inputs)
}

// serveNext stamps the head customer with its departure time.
func (c *Clerk) serveNext(at sim.Time) {
	c.queue[0] = c.queue[0].WithTLeave(at + c.queue[0].TWait)
}
