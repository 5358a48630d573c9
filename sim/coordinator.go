package sim

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Coordinator advances a set of atomic models as one coupled model. Each joint
// step finds the minimum next event time across all drivers, collects the
// imminent models' outputs in registration order, routes them through the
// couplings into per-destination input bags, and then applies every affected
// model's transition for that instant.
//
// Transitions within a step run on separate goroutines: models are
// state-disjoint and the values exchanged between them are immutable, so the
// only synchronization needed is the barrier before the next step.
type Coordinator struct {
	simulators []*Simulator
	byID       map[string]*Simulator
	couplings  *Couplings
	clock      Time
	steps      int
}

// NewCoordinator creates a coordinator starting its clock at time at.
func NewCoordinator(at Time, couplings *Couplings) *Coordinator {
	return &Coordinator{
		byID:      make(map[string]*Simulator),
		couplings: couplings,
		clock:     at,
	}
}

// Register adds model to the coupled system. Registration order fixes the order
// in which outputs are collected and routed, and therefore the order in which
// coincident values arrive at a shared destination.
func (c *Coordinator) Register(model AtomicModel) {
	id := model.ModelID()
	if _, exists := c.byID[id]; exists {
		panic(fmt.Sprintf("model %s registered twice", id))
	}
	s := NewSimulator(model, c.clock)
	c.simulators = append(c.simulators, s)
	c.byID[id] = s
}

// Clock returns the time of the last executed joint step.
func (c *Coordinator) Clock() Time { return c.clock }

// Steps returns the number of joint steps executed so far.
func (c *Coordinator) Steps() int { return c.steps }

// NextTime returns the earliest next event time across all models, Infinity
// when every model is passive.
func (c *Coordinator) NextTime() Time {
	tn := Infinity
	for _, s := range c.simulators {
		if s.NextTime() < tn {
			tn = s.NextTime()
		}
	}
	return tn
}

// Step executes one joint step at the minimum next event time. It reports false
// without advancing when no model has a scheduled event.
func (c *Coordinator) Step() bool {
	tn := c.NextTime()
	if IsInfinite(tn) {
		return false
	}
	if tn < c.clock {
		panic(fmt.Sprintf("clock went backwards: %g < %g", tn, c.clock))
	}
	c.clock = tn
	c.steps++
	logrus.Debugf("joint step %d at t=%g", c.steps, tn)

	inputs := make(InputBags)
	for _, s := range c.simulators {
		if s.NextTime() == tn {
			c.couplings.Route(s.ModelID(), s.CollectOutput(tn), inputs)
		}
	}

	var wg sync.WaitGroup
	for _, s := range c.simulators {
		bag := inputs[s.ModelID()]
		if s.NextTime() != tn && len(bag) == 0 {
			continue
		}
		wg.Add(1)
		go func(s *Simulator, bag Bag) {
			defer wg.Done()
			s.Transition(tn, bag)
		}(s, bag)
	}
	wg.Wait()

	return true
}

// Run executes joint steps until the next event would fall past until, or no
// event remains. Events scheduled exactly at until still execute.
func (c *Coordinator) Run(until Time) {
	for {
		tn := c.NextTime()
		if IsInfinite(tn) || tn > until {
			logrus.Debugf("run finished at t=%g after %d joint steps", c.clock, c.steps)
			return
		}
		c.Step()
	}
}
