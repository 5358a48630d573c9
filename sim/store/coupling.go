package store

import (
	"github.com/sirupsen/logrus"

	"github.com/storesim/storesim/sim"
)

// ModelRole classifies a sender for routing. The zero value means the sender
// is not part of the store's configured topology.
type ModelRole string

// Roles a sender can hold in the store topology.
const (
	RoleGenerator ModelRole = "generator"
	RoleClerk     ModelRole = "clerk"
	RoleObserver  ModelRole = "observer"
)

// StoreCoupling routes the store's traffic: every clerk's departures go to the
// observer, and the generator's releases go to one designated clerk. Senders
// are classified by a role map fixed at construction, never by inspecting
// identifier strings.
type StoreCoupling struct {
	roles       map[string]ModelRole
	targetClerk string
	observerID  string

	generatorOut sim.Port[Customer]
	clerkIn      sim.Port[Customer]
	clerkOut     sim.Port[Customer]
	observerIn   sim.Port[Customer]
}

// NewStoreCoupling wires generator's releases into clerk and clerk's
// departures into observer. Further clerks join the topology via AddClerk.
func NewStoreCoupling(generator *CustomerGenerator, clerk *Clerk, observer *StoreObserver) *StoreCoupling {
	return &StoreCoupling{
		roles: map[string]ModelRole{
			generator.ModelID(): RoleGenerator,
			clerk.ModelID():     RoleClerk,
			observer.ModelID():  RoleObserver,
		},
		targetClerk:  clerk.ModelID(),
		observerID:   observer.ModelID(),
		generatorOut: generator.OutputPort(),
		clerkIn:      clerk.ArrivePort(),
		clerkOut:     clerk.DepartPort(),
		observerIn:   observer.InputPort(),
	}
}

// AddClerk registers another clerk whose departures should also reach the
// observer. The generator keeps feeding the clerk given at construction.
func (sc *StoreCoupling) AddClerk(clerk *Clerk) {
	sc.roles[clerk.ModelID()] = RoleClerk
}

// HandlePortValue routes one emitted value by the sender's role. Values from
// senders outside the role map are dropped without error; bridged topologies
// rely on this when part of the store runs in another process and its traffic
// is routed there instead.
func (sc *StoreCoupling) HandlePortValue(sender string, pv sim.PortValue, inputs sim.InputBags) {
	switch sc.roles[sender] {
	case RoleClerk:
		inputs.Add(sc.observerID, sc.observerIn.NewValue(sc.clerkOut.MustValue(pv)))
	case RoleGenerator:
		inputs.Add(sc.targetClerk, sc.clerkIn.NewValue(sc.generatorOut.MustValue(pv)))
	case RoleObserver:
		// The observer emits nothing; there is nowhere to route.
	default:
		logrus.Debugf("store coupling: dropping value on port %q from unconfigured sender %q", pv.Port, sender)
	}
}
