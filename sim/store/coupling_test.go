package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storesim/storesim/sim"
	"github.com/storesim/storesim/sim/store/recorder"
)

// storeTopology builds the default generator/clerk/observer trio and its
// coupling for routing tests.
func storeTopology() (*CustomerGenerator, *Clerk, *StoreObserver, *StoreCoupling) {
	generator := NewCustomerGenerator(NewSchedule())
	clerk := NewClerk(ClerkID)
	observer := NewStoreObserver(recorder.NewLog())
	return generator, clerk, observer, NewStoreCoupling(generator, clerk, observer)
}

func TestStoreCoupling_ClerkDepartures_ReachObserver(t *testing.T) {
	// GIVEN the store topology
	_, clerk, observer, coupling := storeTopology()
	departed := Customer{TWait: 1, TEnter: 1, TLeave: 2}

	// WHEN the clerk emits a departure
	inputs := make(sim.InputBags)
	coupling.HandlePortValue(clerk.ModelID(), clerk.DepartPort().NewValue(departed), inputs)

	// THEN the customer lands on the observer's input port, and nowhere else
	require.Len(t, inputs, 1)
	bag := inputs[observer.ModelID()]
	require.Len(t, bag, 1)
	got, err := observer.InputPort().Value(bag[0])
	require.NoError(t, err)
	assert.Equal(t, departed, got)
}

func TestStoreCoupling_GeneratorReleases_ReachClerk(t *testing.T) {
	generator, clerk, _, coupling := storeTopology()
	entering := Customer{TWait: 4, TEnter: 2}

	inputs := make(sim.InputBags)
	coupling.HandlePortValue(generator.ModelID(), generator.OutputPort().NewValue(entering), inputs)

	require.Len(t, inputs, 1)
	bag := inputs[clerk.ModelID()]
	require.Len(t, bag, 1)
	got, err := clerk.ArrivePort().Value(bag[0])
	require.NoError(t, err)
	assert.Equal(t, entering, got)
}

func TestStoreCoupling_UnknownSender_DroppedSilently(t *testing.T) {
	// GIVEN a value from a sender outside the configured topology
	_, clerk, _, coupling := storeTopology()

	// WHEN it is routed
	inputs := make(sim.InputBags)
	coupling.HandlePortValue("wanderer", clerk.DepartPort().NewValue(Customer{}), inputs)

	// THEN it goes nowhere
	assert.Empty(t, inputs)
}

func TestStoreCoupling_ObserverEmissions_RouteNowhere(t *testing.T) {
	_, _, observer, coupling := storeTopology()

	inputs := make(sim.InputBags)
	coupling.HandlePortValue(observer.ModelID(), sim.PortValue{Port: "INPUT", Value: Customer{}}, inputs)

	assert.Empty(t, inputs)
}

func TestStoreCoupling_AddClerk_RoutesSecondClerkDepartures(t *testing.T) {
	// GIVEN a topology extended with a second clerk
	_, _, observer, coupling := storeTopology()
	clerk2 := NewClerk("clerk2")
	coupling.AddClerk(clerk2)
	departed := Customer{TWait: 2, TEnter: 3, TLeave: 5}

	// WHEN the second clerk emits a departure
	inputs := make(sim.InputBags)
	coupling.HandlePortValue(clerk2.ModelID(), clerk2.DepartPort().NewValue(departed), inputs)

	// THEN it reaches the observer like the first clerk's departures
	bag := inputs[observer.ModelID()]
	require.Len(t, bag, 1)
	got, err := observer.InputPort().Value(bag[0])
	require.NoError(t, err)
	assert.Equal(t, departed, got)
}

func TestStoreCoupling_PerDestinationOrder_FollowsHandlingOrder(t *testing.T) {
	generator, clerk, _, coupling := storeTopology()
	first := Customer{TWait: 1, TEnter: 2}
	second := Customer{TWait: 9, TEnter: 2}

	inputs := make(sim.InputBags)
	coupling.HandlePortValue(generator.ModelID(), generator.OutputPort().NewValue(first), inputs)
	coupling.HandlePortValue(generator.ModelID(), generator.OutputPort().NewValue(second), inputs)

	bag := inputs[clerk.ModelID()]
	require.Len(t, bag, 2)
	assert.Equal(t, first, bag[0].Value)
	assert.Equal(t, second, bag[1].Value)
}

func TestStoreCoupling_ClerkValueOnWrongPort_Panics(t *testing.T) {
	// GIVEN a clerk-role sender emitting on a port that is not "depart"
	_, clerk, _, coupling := storeTopology()
	misaddressed := sim.PortValue{Port: "arrive", Value: Customer{}}

	// THEN routing it is a topology bug
	assert.Panics(t, func() {
		coupling.HandlePortValue(clerk.ModelID(), misaddressed, make(sim.InputBags))
	})
}
