package sim

// AtomicModel is the contract every simulated component implements. The driver
// (Simulator) owns the event protocol; models only answer these six questions.
//
// Transition methods mutate the model in place and are called from exactly one
// goroutine at a time; models never share state with each other, so the values
// they emit must be immutable (or treated as such) once placed in a Bag.
type AtomicModel interface {
	// ModelID returns the identifier used for routing and logging. Stable for
	// the lifetime of the simulation.
	ModelID() string

	// TimeAdvance returns the offset from at to the model's next internal event,
	// or Infinity when no internal event is scheduled. Never negative.
	TimeAdvance(at Time) Time

	// Output returns the values the model emits at its next internal event.
	// Called exactly once per imminent event, at that event's instant, before
	// the corresponding transition.
	Output() Bag

	// InternalTransition applies the model's scheduled state change at time at.
	InternalTransition(at Time)

	// ExternalTransition applies the arrival of inputs at time at, strictly
	// before the model's next internal event.
	ExternalTransition(at Time, inputs Bag)

	// ConfluentTransition resolves inputs arriving exactly at the instant of the
	// model's internal event. Models choose the resolution order; the store
	// models apply the internal transition first.
	ConfluentTransition(at Time, inputs Bag)
}
