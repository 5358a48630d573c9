package sim

import "fmt"

// PortValue pairs a port name with one value carried on it.
type PortValue struct {
	Port  string `json:"port"`
	Value any    `json:"value"`
}

// Bag is the set of port values a model emits or receives in one joint step.
// Order is meaningful: a receiver sees values in the order their senders were
// processed within the step.
type Bag []PortValue

// InputBags accumulates the values routed to each destination model during one
// joint step, keyed by model identifier.
type InputBags map[string]Bag

// Add appends pv to the bag destined for modelID, preserving arrival order.
func (b InputBags) Add(modelID string, pv PortValue) {
	b[modelID] = append(b[modelID], pv)
}

// Port is a typed endpoint on a model. Ports are construction-time configuration:
// a model and its coupling handler are built with the same Port values, so there is
// no process-wide port registry to agree on.
type Port[T any] struct {
	name string
}

// NewPort returns a port carrying values of type T under the given name.
func NewPort[T any](name string) Port[T] {
	return Port[T]{name: name}
}

// Name returns the wire name of the port.
func (p Port[T]) Name() string { return p.name }

// Matches reports whether pv is addressed to this port.
func (p Port[T]) Matches(pv PortValue) bool { return pv.Port == p.name }

// NewValue wraps v for transport on this port.
func (p Port[T]) NewValue(v T) PortValue {
	return PortValue{Port: p.name, Value: v}
}

// Value extracts the typed value from pv. It fails when pv is addressed to a
// different port or carries a value of the wrong type.
func (p Port[T]) Value(pv PortValue) (T, error) {
	var zero T
	if pv.Port != p.name {
		return zero, fmt.Errorf("port %q: value addressed to port %q", p.name, pv.Port)
	}
	v, ok := pv.Value.(T)
	if !ok {
		return zero, fmt.Errorf("port %q: unexpected value type %T", p.name, pv.Value)
	}
	return v, nil
}

// MustValue is like Value but panics on mismatch. Models use it inside transitions,
// where a mistyped or misaddressed value is a coupling bug rather than a data error.
func (p Port[T]) MustValue(pv PortValue) T {
	v, err := p.Value(pv)
	if err != nil {
		panic(err.Error())
	}
	return v
}
