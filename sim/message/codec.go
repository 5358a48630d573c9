package message

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/storesim/storesim/sim"
)

// Message type tags on the wire.
const (
	typeInitSim           = "InitSim"
	typeExecuteTransition = "ExecuteTransition"
	typeModelOutput       = "ModelOutput"
)

// Value type registry. Populated by RegisterValue calls from the packages that
// own the value types (sim/store registers Customer in its init).
var (
	valueDecoders = map[string]func(json.RawMessage) (any, error){}
	valueTags     = map[reflect.Type]string{}
)

// RegisterValue registers the concrete type T under tag for polymorphic
// encoding. Registering the same tag twice panics; registration happens in
// init functions, so a collision is a programming error.
func RegisterValue[T any](tag string) {
	if _, dup := valueDecoders[tag]; dup {
		panic(fmt.Sprintf("message: value tag %q registered twice", tag))
	}
	valueDecoders[tag] = func(raw json.RawMessage) (any, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decoding %s value: %w", tag, err)
		}
		return v, nil
	}
	valueTags[reflect.TypeOf((*T)(nil)).Elem()] = tag
}

// envelope is the wire form shared by all message types. The Type field
// discriminates; unused fields are omitted.
type envelope struct {
	Type    string          `json:"type"`
	Time    sim.Time        `json:"time"`
	Sender  string          `json:"sender,omitempty"`
	Inputs  []wirePortValue `json:"inputs,omitempty"`
	Outputs []wirePortValue `json:"outputs,omitempty"`
}

type wirePortValue struct {
	Port  string    `json:"port"`
	Value wireValue `json:"value"`
}

type wireValue struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Encode marshals msg into its tagged JSON envelope. Every value in the
// message's bags must have a registered type.
func Encode(msg any) ([]byte, error) {
	var env envelope
	switch m := msg.(type) {
	case InitSim:
		env = envelope{Type: typeInitSim, Time: m.Time}
	case ExecuteTransition:
		inputs, err := encodeBag(m.Inputs)
		if err != nil {
			return nil, err
		}
		env = envelope{Type: typeExecuteTransition, Time: m.Time, Inputs: inputs}
	case ModelOutput:
		outputs, err := encodeBag(m.Outputs)
		if err != nil {
			return nil, err
		}
		env = envelope{Type: typeModelOutput, Time: m.Time, Sender: m.Sender, Outputs: outputs}
	default:
		return nil, fmt.Errorf("encoding message: unsupported type %T", msg)
	}
	return json.Marshal(env)
}

// Decode unmarshals a tagged JSON envelope into the corresponding message
// value. Unknown message or value tags are data errors, not panics: bad bytes
// come from outside the process.
func Decode(data []byte) (any, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding message envelope: %w", err)
	}
	switch env.Type {
	case typeInitSim:
		return InitSim{Time: env.Time}, nil
	case typeExecuteTransition:
		inputs, err := decodeBag(env.Inputs)
		if err != nil {
			return nil, err
		}
		return ExecuteTransition{Time: env.Time, Inputs: inputs}, nil
	case typeModelOutput:
		outputs, err := decodeBag(env.Outputs)
		if err != nil {
			return nil, err
		}
		return ModelOutput{Time: env.Time, Sender: env.Sender, Outputs: outputs}, nil
	default:
		return nil, fmt.Errorf("decoding message: unknown type %q", env.Type)
	}
}

func encodeBag(bag sim.Bag) ([]wirePortValue, error) {
	if len(bag) == 0 {
		return nil, nil
	}
	wire := make([]wirePortValue, 0, len(bag))
	for _, pv := range bag {
		tag, ok := valueTags[reflect.TypeOf(pv.Value)]
		if !ok {
			return nil, fmt.Errorf("encoding port %q: no registered tag for value type %T", pv.Port, pv.Value)
		}
		data, err := json.Marshal(pv.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding port %q: %w", pv.Port, err)
		}
		wire = append(wire, wirePortValue{Port: pv.Port, Value: wireValue{Type: tag, Data: data}})
	}
	return wire, nil
}

func decodeBag(wire []wirePortValue) (sim.Bag, error) {
	if len(wire) == 0 {
		return nil, nil
	}
	bag := make(sim.Bag, 0, len(wire))
	for _, wpv := range wire {
		decode, ok := valueDecoders[wpv.Value.Type]
		if !ok {
			return nil, fmt.Errorf("decoding port %q: unknown value type %q", wpv.Port, wpv.Value.Type)
		}
		v, err := decode(wpv.Value.Data)
		if err != nil {
			return nil, fmt.Errorf("decoding port %q: %w", wpv.Port, err)
		}
		bag = append(bag, sim.PortValue{Port: wpv.Port, Value: v})
	}
	return bag, nil
}
