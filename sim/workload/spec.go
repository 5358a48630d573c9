// Package workload loads customer arrival schedules for store simulations.
package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/storesim/storesim/sim/store"
)

// DefaultUntil is the horizon used when neither the spec nor the caller
// provides one.
const DefaultUntil = 50.0

// ScheduleSpec is the top-level schedule configuration.
// Loaded from YAML via LoadScheduleSpec(path).
type ScheduleSpec struct {
	// Until bounds the run; events scheduled exactly at Until still execute.
	// Zero falls back to the caller's horizon.
	Until     float64        `yaml:"until,omitempty"`
	Customers []CustomerSpec `yaml:"customers"`
}

// CustomerSpec schedules one customer: when they enter the store and how much
// clerk time they need.
type CustomerSpec struct {
	Enter float64 `yaml:"enter"`
	Wait  float64 `yaml:"wait"`
}

// LoadScheduleSpec reads and parses a YAML schedule specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScheduleSpec(path string) (*ScheduleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule spec: %w", err)
	}
	var spec ScheduleSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing schedule spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *ScheduleSpec) Validate() error {
	if len(s.Customers) == 0 {
		return fmt.Errorf("at least one customer required")
	}
	if err := validateFiniteNonNegative("until", s.Until); err != nil {
		return err
	}
	for i, c := range s.Customers {
		prefix := fmt.Sprintf("customer[%d]", i)
		if err := validateFiniteNonNegative(prefix+".enter", c.Enter); err != nil {
			return err
		}
		if err := validateFiniteNonNegative(prefix+".wait", c.Wait); err != nil {
			return err
		}
	}
	return nil
}

// BuildSchedule converts the spec into the generator's arrival plan. Customers
// sharing an enter time group into one arrival instant, in spec order.
func (s *ScheduleSpec) BuildSchedule() *store.Schedule {
	schedule := store.NewSchedule()
	for _, c := range s.Customers {
		schedule.Add(c.Enter, store.Customer{TWait: c.Wait, TEnter: c.Enter})
	}
	return schedule
}

// DefaultSpec returns the built-in schedule: eight customers entering between
// t=1 and t=11, run to t=50.
func DefaultSpec() *ScheduleSpec {
	return &ScheduleSpec{
		Until: 50,
		Customers: []CustomerSpec{
			{Enter: 1, Wait: 1},
			{Enter: 2, Wait: 4},
			{Enter: 3, Wait: 4},
			{Enter: 5, Wait: 2},
			{Enter: 7, Wait: 10},
			{Enter: 8, Wait: 20},
			{Enter: 10, Wait: 2},
			{Enter: 11, Wait: 1},
		},
	}
}

func validateFiniteNonNegative(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 {
		return fmt.Errorf("%s must be non-negative, got %f", name, val)
	}
	return nil
}
