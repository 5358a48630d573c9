package store

import (
	"slices"
	"sort"

	"github.com/storesim/storesim/sim"
)

// ScheduleEntry groups the customers entering the store at one instant.
type ScheduleEntry struct {
	At        sim.Time
	Customers []Customer
}

// Schedule is a time-ordered arrival plan. Entries stay sorted by time;
// adding customers at an already-scheduled time extends that entry.
type Schedule struct {
	entries []ScheduleEntry
}

// NewSchedule returns an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{}
}

// Add schedules c to enter the store at time at.
func (s *Schedule) Add(at sim.Time, c Customer) {
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].At >= at })
	if i < len(s.entries) && s.entries[i].At == at {
		s.entries[i].Customers = append(s.entries[i].Customers, c)
		return
	}
	s.entries = slices.Insert(s.entries, i, ScheduleEntry{At: at, Customers: []Customer{c}})
}

// Empty reports whether no arrivals remain.
func (s *Schedule) Empty() bool { return len(s.entries) == 0 }

// Len returns the number of distinct arrival instants remaining.
func (s *Schedule) Len() int { return len(s.entries) }

// First returns the earliest remaining entry.
func (s *Schedule) First() (ScheduleEntry, bool) {
	if len(s.entries) == 0 {
		return ScheduleEntry{}, false
	}
	return s.entries[0], true
}

// RemoveFirst drops the earliest remaining entry. Removing from an empty
// schedule is a no-op.
func (s *Schedule) RemoveFirst() {
	if len(s.entries) == 0 {
		return
	}
	s.entries = s.entries[1:]
}
