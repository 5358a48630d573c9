// Package recorder collects the departures observed during a store run.
//
// The observer model calls Record from inside a transition, so the Recorder
// implementations here stay in memory; persisting to SQLite is a separate,
// post-run step (Store.AppendAll).
package recorder

import "github.com/sirupsen/logrus"

// Departure is one observed customer departure.
type Departure struct {
	// At is the instant the observer saw the customer.
	At     float64
	TWait  float64
	TEnter float64
	TLeave float64
}

// Recorder receives departures as the observer sees them. Record must not
// block: it runs inside a model transition.
type Recorder interface {
	Record(d Departure)
}

// Log keeps departures in memory, logging each one as it is observed.
type Log struct {
	departures []Departure
}

// NewLog returns an empty in-memory recorder.
func NewLog() *Log {
	return &Log{}
}

// Record appends d and logs it.
func (l *Log) Record(d Departure) {
	l.departures = append(l.departures, d)
	logrus.Infof("customer leaving at %g after a wait of %g", d.At, d.TWait)
}

// Departures returns the recorded departures in observation order. The
// returned slice is the recorder's own; callers must not mutate it.
func (l *Log) Departures() []Departure {
	return l.departures
}
