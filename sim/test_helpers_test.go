package sim

import "fmt"

// scriptModel is a controllable model for driver tests. TimeAdvance always
// returns ta, Output always returns out, and every call is appended to log.
type scriptModel struct {
	id  string
	ta  Time
	out Bag
	log []string
}

func (m *scriptModel) ModelID() string          { return m.id }
func (m *scriptModel) TimeAdvance(at Time) Time { return m.ta }

func (m *scriptModel) Output() Bag {
	m.log = append(m.log, "output")
	return m.out
}

func (m *scriptModel) InternalTransition(at Time) {
	m.log = append(m.log, fmt.Sprintf("internal@%g", at))
}

func (m *scriptModel) ExternalTransition(at Time, inputs Bag) {
	m.log = append(m.log, fmt.Sprintf("external@%g(%d)", at, len(inputs)))
}

func (m *scriptModel) ConfluentTransition(at Time, inputs Bag) {
	m.log = append(m.log, fmt.Sprintf("confluent@%g(%d)", at, len(inputs)))
}

// tickerModel emits its identifier on port "out" every interval, limit times,
// then goes passive. External input is ignored but recorded.
type tickerModel struct {
	id       string
	interval Time
	limit    int
	sent     int
	nextAt   Time
}

func newTicker(id string, interval Time, limit int) *tickerModel {
	return &tickerModel{id: id, interval: interval, limit: limit, nextAt: interval}
}

func (m *tickerModel) ModelID() string { return m.id }

func (m *tickerModel) TimeAdvance(at Time) Time {
	if m.sent >= m.limit {
		return Infinity
	}
	return m.nextAt - at
}

func (m *tickerModel) Output() Bag {
	return Bag{{Port: "out", Value: m.id}}
}

func (m *tickerModel) InternalTransition(at Time) {
	m.sent++
	m.nextAt = at + m.interval
}

func (m *tickerModel) ExternalTransition(at Time, inputs Bag) {}

func (m *tickerModel) ConfluentTransition(at Time, inputs Bag) {
	m.InternalTransition(at)
}

// received is one delivery observed by a sinkModel.
type received struct {
	at    Time
	value any
	kind  string
}

// sinkModel is passive unless given a single scheduled event time; it records
// every delivery with the transition kind that carried it.
type sinkModel struct {
	id      string
	eventAt Time // 0 means never
	fired   bool
	got     []received
}

func (m *sinkModel) ModelID() string { return m.id }

func (m *sinkModel) TimeAdvance(at Time) Time {
	if m.eventAt > 0 && !m.fired {
		return m.eventAt - at
	}
	return Infinity
}

func (m *sinkModel) Output() Bag { return nil }

func (m *sinkModel) InternalTransition(at Time) { m.fired = true }

func (m *sinkModel) ExternalTransition(at Time, inputs Bag) {
	for _, pv := range inputs {
		m.got = append(m.got, received{at: at, value: pv.Value, kind: "external"})
	}
}

func (m *sinkModel) ConfluentTransition(at Time, inputs Bag) {
	m.fired = true
	for _, pv := range inputs {
		m.got = append(m.got, received{at: at, value: pv.Value, kind: "confluent"})
	}
}

// forwardCoupling routes everything emitted on fromPort by any sender in froms
// to port "in" of the model named to.
type forwardCoupling struct {
	froms    map[string]bool
	fromPort string
	to       string
}

func (f *forwardCoupling) HandlePortValue(sender string, pv PortValue, inputs InputBags) {
	if !f.froms[sender] || pv.Port != f.fromPort {
		return
	}
	inputs.Add(f.to, PortValue{Port: "in", Value: pv.Value})
}
