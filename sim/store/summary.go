package store

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/storesim/storesim/sim/store/recorder"
)

// Summary aggregates the departures of a run for final reporting.
type Summary struct {
	Departures int

	// Service time is the duration a customer spends with the clerk (twait).
	MeanService   float64
	StdDevService float64
	MinService    float64
	MaxService    float64
	P95Service    float64

	// Time in store spans entering to leaving (tleave - tenter): queueing
	// plus service.
	MeanTimeInStore float64
	MinTimeInStore  float64
	MaxTimeInStore  float64
	P95TimeInStore  float64
}

// Summarize computes aggregate statistics over the recorded departures.
// Safe for empty input (returns zero-value fields).
func Summarize(departures []recorder.Departure) *Summary {
	s := &Summary{Departures: len(departures)}
	if len(departures) == 0 {
		return s
	}

	service := make([]float64, 0, len(departures))
	inStore := make([]float64, 0, len(departures))
	for _, d := range departures {
		service = append(service, d.TWait)
		inStore = append(inStore, d.TLeave-d.TEnter)
	}
	sort.Float64s(service)
	sort.Float64s(inStore)

	s.MeanService = stat.Mean(service, nil)
	s.MinService = service[0]
	s.MaxService = service[len(service)-1]
	s.P95Service = stat.Quantile(0.95, stat.Empirical, service, nil)
	s.MeanTimeInStore = stat.Mean(inStore, nil)
	s.MinTimeInStore = inStore[0]
	s.MaxTimeInStore = inStore[len(inStore)-1]
	s.P95TimeInStore = stat.Quantile(0.95, stat.Empirical, inStore, nil)
	if len(service) > 1 {
		s.StdDevService = stat.StdDev(service, nil)
	}
	return s
}

// Print displays the summary at the end of a run.
func (s *Summary) Print(clock float64, steps int) {
	fmt.Println("=== Store Simulation Summary ===")
	fmt.Printf("Departures           : %d\n", s.Departures)
	fmt.Printf("Final Clock          : %g\n", clock)
	fmt.Printf("Joint Steps          : %d\n", steps)
	if s.Departures > 0 {
		fmt.Printf("Mean Service Time    : %.2f\n", s.MeanService)
		fmt.Printf("StdDev Service Time  : %.2f\n", s.StdDevService)
		fmt.Printf("Min Service Time     : %.2f\n", s.MinService)
		fmt.Printf("Max Service Time     : %.2f\n", s.MaxService)
		fmt.Printf("P95 Service Time     : %.2f\n", s.P95Service)
		fmt.Printf("Mean Time In Store   : %.2f\n", s.MeanTimeInStore)
		fmt.Printf("Min Time In Store    : %.2f\n", s.MinTimeInStore)
		fmt.Printf("Max Time In Store    : %.2f\n", s.MaxTimeInStore)
		fmt.Printf("P95 Time In Store    : %.2f\n", s.P95TimeInStore)
	}
}
