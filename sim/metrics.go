// Tracks simulation-wide and per-request metrics: head movement, elapsed ticks,
// turnaround and wait times.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about a finished simulation for final reporting.
type Metrics struct {
	CompletedRequests int     // Number of requests completed
	Elapsed           int64   // Last simulated tick
	Movement          int64   // Total tracks crossed by the head
	AvgTurnaround     float64 // Mean of EndTime - ArrivalTime
	AvgWait           float64 // Mean of StartTime - ArrivalTime
	MaxWait           int64   // Largest StartTime - ArrivalTime

	WaitDistribution       Distribution
	TurnaroundDistribution Distribution
}

// NewMetrics computes the aggregate metrics over a finished request set.
func NewMetrics(reqs []*Request, elapsed, movement int64) *Metrics {
	m := &Metrics{
		Elapsed:       elapsed,
		Movement:      movement,
		AvgTurnaround: AverageTurnaround(reqs),
		AvgWait:       AverageWait(reqs),
		MaxWait:       MaxWait(reqs),
	}
	waits := make([]int64, 0, len(reqs))
	turnarounds := make([]int64, 0, len(reqs))
	for _, r := range reqs {
		if r.Completed() {
			m.CompletedRequests++
			turnarounds = append(turnarounds, r.TurnaroundTime)
		}
		if r.Started() {
			waits = append(waits, r.WaitTime)
		}
	}
	m.WaitDistribution = NewDistribution(waits)
	m.TurnaroundDistribution = NewDistribution(turnarounds)
	return m
}

// AverageTurnaround returns the mean turnaround time over all requests, 0 for none.
func AverageTurnaround(reqs []*Request) float64 {
	values := make([]int64, len(reqs))
	for i, r := range reqs {
		values[i] = r.TurnaroundTime
	}
	return CalculateMean(values)
}

// AverageWait returns the mean wait time over all requests, 0 for none.
func AverageWait(reqs []*Request) float64 {
	values := make([]int64, len(reqs))
	for i, r := range reqs {
		values[i] = r.WaitTime
	}
	return CalculateMean(values)
}

// MaxWait returns the largest wait time over all requests, 0 for none.
func MaxWait(reqs []*Request) int64 {
	var maxWait int64
	for _, r := range reqs {
		if r.WaitTime > maxWait {
			maxWait = r.WaitTime
		}
	}
	return maxWait
}

// Print writes the summary line:
// "SUM: elapsed movement avg_turnaround avg_wait max_wait".
func (m *Metrics) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "SUM: %d %d %.2f %.2f %d\n", m.Elapsed, m.Movement, m.AvgTurnaround, m.AvgWait, m.MaxWait)
	return err
}

// PrintDistributions writes wait and turnaround percentiles.
func (m *Metrics) PrintDistributions(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "WAIT: %s\n", m.WaitDistribution); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "TURNAROUND: %s\n", m.TurnaroundDistribution)
	return err
}

// PrintRequests writes one "id: arrival start end" line per request.
func PrintRequests(w io.Writer, reqs []*Request) error {
	for _, r := range reqs {
		if _, err := fmt.Fprintf(w, "%5d: %5d %5d %5d\n", r.ID, r.ArrivalTime, r.StartTime, r.EndTime); err != nil {
			return err
		}
	}
	return nil
}
