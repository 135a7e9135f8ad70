package sim

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/disk-sim/sim/internal/testutil"
	"github.com/inference-sim/disk-sim/sim/trace"
)

// parseGoldenInput reads "arrival track" lines; kept local to avoid importing sim/workload.
func parseGoldenInput(t *testing.T, input string) []Arrival {
	t.Helper()
	var arrivals []Arrival
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var a Arrival
		_, err := fmt.Sscanf(line, "%d %d", &a.ArrivalTime, &a.Track)
		require.NoError(t, err, line)
		arrivals = append(arrivals, a)
	}
	return arrivals
}

func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests)

	for _, tc := range dataset.Tests {
		for _, policy := range tc.Policies {
			t.Run(tc.Name+"/"+policy, func(t *testing.T) {
				// GIVEN the golden request file
				s := NewSimulator(SimConfig{Policy: policy}, parseGoldenInput(t, tc.Input))

				// WHEN the simulation runs to completion
				m := s.Run()

				// THEN the summary and per-request rows match
				assert.Equal(t, tc.Metrics.Elapsed, m.Elapsed, "elapsed")
				assert.Equal(t, tc.Metrics.Movement, m.Movement, "movement")
				testutil.AssertFloat64Equal(t, "avg_turnaround", tc.Metrics.AvgTurnaround, m.AvgTurnaround, 0.005)
				testutil.AssertFloat64Equal(t, "avg_wait", tc.Metrics.AvgWait, m.AvgWait, 0.005)
				assert.Equal(t, tc.Metrics.MaxWait, m.MaxWait, "max_wait")

				reqs := s.Requests()
				require.Len(t, reqs, len(tc.Requests))
				for i, row := range tc.Requests {
					got := []int64{int64(reqs[i].ID), reqs[i].ArrivalTime, reqs[i].StartTime, reqs[i].EndTime}
					assert.Equal(t, row, got, "request %d", i)
					assert.Equal(t, StateComplete, reqs[i].State)
				}
			})
		}
	}
}

func TestSimulator_SameTrackPair_DrainsOnArrivalTick(t *testing.T) {
	// GIVEN two requests for track 5 arriving at tick 0
	for _, policy := range PolicyNames {
		t.Run(policy, func(t *testing.T) {
			s := NewSimulator(SimConfig{Policy: policy}, []Arrival{{0, 5}, {0, 5}})

			// WHEN simulated
			m := s.Run()

			// THEN both finish at tick 5 and turnaround equals end time
			assert.Equal(t, int64(5), m.Movement)
			for _, r := range s.Requests() {
				assert.Equal(t, int64(5), r.EndTime)
				assert.Equal(t, r.EndTime, r.TurnaroundTime)
			}
			second := s.Requests()[1]
			assert.Equal(t, int64(5), second.StartTime)
			assert.Equal(t, second.WaitTime, second.TurnaroundTime)
		})
	}
}

func TestSimulator_EmptyInput_ZeroMetrics(t *testing.T) {
	s := NewSimulator(SimConfig{Policy: PolicyFIFO}, nil)
	m := s.Run()

	assert.Equal(t, int64(0), m.Elapsed)
	assert.Equal(t, int64(0), m.Movement)
	assert.Equal(t, 0.0, m.AvgTurnaround)
	assert.Equal(t, 0.0, m.AvgWait)
	assert.Equal(t, int64(0), m.MaxWait)
	assert.Equal(t, 0, m.CompletedRequests)
}

func TestSimulator_WaitDistributionMax_MatchesMaxWait(t *testing.T) {
	// GIVEN a far track served first, leaving the track-0 request waiting 3000 ticks
	s := NewSimulator(SimConfig{Policy: PolicyFIFO}, []Arrival{{ArrivalTime: 0, Track: 3000}, {ArrivalTime: 0, Track: 0}})

	// WHEN run
	m := s.Run()

	// THEN the percentile report agrees with the summary line
	assert.Equal(t, int64(3000), m.MaxWait)
	assert.Equal(t, m.MaxWait, m.WaitDistribution.Max)
	assert.Equal(t, int64(6000), m.TurnaroundDistribution.Max)
}

func TestSimulator_UnknownPolicy_Panics(t *testing.T) {
	assert.Panics(t, func() { NewSimulator(SimConfig{Policy: "nope"}, nil) })
}

func TestSimulator_OnEvent_ReceivesAddIssueFinishInOrder(t *testing.T) {
	// GIVEN a simulator with an event hook
	s := NewSimulator(SimConfig{Policy: PolicyFIFO}, []Arrival{{0, 2}, {1, 2}})
	var lines []string
	s.OnEvent = func(r trace.EventRecord) { lines = append(lines, r.String()) }

	// WHEN simulated
	s.Run()

	// THEN events follow the tick loop ordering, including the zero-seek drain
	want := []string{
		"0: 0 add 2",
		"0: 0 issue 2 0",
		"1: 1 add 2",
		"2: 0 finish 2",
		"2: 1 issue 2 2",
		"2: 1 finish 1",
	}
	assert.Equal(t, want, lines)
}

func TestSimulator_OnQueueDump_OncePerDispatchChain(t *testing.T) {
	// GIVEN three requests at tick 0, two on the head's track
	s := NewSimulator(SimConfig{Policy: PolicyFIFO}, []Arrival{{0, 0}, {0, 0}, {0, 4}})
	var dumps []trace.QueueSnapshot
	s.OnQueueDump = func(q trace.QueueSnapshot) { dumps = append(dumps, q) }

	// WHEN simulated
	s.Run()

	// THEN the queue is dumped once, after the first selection
	require.Len(t, dumps, 1)
	assert.Equal(t, int64(0), dumps[0].Clock)
	require.Len(t, dumps[0].Entries, 2)
	assert.Equal(t, 1, dumps[0].Entries[0].RequestID)
	assert.Equal(t, 2, dumps[0].Entries[1].RequestID)
}

func TestSimulator_Trace_RecordsEventsAndQueues(t *testing.T) {
	s := NewSimulator(SimConfig{Policy: PolicySSTF, TraceLevel: trace.TraceLevelFull}, []Arrival{{0, 3}, {0, 1}})
	s.Run()

	require.NotNil(t, s.Trace)
	summary := trace.Summarize(s.Trace)
	assert.Equal(t, 2, summary.AddCount)
	assert.Equal(t, 2, summary.IssueCount)
	assert.Equal(t, 2, summary.FinishCount)
	assert.Equal(t, 2, summary.QueueDumps)
}

func TestSimulator_TraceDisabledByDefault(t *testing.T) {
	s := NewSimulator(SimConfig{Policy: PolicyLOOK}, []Arrival{{0, 3}})
	s.Run()
	assert.Nil(t, s.Trace)
}

func TestSimulator_Invariants_HoldForEveryPolicy(t *testing.T) {
	// GIVEN a busier workload
	arrivals := []Arrival{
		{0, 50}, {0, 10}, {2, 90}, {3, 50}, {3, 49}, {10, 0}, {11, 70}, {11, 70}, {25, 15}, {40, 99},
	}
	for _, policy := range PolicyNames {
		t.Run(policy, func(t *testing.T) {
			s := NewSimulator(SimConfig{Policy: policy}, arrivals)
			m := s.Run()

			var headTravel int64
			for _, r := range s.Requests() {
				// THEN every request completes with ordered timestamps
				assert.Equal(t, StateComplete, r.State)
				assert.GreaterOrEqual(t, r.StartTime, r.ArrivalTime)
				assert.GreaterOrEqual(t, r.EndTime, r.StartTime)
				assert.Equal(t, r.StartTime-r.ArrivalTime, r.WaitTime)
				assert.Equal(t, r.EndTime-r.ArrivalTime, r.TurnaroundTime)
				assert.LessOrEqual(t, r.EndTime, m.Elapsed)
				headTravel = max(headTravel, r.EndTime)
			}
			// THEN the aggregates are consistent
			assert.GreaterOrEqual(t, m.AvgWait, 0.0)
			assert.GreaterOrEqual(t, m.AvgTurnaround, m.AvgWait)
			assert.GreaterOrEqual(t, float64(m.MaxWait), m.AvgWait)
			assert.Equal(t, headTravel, m.Elapsed)
			assert.LessOrEqual(t, m.Movement, m.Elapsed)
			assert.Equal(t, len(arrivals), m.CompletedRequests)

			var buf bytes.Buffer
			require.NoError(t, m.Print(&buf))
			assert.True(t, strings.HasPrefix(buf.String(), "SUM: "))
		})
	}
}
