package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents    int
	AddCount       int
	IssueCount     int
	FinishCount    int
	QueueDumps     int
	MaxQueueDepth  int
	MeanQueueDepth float64
	ZeroSeekIssues int         // issues where the head already sat on the target track
	IssuesPerTrack map[int]int // track → number of issues
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		IssuesPerTrack: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for _, e := range st.Events {
		switch e.Kind {
		case EventAdd:
			summary.AddCount++
		case EventIssue:
			summary.IssueCount++
			summary.IssuesPerTrack[e.Track]++
			if e.Head == e.Track {
				summary.ZeroSeekIssues++
			}
		case EventFinish:
			summary.FinishCount++
		}
	}

	if len(st.QueueDumps) > 0 {
		total := 0
		for _, q := range st.QueueDumps {
			depth := len(q.Entries)
			total += depth
			if depth > summary.MaxQueueDepth {
				summary.MaxQueueDepth = depth
			}
		}
		summary.QueueDumps = len(st.QueueDumps)
		summary.MeanQueueDepth = float64(total) / float64(len(st.QueueDumps))
	}

	return summary
}

// BusiestTrack returns the track with the most issues and its issue count.
// Ties go to the lowest track. Returns (-1, 0) when nothing was issued.
func (s *TraceSummary) BusiestTrack() (track, issues int) {
	track = -1
	for t, n := range s.IssuesPerTrack {
		if n > issues || (n == issues && t < track) {
			track, issues = t, n
		}
	}
	return track, issues
}
