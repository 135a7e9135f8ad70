package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	sim "github.com/inference-sim/disk-sim/sim"
	"github.com/inference-sim/disk-sim/sim/trace"
)

// printer writes to w and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// event prints a verbose trace line.
func (p *printer) event(record trace.EventRecord) {
	p.printf("%s\n", record)
}

// queue prints the pending set framed by blank lines.
func (p *printer) queue(snapshot trace.QueueSnapshot) {
	p.printf("\n\n")
	for _, e := range snapshot.Entries {
		p.printf("%d: %d %d\n", e.RequestID, e.ArrivalTime, e.Track)
	}
	p.printf("\n\n")
}

// results prints per-request rows and the summary in the requested format.
func (p *printer) results(format string, reqs []*sim.Request, m *sim.Metrics, stats bool) {
	if p.err != nil {
		return
	}
	switch format {
	case FormatTable:
		renderRequestTable(p.w, reqs, m)
	default:
		if p.err = sim.PrintRequests(p.w, reqs); p.err != nil {
			return
		}
		p.err = m.Print(p.w)
	}
	if stats && p.err == nil {
		p.err = m.PrintDistributions(p.w)
	}
}

// traceSummary prints one line of aggregate trace statistics.
func (p *printer) traceSummary(s *trace.TraceSummary) {
	busiest, issues := s.BusiestTrack()
	p.printf("TRACE: events=%d add=%d issue=%d finish=%d zero-seek=%d dispatches=%d max-depth=%d mean-depth=%.2f busiest=%d/%d\n",
		s.TotalEvents, s.AddCount, s.IssueCount, s.FinishCount, s.ZeroSeekIssues,
		s.QueueDumps, s.MaxQueueDepth, s.MeanQueueDepth, busiest, issues)
}

func renderRequestTable(w io.Writer, reqs []*sim.Request, m *sim.Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Track", "Start", "End", "Wait", "Turnaround"})
	rows := make([][]string, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.FormatInt(r.ArrivalTime, 10),
			strconv.Itoa(r.Track),
			strconv.FormatInt(r.StartTime, 10),
			strconv.FormatInt(r.EndTime, 10),
			strconv.FormatInt(r.WaitTime, 10),
			strconv.FormatInt(r.TurnaroundTime, 10),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "",
		fmt.Sprintf("Movement\n%d", m.Movement),
		fmt.Sprintf("Elapsed\n%d", m.Elapsed),
		"",
		fmt.Sprintf("Average\n%.2f\nMax %d", m.AvgWait, m.MaxWait),
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround)})
	table.Render()
}

// comparisonRow is one policy's summary in the compare table.
type comparisonRow struct {
	Policy  string
	Metrics *sim.Metrics
}

func renderComparisonTable(w io.Writer, rows []comparisonRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Elapsed", "Movement", "Avg Turnaround", "Avg Wait", "Max Wait", "P99 Wait"})
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		m := row.Metrics
		data = append(data, []string{
			row.Policy,
			strconv.FormatInt(m.Elapsed, 10),
			strconv.FormatInt(m.Movement, 10),
			fmt.Sprintf("%.2f", m.AvgTurnaround),
			fmt.Sprintf("%.2f", m.AvgWait),
			strconv.FormatInt(m.MaxWait, 10),
			strconv.FormatInt(m.WaitDistribution.P99, 10),
		})
	}
	table.AppendBulk(data)
	table.Render()
}
