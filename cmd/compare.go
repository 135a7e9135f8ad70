package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/disk-sim/sim"
	"github.com/inference-sim/disk-sim/sim/workload"
)

// compareCmd runs every scheduling policy over the same request file.
var compareCmd = &cobra.Command{
	Use:   "compare <request-file>",
	Short: "Simulate a request file under every scheduling policy and tabulate the results",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		arrivals, err := workload.LoadRequestFile(args[0])
		if err != nil {
			logrus.Fatalf("Unable to read requests: %v", err)
		}
		comparePolicies(arrivals, os.Stdout)
	},
}

// comparePolicies runs each policy on a fresh registry, in PolicyNames order.
func comparePolicies(arrivals []sim.Arrival, w io.Writer) []comparisonRow {
	rows := make([]comparisonRow, 0, len(sim.PolicyNames))
	for _, name := range sim.PolicyNames {
		s := sim.NewSimulator(sim.SimConfig{Policy: name}, arrivals)
		rows = append(rows, comparisonRow{Policy: name, Metrics: s.Run()})
	}
	renderComparisonTable(w, rows)
	return rows
}
