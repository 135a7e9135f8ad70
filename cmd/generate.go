package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disk-sim/sim/workload"
)

var (
	// CLI flags for synthetic request generation
	genSpecPath     string  // Optional YAML generator spec
	genSeed         int64   // Seed for random arrivals and tracks
	genNumRequests  int     // Number of requests
	genProcess      string  // Arrival process (poisson, constant)
	genMeanGap      float64 // Mean ticks between arrivals
	genDistribution string  // Track distribution (uniform, hotspot)
	genMaxTrack     int     // Highest track number
	genHotspot      int     // Hotspot center track
	genSpread       float64 // Hotspot standard deviation
	genOutput       string  // Output file, stdout when empty
)

// generateCmd writes a synthetic request file.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic request file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		spec := generatorSpecFromFlags()
		if genSpecPath != "" {
			loaded, err := workload.LoadGeneratorSpec(genSpecPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			spec = loaded
		}

		n, err := writeGenerated(spec, genOutput, os.Stdout)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Wrote %d requests", n)
	},
}

// writeGenerated generates requests from spec and writes them to path, or to
// stdout when path is empty. Returns the number of requests written.
func writeGenerated(spec *workload.GeneratorSpec, path string, stdout io.Writer) (n int, err error) {
	arrivals, err := workload.GenerateArrivals(spec)
	if err != nil {
		return 0, fmt.Errorf("invalid generator spec: %w", err)
	}

	out := stdout
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return 0, fmt.Errorf("creating %s: %w", path, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing %s: %w", path, closeErr)
			}
		}()
		out = f
	}

	header := fmt.Sprintf("generated: seed=%d requests=%d arrival=%s/%.2f tracks=%s/0-%d",
		spec.Seed, spec.NumRequests, spec.Arrival.Process, spec.Arrival.MeanGap, spec.Tracks.Distribution, spec.Tracks.Max)
	if err := workload.WriteRequests(out, header, arrivals); err != nil {
		return 0, fmt.Errorf("writing requests: %w", err)
	}
	return len(arrivals), nil
}

// generatorSpecFromFlags builds a generator spec from the generate flags.
func generatorSpecFromFlags() *workload.GeneratorSpec {
	return &workload.GeneratorSpec{
		Seed:        genSeed,
		NumRequests: genNumRequests,
		Arrival:     workload.ArrivalSpec{Process: genProcess, MeanGap: genMeanGap},
		Tracks: workload.TrackSpec{
			Distribution: genDistribution,
			Max:          genMaxTrack,
			Hotspot:      genHotspot,
			Spread:       genSpread,
		},
	}
}

func init() {
	generateCmd.Flags().StringVar(&genSpecPath, "spec", "", "Path to a YAML generator spec (overrides the other generation flags)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random arrivals and tracks")
	generateCmd.Flags().IntVar(&genNumRequests, "num-requests", 100, "Number of requests")
	generateCmd.Flags().StringVar(&genProcess, "arrival", "poisson", "Arrival process (poisson, constant)")
	generateCmd.Flags().Float64Var(&genMeanGap, "mean-gap", 10, "Mean ticks between arrivals")
	generateCmd.Flags().StringVar(&genDistribution, "tracks", "uniform", "Track distribution (uniform, hotspot)")
	generateCmd.Flags().IntVar(&genMaxTrack, "max-track", 199, "Highest track number")
	generateCmd.Flags().IntVar(&genHotspot, "hotspot", 100, "Hotspot center track (hotspot distribution)")
	generateCmd.Flags().Float64Var(&genSpread, "spread", 20, "Hotspot standard deviation in tracks")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default stdout)")
}
