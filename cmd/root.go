package cmd

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/disk-sim/sim"
	"github.com/inference-sim/disk-sim/sim/trace"
	"github.com/inference-sim/disk-sim/sim/workload"
)

var (
	// CLI flags for a simulation run
	scheduler  string // Scheduling policy name or letter
	verbose    bool   // Print add/issue/finish events
	dumpQueue  bool   // Print the pending set at each dispatch
	format     string // Output format (text, table)
	stats      bool   // Print wait/turnaround percentiles
	traceLevel string // Event trace level (none, events, full)
	logLevel   string // Log verbosity level
	configPath string // Optional YAML run config
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disk-sim",
	Short: "Tick-based disk I/O scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run <request-file>",
	Short: "Simulate a request file under one scheduling policy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveRunConfig(cmd)
		policy, err := cfg.Validate()
		if err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}

		arrivals, err := workload.LoadRequestFile(args[0])
		if err != nil {
			logrus.Fatalf("Unable to read requests: %v", err)
		}

		startTime := time.Now()
		if _, err := runSimulation(cfg, policy, arrivals, os.Stdout); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// resolveRunConfig merges the optional --config file with explicitly set flags.
func resolveRunConfig(cmd *cobra.Command) RunConfig {
	cfg := RunConfig{}
	if configPath != "" {
		loaded, err := LoadRunConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		cfg = *loaded
	}
	flags := cmd.Flags()
	if flags.Changed("scheduler") || cfg.Scheduler == "" {
		cfg.Scheduler = scheduler
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("dump-queue") {
		cfg.DumpQueue = dumpQueue
	}
	if flags.Changed("format") || cfg.Format == "" {
		cfg.Format = format
	}
	if flags.Changed("stats") {
		cfg.Stats = stats
	}
	if flags.Changed("trace") {
		cfg.Trace = traceLevel
	}
	return cfg
}

// runSimulation simulates arrivals under policy and writes events and results to w.
func runSimulation(cfg RunConfig, policy string, arrivals []sim.Arrival, w io.Writer) (*sim.Metrics, error) {
	level := trace.TraceLevel(cfg.Trace)
	if level == "" {
		level = trace.TraceLevelNone
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			level = trace.TraceLevelFull
		}
	}
	s := sim.NewSimulator(sim.SimConfig{Policy: policy, TraceLevel: level}, arrivals)

	p := &printer{w: w}
	if cfg.Verbose {
		s.OnEvent = p.event
	}
	if cfg.DumpQueue {
		s.OnQueueDump = p.queue
	}

	metrics := s.Run()
	p.results(cfg.Format, s.Requests(), metrics, cfg.Stats)

	if s.Trace != nil {
		summary := trace.Summarize(s.Trace)
		if cfg.Trace != "" {
			p.traceSummary(summary)
		}
		busiest, issues := summary.BusiestTrack()
		logrus.Debugf("trace: %d events (add=%d issue=%d finish=%d zero-seek=%d), %d dispatches, max queue depth %d, mean %.2f, busiest track %d (%d issues)",
			summary.TotalEvents, summary.AddCount, summary.IssueCount, summary.FinishCount, summary.ZeroSeekIssues,
			summary.QueueDumps, summary.MaxQueueDepth, summary.MeanQueueDepth, busiest, issues)
	}
	return metrics, p.err
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVarP(&scheduler, "scheduler", "s", "", "Scheduling policy: fifo, sstf, look, clook, flook (or i, j, s, c, f)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print add/issue/finish events as they happen")
	runCmd.Flags().BoolVarP(&dumpQueue, "dump-queue", "q", false, "Print the pending queue at each dispatch")
	runCmd.Flags().StringVar(&format, "format", FormatText, "Output format (text, table)")
	runCmd.Flags().BoolVar(&stats, "stats", false, "Print wait and turnaround percentiles")
	runCmd.Flags().StringVar(&traceLevel, "trace", "", "Event trace level (none, events, full); prints a trace summary when set")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run configuration")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(generateCmd)
}
