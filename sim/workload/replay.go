package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/disk-sim/sim"
)

// LoadRequestFile reads a request file from disk. See ParseRequests for the format.
func LoadRequestFile(path string) ([]sim.Arrival, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening request file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logrus.Warnf("closing request file %s: %v", path, closeErr)
		}
	}()
	arrivals, err := ParseRequests(f)
	if err != nil {
		return nil, fmt.Errorf("reading request file %s: %w", path, err)
	}
	return arrivals, nil
}

// ParseRequests reads "arrival_time track" lines. Blank lines and lines whose
// first character is '#' are ignored. Lines that do not hold two integers, or
// that name a negative arrival time or track, are skipped with a warning.
// The returned order is the file order; request IDs are assigned from it.
func ParseRequests(r io.Reader) ([]sim.Arrival, error) {
	var arrivals []sim.Arrival
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, err := parseLine(line)
		if err != nil {
			logrus.Warnf("skipping line %d %q: %v", lineNo, line, err)
			continue
		}
		arrivals = append(arrivals, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	logrus.Debugf("parsed %d requests from %d lines", len(arrivals), lineNo)
	return arrivals, nil
}

func parseLine(line string) (sim.Arrival, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return sim.Arrival{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	arrival, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return sim.Arrival{}, fmt.Errorf("arrival time: %w", err)
	}
	track, err := strconv.Atoi(fields[1])
	if err != nil {
		return sim.Arrival{}, fmt.Errorf("track: %w", err)
	}
	if arrival < 0 {
		return sim.Arrival{}, fmt.Errorf("arrival time must be non-negative, got %d", arrival)
	}
	if track < 0 {
		return sim.Arrival{}, fmt.Errorf("track must be non-negative, got %d", track)
	}
	return sim.Arrival{ArrivalTime: arrival, Track: track}, nil
}

// WriteRequests writes arrivals in the request file format, preceded by an optional comment header.
func WriteRequests(w io.Writer, header string, arrivals []sim.Arrival) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		for _, line := range strings.Split(header, "\n") {
			if _, err := fmt.Fprintf(bw, "# %s\n", line); err != nil {
				return err
			}
		}
	}
	for _, a := range arrivals {
		if _, err := fmt.Fprintf(bw, "%d %d\n", a.ArrivalTime, a.Track); err != nil {
			return err
		}
	}
	return bw.Flush()
}
