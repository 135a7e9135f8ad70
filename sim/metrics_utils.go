// sim/metrics_utils.go
package sim

import (
	"fmt"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/sirupsen/logrus"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculateMean is a util function that calculates the mean of a data list.
// Returns 0 for an empty list.
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}

	return sum / float64(len(numbers))
}

// histogramMaxTicks bounds the values tracked exactly by a Distribution.
// Larger samples are clamped and logged.
const histogramMaxTicks = 1 << 40

// Distribution summarises a set of tick durations.
type Distribution struct {
	Count int64
	Mean  float64
	P50   int64
	P90   int64
	P99   int64
	Max   int64
}

// NewDistribution records values into an HDR histogram and extracts percentiles.
// Negative values are ignored. Count, Mean and Max are exact; percentiles are
// bucketed to three significant digits and never exceed Max.
func NewDistribution(values []int64) Distribution {
	h := hdrhistogram.New(1, histogramMaxTicks, 3)
	kept := make([]int64, 0, len(values))
	var maxValue int64
	for _, v := range values {
		if v < 0 {
			continue
		}
		if v > histogramMaxTicks {
			logrus.Warnf("distribution sample %d exceeds %d ticks, clamping", v, int64(histogramMaxTicks))
			v = histogramMaxTicks
		}
		if err := h.RecordValue(v); err != nil {
			logrus.Warnf("dropping distribution sample %d: %v", v, err)
			continue
		}
		kept = append(kept, v)
		maxValue = max(maxValue, v)
	}
	if len(kept) == 0 {
		return Distribution{}
	}
	quantile := func(q float64) int64 {
		return min(h.ValueAtQuantile(q), maxValue)
	}
	return Distribution{
		Count: int64(len(kept)),
		Mean:  CalculateMean(kept),
		P50:   quantile(50),
		P90:   quantile(90),
		P99:   quantile(99),
		Max:   maxValue,
	}
}

func (d Distribution) String() string {
	return fmt.Sprintf("n=%d mean=%.2f p50=%d p90=%d p99=%d max=%d", d.Count, d.Mean, d.P50, d.P90, d.P99, d.Max)
}
