// Package stats summarises frame timings.
package stats

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a series of frame durations.
type Summary struct {
	Frames int
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
	P95    time.Duration
}

// Summarize computes the Summary of ds. An empty series yields the zero Summary.
func Summarize(ds []time.Duration) Summary {
	if len(ds) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(ds))
	for i, d := range ds {
		xs[i] = float64(d)
	}

	s := Summary{
		Frames: len(ds),
		Min:    time.Duration(floats.Min(xs)),
		Max:    time.Duration(floats.Max(xs)),
	}
	if len(xs) == 1 {
		s.Mean = ds[0]
		s.P95 = ds[0]
		return s
	}

	mean, std := stat.MeanStdDev(xs, nil)
	s.Mean = time.Duration(mean)
	s.StdDev = time.Duration(std)

	sorted := append([]float64(nil), xs...)
	floats.Argsort(sorted, make([]int, len(sorted)))
	s.P95 = time.Duration(stat.Quantile(0.95, stat.Empirical, sorted, nil))
	return s
}

// FPS is the frame rate implied by the mean duration.
func (s Summary) FPS() float64 {
	if s.Mean <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.Mean)
}

func (s Summary) String() string {
	return fmt.Sprintf("frames=%d mean=%v stddev=%v min=%v max=%v p95=%v (%.1f fps)",
		s.Frames, s.Mean, s.StdDev, s.Min, s.Max, s.P95, s.FPS())
}
