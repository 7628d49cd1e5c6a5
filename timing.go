package blockfunc

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"go.uber.org/zap"
)

// Stopwatch times a single run of a block.
// The zero value reads the wall clock and reports nowhere.
type Stopwatch struct {
	// Now replaces time.Now, mostly for tests.
	Now func() time.Time
	// Out receives the "Elapsed seconds: ..." line.
	Out io.Writer
	// Logger, if set, gets a debug entry per measurement.
	Logger *zap.SugaredLogger
}

// Measure runs block exactly once, with no arguments, and reports how long it took.
func (s *Stopwatch) Measure(block BlockFunc) (time.Duration, error) {
	if block == nil {
		return 0, &InvocationError{Routine: "Stopwatch.Measure"}
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	start := now()
	block()
	elapsed := now().Sub(start)

	if s.Logger != nil {
		s.Logger.Debugw("Block measured", "elapsed", elapsed)
	}
	if s.Out != nil {
		if _, err := fmt.Fprintf(s.Out, "Elapsed seconds: %v\n", elapsed.Seconds()); err != nil {
			return elapsed, err
		}
	}
	return elapsed, nil
}

// MeasureSeconds runs block once and writes the elapsed wall-clock seconds to w.
func MeasureSeconds(w io.Writer, block BlockFunc) (time.Duration, error) {
	if block == nil {
		return 0, &InvocationError{Routine: "MeasureSeconds"}
	}
	sw := Stopwatch{Out: w}
	return sw.Measure(block)
}

// ShuffleSort returns a block that builds 1..n, shuffles it with r and sorts it
// again. It is the workload the measure command times. A negative n is
// treated as 0.
func ShuffleSort(n int, r *rand.Rand) BlockFunc {
	return func() {
		arr := make([]int, max(n, 0))
		for i := range arr {
			arr[i] = i + 1
		}
		r.Shuffle(len(arr), func(i, j int) {
			arr[i], arr[j] = arr[j], arr[i]
		})
		slices.Sort(arr)
	}
}
