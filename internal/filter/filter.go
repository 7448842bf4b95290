// internal/filter/filter.go

// Package filter smooths raw ADC readings with a trimmed mean over a
// fixed window of recent samples.
package filter

import "errors"

// ErrWindowTooSmall is returned for capacities below 3. Trimming one
// maximum and one minimum from a window of 2 leaves nothing to
// average.
var ErrWindowTooSmall = errors.New("filter: window capacity must be at least 3")

// TrimmedMean is a fixed-capacity ring of the most recent readings.
// Slots start at zero, so until the window has seen capacity pushes
// the mean is computed partly over zeros and is not a steady-state
// signal.
//
// Not safe for concurrent use.
type TrimmedMean struct {
	data []int
	pos  int
}

// New creates a window holding the capacity most recent readings.
func New(capacity int) (*TrimmedMean, error) {
	if capacity < 3 {
		return nil, ErrWindowTooSmall
	}
	return &TrimmedMean{data: make([]int, capacity)}, nil
}

// Push overwrites the oldest slot with v.
func (f *TrimmedMean) Push(v int) {
	f.data[f.pos] = v
	f.pos = (f.pos + 1) % len(f.data)
}

// Mean returns the average of the window with one occurrence of the
// maximum and one occurrence of the minimum excluded. When extremes
// are duplicated, only the first occurrence found in a single linear
// scan is excluded; the remaining duplicates still count toward the
// sum.
func (f *TrimmedMean) Mean() float64 {
	max := f.data[0]
	min := f.data[0]
	sum := f.data[0]
	for _, v := range f.data[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
		sum += v
	}
	return float64(sum-max-min) / float64(len(f.data)-2)
}

// Values returns a copy of the window in storage order.
func (f *TrimmedMean) Values() []int {
	out := make([]int, len(f.data))
	copy(out, f.data)
	return out
}

// Cap returns the window capacity.
func (f *TrimmedMean) Cap() int { return len(f.data) }
