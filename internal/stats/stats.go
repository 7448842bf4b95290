// internal/stats/stats.go

// Package stats holds the pure end-of-session arithmetic.
// No IO. No side effects.
package stats

import (
	"math"
	"time"
)

// Mean returns the average of vals, or 0 for an empty slice.
func Mean(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += float64(v)
	}
	return sum / float64(len(vals))
}

// Stdev returns the population standard deviation of vals, or 0 for an
// empty slice.
func Stdev(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	avg := Mean(vals)
	var acc float64
	for _, v := range vals {
		d := float64(v) - avg
		acc += d * d
	}
	return math.Sqrt(acc / float64(len(vals)))
}

// Summary describes one completed sampling session.
type Summary struct {
	Loops   int
	Elapsed time.Duration

	// WindowMean and WindowStdev describe the filter window content at
	// shutdown.
	WindowMean  float64
	WindowStdev float64
}

// AvgPeriod returns the average seconds per loop.
func (s Summary) AvgPeriod() float64 {
	if s.Loops == 0 {
		return 0
	}
	return s.Elapsed.Seconds() / float64(s.Loops)
}

// LoopsPerSec returns the average sampling rate.
func (s Summary) LoopsPerSec() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Loops) / s.Elapsed.Seconds()
}
