// internal/sampler/types.go
package sampler

import "time"

// Record is one emitted sample.
type Record struct {
	// Elapsed is the time since the session started. Monotonically
	// non-decreasing within a session.
	Elapsed time.Duration

	// Raw is the decoded reading, or mcp3301.Sentinel when the bus did
	// not deliver a full frame.
	Raw int16

	// Smoothed is the trimmed mean of the current filter window.
	Smoothed float64
}

// Writer delivers records to their sink.
type Writer interface {
	Write(Record) error
}
