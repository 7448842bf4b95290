// internal/writer/writer.go

// Package writer formats sample records for line-oriented text output.
package writer

import (
	"fmt"
	"io"

	"github.com/perchlab/spi-sampler/internal/sampler"
	"github.com/perchlab/spi-sampler/internal/stats"
)

// Text writes one tab-separated line per record: elapsed seconds with
// six decimals, the raw reading, and the trimmed mean with three
// decimals.
type Text struct {
	out io.Writer
}

// NewText creates a text writer over out.
func NewText(out io.Writer) *Text {
	return &Text{out: out}
}

// Write emits rec as one line.
func (t *Text) Write(rec sampler.Record) error {
	_, err := fmt.Fprintf(
		t.out,
		"%5.6f\t%d\t%4.3f\n",
		rec.Elapsed.Seconds(),
		rec.Raw,
		rec.Smoothed,
	)
	return err
}

// WriteSummary emits the end-of-session report into the same sink.
func (t *Text) WriteSummary(s stats.Summary) error {
	_, err := fmt.Fprintf(
		t.out,
		"loops: %d\tavg period: %2.8f\tloops/sec: %d\twindow mean: %4.3f\twindow stdev: %4.3f\n",
		s.Loops,
		s.AvgPeriod(),
		int(s.LoopsPerSec()),
		s.WindowMean,
		s.WindowStdev,
	)
	return err
}
