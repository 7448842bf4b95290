// internal/sampler/sampler.go
package sampler

import (
	"errors"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/perchlab/spi-sampler/internal/filter"
	"github.com/perchlab/spi-sampler/internal/mcp3301"
)

// Config is the minimal runtime config the sampler needs.
type Config struct {
	// Interval is the pause between samples. Zero samples
	// back-to-back.
	Interval time.Duration
}

// Sampler is a dumb, clock-stamped reader: it pulls conversion frames
// from a bus session, smooths them and stamps them against the session
// start time.
//
// Single-consumer, not safe for concurrent use. One owning goroutine
// holds the sampler and its window; pass records elsewhere over a
// channel if other consumers need them.
type Sampler struct {
	cfg    Config
	src    io.Reader
	window *filter.TrimmedMean
	logger *zap.Logger

	start time.Time
	now   func() time.Time
}

// New creates a sampler with immutable config. The session clock
// starts here.
func New(cfg Config, src io.Reader, window *filter.TrimmedMean, logger *zap.Logger) (*Sampler, error) {
	if src == nil {
		return nil, errors.New("sampler: frame source required")
	}
	if window == nil {
		return nil, errors.New("sampler: filter window required")
	}
	if cfg.Interval < 0 {
		return nil, errors.New("sampler: interval must be >= 0")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Sampler{
		cfg:    cfg,
		src:    src,
		window: window,
		logger: logger,
		now:    time.Now,
	}
	s.start = s.now()
	return s, nil
}

// SampleOnce performs exactly one sample cycle: read one frame, decode,
// push the raw value into the window, stamp. A short read decodes to
// mcp3301.Sentinel, which is pushed and reported like any other
// reading so the timeline stays continuous.
func (s *Sampler) SampleOnce() Record {
	raw := mcp3301.ReadSingle(s.src)
	s.window.Push(int(raw))

	return Record{
		Elapsed:  s.now().Sub(s.start),
		Raw:      raw,
		Smoothed: s.window.Mean(),
	}
}

// Window returns the filter window driven by this sampler.
func (s *Sampler) Window() *filter.TrimmedMean { return s.window }
