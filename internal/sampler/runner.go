// internal/sampler/runner.go
package sampler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Run samples until ctx is cancelled, delivering every record to w.
// Cancellation is checked once per iteration; the blocking device read
// itself has no timeout. Write failures are logged and the loop keeps
// going. Returns the number of completed iterations.
func (s *Sampler) Run(ctx context.Context, w Writer) int {
	var ticker *time.Ticker
	if s.cfg.Interval > 0 {
		ticker = time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
	}

	loops := 0
	for {
		if ctx.Err() != nil {
			return loops
		}

		rec := s.SampleOnce()
		if err := w.Write(rec); err != nil {
			s.logger.Warn("record write failed", zap.Error(err))
		}
		loops++

		if ticker == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return loops
		case <-ticker.C:
		}
	}
}
