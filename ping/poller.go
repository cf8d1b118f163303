package ping

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/vidping/vidping/log"
	"github.com/vidping/vidping/strategy"
)

// Poller samples a strategy at a fixed interval and writes one JSON ping per line.
type Poller struct {
	Interval time.Duration
	Out      io.Writer

	// RequireReady skips samples until the strategy reports it is ready.
	RequireReady bool

	// Now stamps the samples. Defaults to time.Now.
	Now func() time.Time
}

// Sample collects a ping unless the strategy is not ready and readiness is required.
func (p *Poller) Sample(s strategy.Strategy) (Ping, bool) {
	if p.RequireReady && !s.IsReady() {
		return Ping{}, false
	}

	now := p.Now
	if now == nil {
		now = time.Now
	}
	return Collect(s, now()), true
}

// Run samples until the context is done and returns the number of pings written.
// Only write failures are reported as errors.
func (p *Poller) Run(ctx context.Context, s strategy.Strategy) (int, error) {
	if p.Interval <= 0 {
		return 0, fmt.Errorf("invalid ping interval: %s", p.Interval)
	}

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	written := 0
	for {
		select {
		case <-ctx.Done():
			return written, nil
		case <-ticker.C:
			sample, ok := p.Sample(s)
			if !ok {
				continue
			}

			if err := p.Write(sample); err != nil {
				return written, err
			}
			written++
			log.Debugf("ping %d: state=%s type=%s position=%.0fms", written, sample.State, sample.ContentType, sample.CurrentPlayTime)
		}
	}
}

// Write encodes one ping as a JSON line.
func (p *Poller) Write(sample Ping) error {
	if err := json.NewEncoder(p.Out).Encode(sample); err != nil {
		return fmt.Errorf("write ping: %w", err)
	}
	return nil
}
