package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/config"
)

const DefaultMaxAttempts uint64 = 3

// Retryer re-runs an operation on transient failure with exponential backoff.
// It is rail-agnostic: dead-lettering an exhausted operation is the caller's
// job.
type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

// NewExponentialBackOff builds a Retryer whose delay before attempt k+1 is
// baseDelay * 2^(k-1), plus a uniform jitter in [0, baseDelay) when enabled.
func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxRetries == 0 {
		ebCfg.MaxRetries = DefaultMaxAttempts
	}

	if ebCfg.BaseDelay <= 0 {
		ebCfg.BaseDelay = 250 * time.Millisecond
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

// Retry runs operation until it succeeds, returns a permanent error, or the
// attempt budget is spent. The last error is surfaced on exhaustion.
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	bo := &doublingBackOff{
		base:   r.ebCfg.BaseDelay,
		max:    r.ebCfg.MaxBackoffTime,
		jitter: r.ebCfg.Jitter,
	}

	// MaxRetries counts attempts after the first one.
	wrapped := backoff.WithContext(backoff.WithMaxRetries(bo, r.ebCfg.MaxRetries-1), ctx)

	err := backoff.Retry(operation, wrapped)
	if err != nil {
		log.Debugf(ctx, "retry budget spent: %v", err)
		return err
	}

	return nil
}

// StopRetryWithErr marks err as permanent so the retry loop stops
// immediately. Call it inside the operation func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}

// doublingBackOff doubles the delay each attempt starting at base.
type doublingBackOff struct {
	base    time.Duration
	max     time.Duration
	jitter  bool
	attempt int
}

var _ backoff.BackOff = (*doublingBackOff)(nil)

func (b *doublingBackOff) NextBackOff() time.Duration {
	delay := b.base << b.attempt
	b.attempt++

	if b.jitter {
		delay += time.Duration(rand.Int63n(int64(b.base)))
	}

	if b.max > 0 && delay > b.max {
		delay = b.max
	}

	return delay
}

func (b *doublingBackOff) Reset() {
	b.attempt = 0
}
