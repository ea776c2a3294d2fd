package retry_test

import (
	"context"
	"testing"
	"time"

	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/common/retry"
	"github.com/clearpath-au/go-remit/internal/config"

	"github.com/stretchr/testify/assert"
)

func init() {
	log.InitForTest()
}

func Test_Retry_ExponentialBackoff(t *testing.T) {
	t.Run("exhausts attempt budget and surfaces last error", func(t *testing.T) {
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries: 3,
			BaseDelay:  time.Millisecond,
		})

		var attempts int
		err := retryer.Retry(context.Background(), func() error {
			attempts++
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 3, attempts)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries: 3,
			BaseDelay:  time.Millisecond,
		})

		var attempts int
		err := retryer.Retry(context.Background(), func() error {
			attempts++
			if attempts < 3 {
				return assert.AnError
			}
			return nil
		})

		assert.Nil(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("permanent error stops the loop on first attempt", func(t *testing.T) {
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries: 5,
			BaseDelay:  time.Millisecond,
		})

		var attempts int
		err := retryer.Retry(context.Background(), func() error {
			attempts++
			return retryer.StopRetryWithErr(assert.AnError)
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, attempts)
	})

	t.Run("delays grow as base times two to the k", func(t *testing.T) {
		base := 20 * time.Millisecond
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries: 3,
			BaseDelay:  base,
		})

		start := time.Now()
		err := retryer.Retry(context.Background(), func() error {
			return assert.AnError
		})
		elapsed := time.Since(start)

		assert.ErrorIs(t, err, assert.AnError)
		// base + 2*base between the three attempts
		assert.GreaterOrEqual(t, elapsed, 3*base)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries: 10,
			BaseDelay:  50 * time.Millisecond,
		})

		ctx, cancel := context.WithCancel(context.Background())

		var attempts int
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		err := retryer.Retry(ctx, func() error {
			attempts++
			return assert.AnError
		})

		assert.Error(t, err)
		assert.Less(t, attempts, 10)
	})
}
