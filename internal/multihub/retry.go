// =============================
// File: internal/multihub/retry.go
// =============================
package multihub

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryPolicy replaces the fixed-sleep retry loops of the old debug scripts
// with one explicit object passed to the submission routine.
type RetryPolicy struct {
	MaxAttempts     uint
	MaxElapsed      time.Duration
	InitialInterval time.Duration
}

// DefaultRetryPolicy matches the pacing the old scripts converged on after
// much trial and error: a handful of attempts within 15 seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		MaxElapsed:      15 * time.Second,
		InitialInterval: 500 * time.Millisecond,
	}
}

// options maps the policy onto backoff retry options.
func (p RetryPolicy) options() []backoff.RetryOption {
	bo := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		bo.InitialInterval = p.InitialInterval
	}
	opts := []backoff.RetryOption{backoff.WithBackOff(bo)}
	if p.MaxAttempts > 0 {
		opts = append(opts, backoff.WithMaxTries(p.MaxAttempts))
	}
	if p.MaxElapsed > 0 {
		opts = append(opts, backoff.WithMaxElapsedTime(p.MaxElapsed))
	}
	return opts
}
