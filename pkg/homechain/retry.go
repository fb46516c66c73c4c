// Copyright 2025 Certen Protocol
//
package homechain

import (
	"context"
	"time"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
)

// retryConfig bounds how long a single home chain read or write keeps
// retrying transient failures before giving up (spec section 4.1): a total
// budget across all attempts, and a short pause between them so a
// momentarily-unreachable node doesn't get hammered.
type retryConfig struct {
	totalBudget  time.Duration
	interAttempt time.Duration
}

var defaultRetry = retryConfig{
	totalBudget:  300 * time.Second,
	interAttempt: 2 * time.Second,
}

// withRetry runs fn until it succeeds, the context is canceled, the total
// retry budget elapses, or fn returns a non-retryable error. Only errors
// bridgeerr classifies as Retryable (currently Transport and
// GovernanceReset) are retried; anything else is returned immediately.
func withRetry(ctx context.Context, cfg retryConfig, fn func(ctx context.Context) error) error {
	deadline := time.Now().Add(cfg.totalBudget)

	var lastErr error
	for {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		kind, ok := bridgeerr.KindOf(lastErr)
		if !ok || !kind.Retryable() {
			return lastErr
		}

		if time.Now().After(deadline) {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.interAttempt):
		}
	}
}
