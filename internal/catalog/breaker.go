// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package catalog

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/buildmyrig/internal/config"
	"github.com/tomtom215/buildmyrig/internal/logging"
	"github.com/tomtom215/buildmyrig/internal/metrics"
	"github.com/tomtom215/buildmyrig/internal/models"
	"github.com/tomtom215/buildmyrig/internal/recommend"
)

// BreakerName labels the catalog circuit breaker in logs and metrics.
const BreakerName = "catalog"

// ErrCircuitOpen is returned when the breaker rejects a read without
// calling the backend. It wraps the underlying gobreaker error.
var ErrCircuitOpen = errors.New("catalog circuit breaker open")

// BreakerAccessor guards catalog reads with a circuit breaker.
//
// The breaker trips when at least MinRequests reads were seen in the current
// interval and FailureRatio of them failed. While open, reads fail fast with
// ErrCircuitOpen. Context cancellation counts as success so abandoned
// requests never trip the breaker.
//
// DETERMINISM NOTE: gobreaker uses wall-clock time for Interval and Timeout.
// Tests that need an open breaker drive it with failures, not time.
type BreakerAccessor struct {
	inner recommend.SnapshotAccessor
	cb    *gobreaker.CircuitBreaker[any]
	name  string
}

var _ recommend.SnapshotAccessor = (*BreakerAccessor)(nil)

// NewBreakerAccessor wraps inner with a breaker configured from cfg.
func NewBreakerAccessor(inner recommend.SnapshotAccessor, cfg *config.BreakerConfig) *BreakerAccessor {
	name := BreakerName

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	minRequests := cfg.MinRequests
	ratio := cfg.FailureRatio

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= ratio
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerAccessor{inner: inner, cb: cb, name: name}
}

// Fetch reads one category through the breaker.
func (b *BreakerAccessor) Fetch(ctx context.Context, category models.Category, filter models.BrandFilter) ([]models.Part, error) {
	return castResult[[]models.Part](b.execute(func() (any, error) {
		return b.inner.Fetch(ctx, category, filter)
	}))
}

// Snapshot reads every category through the breaker.
func (b *BreakerAccessor) Snapshot(ctx context.Context, filters map[models.Category]models.BrandFilter) (map[models.Category][]models.Part, error) {
	return castResult[map[models.Category][]models.Part](b.execute(func() (any, error) {
		return b.inner.Snapshot(ctx, filters)
	}))
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *BreakerAccessor) State() string {
	return stateToString(b.cb.State())
}

// execute runs fn under the breaker and records the outcome.
func (b *BreakerAccessor) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		counts := b.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts breaker state to the gauge value
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts breaker state for logs and metric labels
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
