package services

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"finledger/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// CircuitBreakerConfig tunes the breaker guarding the remote ledger service.
type CircuitBreakerConfig struct {
	MaxFailures      int
	ResetTimeout     time.Duration
	HalfOpenMaxCalls int
}

// DefaultCircuitBreakerConfig returns conservative defaults.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:      5,
		ResetTimeout:     30 * time.Second,
		HalfOpenMaxCalls: 3,
	}
}

type circuitBreaker struct {
	config CircuitBreakerConfig

	mu                sync.RWMutex
	state             models.CircuitBreakerState
	failureCount      int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

// NewCircuitBreaker creates a breaker in the closed state.
func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	if config.MaxFailures <= 0 {
		config.MaxFailures = DefaultCircuitBreakerConfig().MaxFailures
	}
	if config.ResetTimeout <= 0 {
		config.ResetTimeout = DefaultCircuitBreakerConfig().ResetTimeout
	}
	if config.HalfOpenMaxCalls <= 0 {
		config.HalfOpenMaxCalls = DefaultCircuitBreakerConfig().HalfOpenMaxCalls
	}
	return &circuitBreaker{
		config: config,
		state:  models.CircuitBreakerClosed,
	}
}

// IsOpen reports whether calls should be refused right now. An open breaker
// moves to half-open once the reset timeout has elapsed, letting a limited
// number of probe calls through.
func (cb *circuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == models.CircuitBreakerOpen {
		if time.Since(cb.lastFailureTime) >= cb.config.ResetTimeout {
			cb.transition(models.CircuitBreakerHalfOpen)
			cb.halfOpenSuccesses = 0
			return false
		}
		return true
	}
	return false
}

func (cb *circuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case models.CircuitBreakerHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxCalls {
			cb.transition(models.CircuitBreakerClosed)
			cb.failureCount = 0
		}
	case models.CircuitBreakerClosed:
		cb.failureCount = 0
	}
}

func (cb *circuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()

	switch cb.state {
	case models.CircuitBreakerHalfOpen:
		// a probe failed, go straight back to open
		cb.transition(models.CircuitBreakerOpen)
	case models.CircuitBreakerClosed:
		cb.failureCount++
		if cb.failureCount >= cb.config.MaxFailures {
			cb.transition(models.CircuitBreakerOpen)
		}
	}
}

func (cb *circuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *circuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failureCount
}

// Reset forces the breaker back to closed with a clean slate.
func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.transition(models.CircuitBreakerClosed)
	cb.failureCount = 0
	cb.halfOpenSuccesses = 0
}

// transition must be called with the write lock held.
func (cb *circuitBreaker) transition(next models.CircuitBreakerState) {
	if cb.state == next {
		return
	}
	slog.Warn("circuit breaker state change",
		"from", cb.state.String(),
		"to", next.String(),
		"failures", cb.failureCount)
	cb.state = next
}
