package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig("test")
	cfg.FailureThreshold = 2
	cfg.Timeout = 50 * time.Millisecond
	return cfg
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := New(testConfig())
	failing := func(context.Context) error { return errors.New("down") }

	require.Error(t, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateClosed, cb.State())

	require.Error(t, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateOpen, cb.State())

	// Open breaker blocks without invoking the function
	called := false
	err := cb.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := New(testConfig())
	failing := func(context.Context) error { return errors.New("down") }

	cb.Execute(context.Background(), failing)
	cb.Execute(context.Background(), failing)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	// First request after the timeout probes the service; success closes
	err := cb.Execute(context.Background(), func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig())
	failing := func(context.Context) error { return errors.New("down") }

	cb.Execute(context.Background(), failing)
	cb.Execute(context.Background(), failing)
	time.Sleep(60 * time.Millisecond)

	require.Error(t, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_SuccessResetsFailureStreak(t *testing.T) {
	cb := New(testConfig())

	cb.Execute(context.Background(), func(context.Context) error { return errors.New("down") })
	cb.Execute(context.Background(), func(context.Context) error { return nil })
	cb.Execute(context.Background(), func(context.Context) error { return errors.New("down") })

	assert.Equal(t, StateClosed, cb.State())
}
