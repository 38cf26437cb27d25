package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedBackoff time.Duration

func (f fixedBackoff) Next(int) time.Duration { return time.Duration(f) }

func TestDo(t *testing.T) {
	errBoom := errors.New("boom")
	errFatal := errors.New("fatal")

	tests := []struct {
		name          string
		attempts      int
		failures      int
		failWith      error
		expectedCalls int
		expectedError error
	}{
		{name: "succeeds first time", attempts: 3, failures: 0, expectedCalls: 1},
		{name: "succeeds after retries", attempts: 3, failures: 2, failWith: errBoom, expectedCalls: 3},
		{name: "exhausts attempts", attempts: 2, failures: 5, failWith: errBoom, expectedCalls: 2, expectedError: errBoom},
		{name: "stops on non retryable error", attempts: 5, failures: 5, failWith: errFatal, expectedCalls: 1, expectedError: errFatal},
		{name: "zero attempts runs once", attempts: 0, failures: 1, failWith: errBoom, expectedCalls: 1, expectedError: errBoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Do(context.Background(), func(context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.failWith
				}
				return nil
			}, Policy{
				Attempts:  tt.attempts,
				Backoff:   fixedBackoff(time.Millisecond),
				Retryable: func(err error) bool { return !errors.Is(err, errFatal) },
			})

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	err := Do(ctx, func(context.Context) error {
		attempts++
		cancel()
		return errors.New("unavailable")
	}, Policy{Attempts: 3, Backoff: fixedBackoff(time.Hour)})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestExpoJitter_Next(t *testing.T) {
	b := ExpoJitter{Base: 100 * time.Millisecond, Max: time.Second}

	assert.Equal(t, 100*time.Millisecond, b.Next(0))
	assert.Equal(t, 400*time.Millisecond, b.Next(2))
	assert.Equal(t, time.Second, b.Next(10))
	assert.Equal(t, 100*time.Millisecond, b.Next(-1))
}
