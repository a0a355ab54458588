package resilience

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietPolicy(strict bool) *Policy {
	return NewPolicy(strict, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWithFallbackPrefersRemote(t *testing.T) {
	t.Parallel()

	fallbackCalled := false
	out, err := WithFallback(context.Background(), quietPolicy(false), "test.op",
		func(context.Context) (string, error) { return "remote", nil },
		func(context.Context) (string, error) {
			fallbackCalled = true
			return "local", nil
		})
	require.NoError(t, err)
	assert.Equal(t, "remote", out)
	assert.False(t, fallbackCalled)
}

func TestWithFallbackDegradesOnError(t *testing.T) {
	t.Parallel()

	out, err := WithFallback(context.Background(), quietPolicy(false), "test.op",
		func(context.Context) (string, error) { return "", errors.New("connection refused") },
		func(context.Context) (string, error) { return "local", nil })
	require.NoError(t, err)
	assert.Equal(t, "local", out)
}

func TestWithFallbackSurfacesFallbackError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("not found")
	_, err := WithFallback(context.Background(), quietPolicy(false), "test.op",
		func(context.Context) (int, error) { return 0, errors.New("unreachable") },
		func(context.Context) (int, error) { return 0, sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestStrictModeSurfacesRemoteError(t *testing.T) {
	t.Parallel()

	remoteErr := errors.New("unreachable")
	fallbackCalled := false
	_, err := WithFallback(context.Background(), quietPolicy(true), "test.op",
		func(context.Context) (int, error) { return 0, remoteErr },
		func(context.Context) (int, error) {
			fallbackCalled = true
			return 42, nil
		})
	assert.ErrorIs(t, err, remoteErr)
	assert.False(t, fallbackCalled)
}

func TestWithFallbackErr(t *testing.T) {
	t.Parallel()

	err := WithFallbackErr(context.Background(), quietPolicy(false), "test.op",
		func(context.Context) error { return errors.New("unreachable") },
		func(context.Context) error { return nil })
	assert.NoError(t, err)

	err = WithFallbackErr(context.Background(), quietPolicy(true), "test.op",
		func(context.Context) error { return errors.New("unreachable") },
		func(context.Context) error { return nil })
	assert.Error(t, err)
}

func TestNewPolicyDefaultsLogger(t *testing.T) {
	t.Parallel()

	p := NewPolicy(false, nil)
	require.NotNil(t, p.Log)
}
