package runtime

import (
	"chat-circle/contract"
	"chat-circle/errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	closed *atomic.Int32
}

func (h fakeHandle) Close() { h.closed.Add(1) }

func starter(started, closed *atomic.Int32) func() (contract.Handle, error) {
	return func() (contract.Handle, error) {
		started.Add(1)
		return fakeHandle{closed: closed}, nil
	}
}

func TestRegistry_Acquire_Starts_Once_Per_Key(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(slog.Default())
	var started, closed atomic.Int32

	// When the same key is acquired twice
	first, err := registry.Acquire("u1_u2", starter(&started, &closed))
	req.NoError(err)
	second, err := registry.Acquire("u1_u2", starter(&started, &closed))
	req.NoError(err)

	// Then only one listener runs
	req.True(first)
	req.False(second)
	req.Equal(int32(1), started.Load())
	req.Equal(1, registry.Len())
}

func TestRegistry_Release_Stops_Listener(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(slog.Default())
	var started, closed atomic.Int32
	_, err := registry.Acquire("g1", starter(&started, &closed))
	req.NoError(err)

	req.True(registry.Release("g1"))
	req.False(registry.Release("g1"))

	req.Equal(int32(1), closed.Load())
	req.Zero(registry.Len())
}

func TestRegistry_Retain_Tears_Down_Hidden_Keys(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(slog.Default())
	var started, closed atomic.Int32

	// Given listeners for three visible peers
	for _, key := range []string{"u1_u2", "u1_u3", "u1_u4"} {
		_, err := registry.Acquire(key, starter(&started, &closed))
		req.NoError(err)
	}

	// When the viewport only shows one of them
	released := registry.Retain([]string{"u1_u3", "u1_u9"})

	// Then the two others are closed
	req.Equal([]string{"u1_u2", "u1_u4"}, released)
	req.Equal([]string{"u1_u3"}, registry.Keys())
	req.Equal(int32(2), closed.Load())
}

func TestRegistry_Close_Releases_All(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(slog.Default())
	var started, closed atomic.Int32
	for _, key := range []string{"a", "b"} {
		_, err := registry.Acquire(key, starter(&started, &closed))
		req.NoError(err)
	}

	registry.Close()

	req.Equal(int32(2), closed.Load())
	acquired, err := registry.Acquire("c", starter(&started, &closed))
	req.NoError(err)
	req.False(acquired)
	req.Zero(registry.Len())
}

func TestRegistry_Failed_Start_Is_Not_Kept(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(slog.Default())
	boom := errors.New("boom")

	_, err := registry.Acquire("k", func() (contract.Handle, error) { return nil, boom })

	req.ErrorIs(err, boom)
	req.Zero(registry.Len())
}
