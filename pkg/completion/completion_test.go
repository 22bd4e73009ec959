package completion

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion_ResolveOnce(t *testing.T) {
	c := New[string]()

	assert.True(t, c.Resolve("first"))
	assert.False(t, c.Resolve("second"))

	got, err := c.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", got)
	assert.True(t, c.Resolved())
}

func TestCompletion_ConcurrentActivationsResolveExactlyOnce(t *testing.T) {
	c := New[int]()

	const n = 64
	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if c.Resolve(i) {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	_, err := c.Wait(context.Background())
	assert.NoError(t, err)
}

func TestCompletion_ClaimThenResolveLater(t *testing.T) {
	c := New[string]()

	resolve, ok := c.Claim()
	require.True(t, ok)
	assert.True(t, c.Claimed())
	assert.False(t, c.Resolved())

	_, ok = c.Claim()
	assert.False(t, ok, "second claim must be refused")
	assert.False(t, c.Resolve("late"))

	go func() {
		time.Sleep(10 * time.Millisecond)
		resolve("after animation")
	}()

	got, err := c.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "after animation", got)
}

func TestCompletion_ResolveFuncIsIdempotent(t *testing.T) {
	c := New[int]()
	resolve, ok := c.Claim()
	require.True(t, ok)

	resolve(1)
	resolve(2)

	got, err := c.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestCompletion_WaitCancelled(t *testing.T) {
	c := New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := c.Wait(ctx)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Zero(t, got)
}

func TestCompletion_ResolvedValueWinsOverCancelledContext(t *testing.T) {
	c := New[int]()
	c.Resolve(7)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := c.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
