package mainloop

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherMergesBurstIntoSingleRun(t *testing.T) {
	queue := make([]func(), 0, 8)
	d := NewDispatcher(func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		d.Post("overlay-resize", func() { value = v })
	}

	require.Len(t, queue, 1)
	queue[0]()
	assert.Equal(t, 5, value, "latest callback wins")

	d.Post("overlay-resize", func() { value = 6 })
	require.Len(t, queue, 2, "key is free again after the run")
	queue[1]()
	assert.Equal(t, 6, value)
}

func TestDispatcherKeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 4)
	d := NewDispatcher(func(fn func()) { queue = append(queue, fn) })

	var ran []string
	d.Post("a", func() { ran = append(ran, "a") })
	d.Post("b", func() { ran = append(ran, "b") })

	require.Len(t, queue, 2)
	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestDispatcherRunDoesNotCoalesce(t *testing.T) {
	queue := make([]func(), 0, 4)
	d := NewDispatcher(func(fn func()) { queue = append(queue, fn) })

	count := 0
	d.Run(func() { count++ })
	d.Run(func() { count++ })
	d.Run(nil)

	require.Len(t, queue, 2)
	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, 2, count)
}

func TestDispatcherDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	d := NewDispatcher(func(fn func()) { queue = append(queue, fn) })

	ran := false
	d.Post("abort", func() { ran = true })
	d.Run(func() { ran = true })
	d.Destroy()

	require.Len(t, queue, 2)
	for _, fn := range queue {
		fn()
	}
	assert.False(t, ran, "queued work is dropped after destroy")

	d.Post("abort", func() { ran = true })
	d.Run(func() { ran = true })
	assert.Len(t, queue, 2, "no new callbacks after destroy")
}

func TestDispatcherIgnoresEmptyPosts(t *testing.T) {
	queue := make([]func(), 0, 1)
	d := NewDispatcher(func(fn func()) { queue = append(queue, fn) })

	d.Post("", func() {})
	d.Post("key", nil)

	assert.Empty(t, queue)
}

func TestDispatcherConcurrentPosts(t *testing.T) {
	var mu sync.Mutex
	queue := make([]func(), 0, 64)
	d := NewDispatcher(func(fn func()) {
		mu.Lock()
		queue = append(queue, fn)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Post("same", func() {})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, queue, 1)
}

func TestNewDispatcherPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewDispatcher(nil) })
}
