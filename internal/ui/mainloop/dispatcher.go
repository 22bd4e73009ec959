// Package mainloop hands work to the goroutine that owns a UI toolkit.
package mainloop

import "sync"

// Dispatcher posts callbacks onto a UI loop. Same-key posts made before the
// loop runs the first one collapse into a single run of the latest callback.
type Dispatcher struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	post      func(func())
	destroyed bool
}

// NewDispatcher wraps post, which must schedule its argument on the UI loop
// (glib.IdleAdd for GTK, tea.Program.Send for the terminal).
func NewDispatcher(post func(func())) *Dispatcher {
	if post == nil {
		panic("mainloop.NewDispatcher: post function cannot be nil")
	}

	return &Dispatcher{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		post:      post,
	}
}

// Post schedules fn under key, replacing a same-key callback still waiting.
func (d *Dispatcher) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	d.mu.Lock()
	if d.destroyed {
		d.mu.Unlock()
		return
	}
	d.callbacks[key] = fn
	if d.pending[key] {
		d.mu.Unlock()
		return
	}
	d.pending[key] = true
	post := d.post
	d.mu.Unlock()

	post(func() {
		d.mu.Lock()
		if d.destroyed {
			delete(d.pending, key)
			delete(d.callbacks, key)
			d.mu.Unlock()
			return
		}
		fn := d.callbacks[key]
		delete(d.pending, key)
		delete(d.callbacks, key)
		d.mu.Unlock()

		if fn != nil {
			fn()
		}
	})
}

// Run schedules fn without coalescing.
func (d *Dispatcher) Run(fn func()) {
	if fn == nil {
		return
	}

	d.mu.Lock()
	if d.destroyed {
		d.mu.Unlock()
		return
	}
	post := d.post
	d.mu.Unlock()

	post(func() {
		d.mu.Lock()
		destroyed := d.destroyed
		d.mu.Unlock()
		if !destroyed {
			fn()
		}
	})
}

// Destroy drops pending work; later posts are ignored.
func (d *Dispatcher) Destroy() {
	d.mu.Lock()
	d.destroyed = true
	d.pending = map[string]bool{}
	d.callbacks = map[string]func(){}
	d.mu.Unlock()
}
