package dialog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/logging"
	"github.com/bnema/confirm/internal/ui/mainloop"
	"github.com/bnema/confirm/internal/ui/screen"
)

var (
	// ErrPresenterGone is returned when the presenter left the screen tree
	// between resolution and dialog construction.
	ErrPresenterGone = errors.New("presenter is no longer on screen")
	// ErrHostClosed is returned once Close has run.
	ErrHostClosed = errors.New("dialog host closed")
	// ErrNotBound is returned when no program was bound to the host yet.
	ErrNotBound = errors.New("dialog host is not bound to a program")
	// ErrNilTree is the panic value of NewTUIHost without a screen tree.
	ErrNilTree = errors.New("dialog.NewTUIHost: tree cannot be nil")
)

// TUIHost presents confirmations as overlays inside a bubbletea program.
// All overlay state lives in its Layer and is only touched from the
// program's Update loop.
type TUIHost struct {
	tree  *screen.Tree
	layer *Layer

	mu         sync.Mutex
	dispatcher *mainloop.Dispatcher
	live       map[*overlayDialog]struct{}
	closed     bool
}

var _ port.DialogHost = (*TUIHost)(nil)

// NewTUIHost creates an overlay host for the screens of tree. The host is
// usable once Bind has attached it to a running program.
func NewTUIHost(tree *screen.Tree, opts Options) *TUIHost {
	if tree == nil {
		panic(ErrNilTree)
	}
	return &TUIHost{
		tree:  tree,
		layer: newLayer(opts),
		live:  make(map[*overlayDialog]struct{}),
	}
}

// Bind routes overlay work through sender, normally the *tea.Program whose
// model forwards messages to Layer.
func (h *TUIHost) Bind(sender Sender) {
	if sender == nil {
		panic("dialog.TUIHost.Bind: sender cannot be nil")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.dispatcher != nil {
		h.dispatcher.Destroy()
	}
	h.dispatcher = mainloop.NewDispatcher(func(fn func()) {
		// Send blocks until Update picks the message up.
		go sender.Send(taskMsg{fn: fn})
	})
}

// Platform implements port.DialogHost.
func (h *TUIHost) Platform() entity.Platform {
	return entity.PlatformOverlay
}

// Surfaces implements port.DialogHost.
func (h *TUIHost) Surfaces() port.SurfaceTree {
	return h.tree
}

// Layer returns the component the program model delegates to.
func (h *TUIHost) Layer() *Layer {
	return h.layer
}

// NewDialog implements port.DialogHost. Overlays always need a presenter.
func (h *TUIHost) NewDialog(ctx context.Context, spec port.DialogSpec, presenter port.Surface) (port.NativeDialog, error) {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return nil, ErrHostClosed
	}

	if presenter == nil {
		return nil, ErrPresenterGone
	}
	s, ok := h.tree.Find(presenter.Ref())
	if !ok || !s.IsAttached() {
		return nil, fmt.Errorf("%w: %s", ErrPresenterGone, presenter.Ref().ID())
	}

	log := logging.FromContext(ctx).With().
		Str("component", "tui-dialog").
		Logger()

	return &overlayDialog{
		host:      h,
		spec:      spec,
		presenter: s,
		log:       log,
	}, nil
}

// Close aborts every dialog that is queued or on screen and drops pending
// overlay work. Call it after the program has exited.
func (h *TUIHost) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	dispatcher := h.dispatcher
	live := h.live
	h.live = make(map[*overlayDialog]struct{})
	h.mu.Unlock()

	if dispatcher != nil {
		dispatcher.Destroy()
	}
	for d := range live {
		d.abort()
	}
}

// post schedules fn on the program loop. It reports false when the host
// cannot run it.
func (h *TUIHost) post(fn func()) bool {
	h.mu.Lock()
	dispatcher := h.dispatcher
	closed := h.closed
	h.mu.Unlock()

	if closed || dispatcher == nil {
		return false
	}
	dispatcher.Run(fn)
	return true
}

func (h *TUIHost) track(d *overlayDialog) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	if h.dispatcher == nil {
		return ErrNotBound
	}
	h.live[d] = struct{}{}
	return nil
}

func (h *TUIHost) untrack(d *overlayDialog) {
	h.mu.Lock()
	delete(h.live, d)
	h.mu.Unlock()
}

type control struct {
	spec     port.ControlSpec
	activate func()
}

// overlayDialog is the port.NativeDialog of the terminal host.
type overlayDialog struct {
	host      *TUIHost
	spec      port.DialogSpec
	presenter *screen.Screen
	log       zerolog.Logger

	controls  []control
	callbacks port.DialogCallbacks

	mu        sync.Mutex
	dismissed bool
	finished  bool
	dones     []func()
}

// AddControl implements port.NativeDialog.
func (d *overlayDialog) AddControl(spec port.ControlSpec, activate func()) {
	d.controls = append(d.controls, control{spec: spec, activate: activate})
}

// Show implements port.NativeDialog. It returns once the overlay is queued.
func (d *overlayDialog) Show(_ context.Context, callbacks port.DialogCallbacks) error {
	d.callbacks = callbacks
	if err := d.host.track(d); err != nil {
		return err
	}
	if !d.host.post(func() { d.host.layer.enqueue(d) }) {
		d.host.untrack(d)
		return ErrHostClosed
	}
	d.log.Debug().Str("presenter", d.presenter.Ref().ID()).Msg("overlay queued")
	return nil
}

// Dismiss implements port.NativeDialog. done runs on the program loop once
// the dismissal animation finished, or right away when the overlay is
// already gone.
func (d *overlayDialog) Dismiss(done func()) {
	d.mu.Lock()
	if d.finished {
		d.mu.Unlock()
		if done != nil {
			done()
		}
		return
	}
	d.dismissed = true
	if done != nil {
		d.dones = append(d.dones, done)
	}
	d.mu.Unlock()

	if !d.host.post(func() { d.host.layer.dismiss(d) }) {
		d.finish()
	}
}

func (d *overlayDialog) dismissRequested() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dismissed
}

// finish marks the dialog gone and runs the pending dismissal callbacks.
func (d *overlayDialog) finish() {
	d.mu.Lock()
	if d.finished {
		d.mu.Unlock()
		return
	}
	d.finished = true
	dones := d.dones
	d.dones = nil
	d.mu.Unlock()

	d.host.untrack(d)
	for _, done := range dones {
		done()
	}
}

// abort tears the dialog down without an answer. Pending dismissals still
// complete first so an activation that already fired keeps its result.
func (d *overlayDialog) abort() {
	d.finish()
	if d.callbacks.OnAborted != nil {
		d.callbacks.OnAborted()
	}
}

func (d *overlayDialog) title() string {
	if d.spec.Title != "" {
		return d.spec.Title
	}
	return "confirmation"
}
