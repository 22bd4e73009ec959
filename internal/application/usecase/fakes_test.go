package usecase_test

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

type fakeSurface struct {
	id        string
	kind      entity.SurfaceKind
	key       bool
	attached  bool
	presented *fakeSurface
	children  []*fakeSurface
}

func screen(id string, children ...*fakeSurface) *fakeSurface {
	return &fakeSurface{id: id, kind: entity.SurfaceKindScreen, attached: true, children: children}
}

func (s *fakeSurface) Ref() entity.SurfaceRef   { return entity.NewSurfaceRef(s.id) }
func (s *fakeSurface) Kind() entity.SurfaceKind { return s.kind }
func (s *fakeSurface) IsKey() bool              { return s.key }
func (s *fakeSurface) IsAttached() bool         { return s.attached }

func (s *fakeSurface) PresentedSurface() port.Surface {
	if s.presented == nil {
		return nil
	}
	return s.presented
}

func (s *fakeSurface) ChildSurfaces() []port.Surface {
	out := make([]port.Surface, 0, len(s.children))
	for _, c := range s.children {
		out = append(out, c)
	}
	return out
}

type fakeTree struct {
	roots []*fakeSurface
}

func (t *fakeTree) Roots() []port.Surface {
	out := make([]port.Surface, 0, len(t.roots))
	for _, r := range t.roots {
		out = append(out, r)
	}
	return out
}

func (t *fakeTree) Lookup(ref entity.SurfaceRef) (port.Surface, bool) {
	var walk func(s *fakeSurface) *fakeSurface
	walk = func(s *fakeSurface) *fakeSurface {
		if s == nil {
			return nil
		}
		if s.id == ref.ID() {
			return s
		}
		if found := walk(s.presented); found != nil {
			return found
		}
		for _, c := range s.children {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	for _, r := range t.roots {
		if found := walk(r); found != nil {
			return found, true
		}
	}
	return nil, false
}

type fakeControl struct {
	spec     port.ControlSpec
	activate func()
}

// fakeDialog records what the engine builds. onShow runs inside Show, the
// way a modal host runs its loop while the dialog is displayed. With
// deferDismiss set, Dismiss keeps done until runDeferred, like a host that
// posts the dismissal to its main loop.
type fakeDialog struct {
	mu           sync.Mutex
	controls     []fakeControl
	callbacks    port.DialogCallbacks
	shown        bool
	dismissed    int
	showErr      error
	onShow       func(d *fakeDialog)
	deferDismiss bool
	deferred     []func()
}

func (d *fakeDialog) AddControl(spec port.ControlSpec, activate func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.controls = append(d.controls, fakeControl{spec: spec, activate: activate})
}

func (d *fakeDialog) Show(_ context.Context, callbacks port.DialogCallbacks) error {
	if d.showErr != nil {
		return d.showErr
	}
	d.mu.Lock()
	d.shown = true
	d.callbacks = callbacks
	d.mu.Unlock()
	if d.onShow != nil {
		d.onShow(d)
	}
	return nil
}

func (d *fakeDialog) Dismiss(done func()) {
	d.mu.Lock()
	d.dismissed++
	if d.deferDismiss {
		if done != nil {
			d.deferred = append(d.deferred, done)
		}
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	if done != nil {
		done()
	}
}

func (d *fakeDialog) runDeferred() {
	d.mu.Lock()
	pending := d.deferred
	d.deferred = nil
	d.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

func (d *fakeDialog) labels() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.controls))
	for _, c := range d.controls {
		out = append(out, c.spec.Label)
	}
	return out
}

func (d *fakeDialog) activate(i int) {
	d.mu.Lock()
	fn := d.controls[i].activate
	d.mu.Unlock()
	fn()
}

func (d *fakeDialog) dismissCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dismissed
}

type fakeHost struct {
	platform  entity.Platform
	tree      port.SurfaceTree
	dialog    *fakeDialog
	err       error
	calls     int
	specs     []port.DialogSpec
	presenter port.Surface
	ctx       context.Context
}

func (h *fakeHost) Platform() entity.Platform  { return h.platform }
func (h *fakeHost) Surfaces() port.SurfaceTree { return h.tree }

func (h *fakeHost) NewDialog(ctx context.Context, spec port.DialogSpec, presenter port.Surface) (port.NativeDialog, error) {
	h.calls++
	h.ctx = ctx
	h.specs = append(h.specs, spec)
	h.presenter = presenter
	if h.err != nil {
		return nil, h.err
	}
	return h.dialog, nil
}

// keyedTree builds a tree with one focused root window.
func keyedTree(root *fakeSurface) *fakeTree {
	root.key = true
	return &fakeTree{roots: []*fakeSurface{root}}
}
