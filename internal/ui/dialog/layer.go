package dialog

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/ui/screen"
)

// frameInterval is the pace of the dismissal animation.
const frameInterval = 30 * time.Millisecond

// overlay is a dialog on screen.
type overlay struct {
	dialog     *overlayDialog
	screen     *screen.Screen
	focus      int
	dismissing bool
	frame      int
	frames     int
}

// Layer draws confirmation overlays above a program's view and routes keys
// to the topmost one. It is owned by the program loop: call Update and View
// from the model's own Update and View only.
type Layer struct {
	renderer renderer
	anim     time.Duration

	// One FIFO per presenter; the head of each queue is on screen.
	queues  map[*screen.Screen][]*overlayDialog
	visible []*overlay

	width  int
	height int
	cmds   []tea.Cmd
}

func newLayer(opts Options) *Layer {
	return &Layer{
		renderer: newRenderer(opts),
		anim:     opts.DismissAnimation,
		queues:   make(map[*screen.Screen][]*overlayDialog),
	}
}

// SetOptions applies new presentation options. Overlays already fading keep
// their frame count.
func (l *Layer) SetOptions(opts Options) {
	l.renderer = newRenderer(opts)
	l.anim = opts.DismissAnimation
}

// Active reports whether an overlay is on screen.
func (l *Layer) Active() bool {
	return len(l.visible) > 0
}

// Pending returns the number of dialogs queued or on screen.
func (l *Layer) Pending() int {
	n := 0
	for _, q := range l.queues {
		n += len(q)
	}
	return n
}

// Update handles overlay messages. consumed is true when msg belongs to the
// overlays and the embedding model must not act on it.
func (l *Layer) Update(msg tea.Msg) (cmd tea.Cmd, consumed bool) {
	l.prune()

	switch msg := msg.(type) {
	case taskMsg:
		msg.fn()
		return l.flush(), true

	case dismissTickMsg:
		o := msg.overlay
		if !l.isVisible(o) {
			return nil, true
		}
		o.frame++
		if o.frame >= o.frames {
			l.finishOverlay(o)
		} else {
			l.cmds = append(l.cmds, tick(o))
		}
		return l.flush(), true

	case tea.WindowSizeMsg:
		l.width, l.height = msg.Width, msg.Height
		return nil, false

	case tea.KeyMsg:
		if len(l.visible) == 0 {
			return nil, false
		}
		top := l.visible[len(l.visible)-1]
		if !top.dismissing {
			l.handleKey(top, msg)
		}
		return l.flush(), true
	}
	return nil, false
}

// View draws the visible overlays over base.
func (l *Layer) View(base string) string {
	if len(l.visible) == 0 {
		return base
	}

	vw, vh := l.width, l.height
	if vw == 0 || vh == 0 {
		vw, vh = viewportOf(base)
	}

	out := base
	for _, o := range l.visible {
		box := l.renderer.render(o, vw)
		w, h := viewportOf(box)

		var x, y int
		if o.dialog.spec.Flavor == entity.FlavorActionSheet {
			x, y = PlaceBelow(o.dialog.spec.Anchor, w, h, vw, vh)
		} else {
			x, y = Center(w, h, vw, vh)
		}
		out = Composite(out, box, x, y)
	}
	return out
}

// prune aborts the dialogs whose presenter left the screen tree.
func (l *Layer) prune() {
	for presenter, q := range l.queues {
		if presenter.IsAttached() {
			continue
		}
		delete(l.queues, presenter)
		for _, d := range q {
			for i, o := range l.visible {
				if o.dialog == d {
					l.visible = append(l.visible[:i], l.visible[i+1:]...)
					o.screen.Dismiss()
					break
				}
			}
			d.log.Debug().Msg("presenter left the screen, aborting overlay")
			d.abort()
		}
	}
}

func (l *Layer) flush() tea.Cmd {
	if len(l.cmds) == 0 {
		return nil
	}
	cmds := l.cmds
	l.cmds = nil
	return tea.Batch(cmds...)
}

func (l *Layer) enqueue(d *overlayDialog) {
	if d.dismissRequested() {
		d.finish()
		return
	}
	if !d.presenter.IsAttached() {
		d.log.Debug().Msg("presenter left the screen before the overlay was shown")
		d.abort()
		return
	}

	q := l.queues[d.presenter]
	l.queues[d.presenter] = append(q, d)
	if len(q) == 0 {
		l.show(d)
	} else {
		d.log.Debug().Int("position", len(q)).Msg("overlay waiting for the presenter")
	}
}

func (l *Layer) show(d *overlayDialog) {
	top := d.presenter
	for p := top.Presented(); p != nil; p = top.Presented() {
		top = p
	}

	s, err := top.Present(d.title(), entity.SurfaceKindDialog)
	if err != nil {
		d.log.Debug().Err(err).Msg("cannot cover the presenter")
		l.dequeue(d)
		d.abort()
		l.showNext(d.presenter)
		return
	}

	l.visible = append(l.visible, &overlay{
		dialog: d,
		screen: s,
		focus:  initialFocus(d.controls),
	})
	d.log.Debug().Str("flavor", string(d.spec.Flavor)).Msg("overlay shown")
}

func (l *Layer) dismiss(d *overlayDialog) {
	for _, o := range l.visible {
		if o.dialog == d {
			if !o.dismissing {
				l.startDismiss(o)
			}
			return
		}
	}
	if l.dequeue(d) {
		d.finish()
	}
}

func (l *Layer) startDismiss(o *overlay) {
	o.dismissing = true
	o.frames = int(l.anim / frameInterval)
	if o.frames <= 0 {
		l.finishOverlay(o)
		return
	}
	l.cmds = append(l.cmds, tick(o))
}

func (l *Layer) finishOverlay(o *overlay) {
	for i, v := range l.visible {
		if v == o {
			l.visible = append(l.visible[:i], l.visible[i+1:]...)
			break
		}
	}
	o.screen.Dismiss()

	d := o.dialog
	l.dequeue(d)
	d.finish()
	d.log.Debug().Msg("overlay dismissed")
	l.showNext(d.presenter)
}

func (l *Layer) showNext(presenter *screen.Screen) {
	q := l.queues[presenter]
	if len(q) == 0 {
		delete(l.queues, presenter)
		return
	}
	l.show(q[0])
}

// dequeue drops d from its presenter's queue and reports whether it was there.
func (l *Layer) dequeue(d *overlayDialog) bool {
	q := l.queues[d.presenter]
	for i, queued := range q {
		if queued == d {
			q = append(q[:i], q[i+1:]...)
			if len(q) == 0 {
				delete(l.queues, d.presenter)
			} else {
				l.queues[d.presenter] = q
			}
			return true
		}
	}
	return false
}

func (l *Layer) isVisible(o *overlay) bool {
	for _, v := range l.visible {
		if v == o {
			return true
		}
	}
	return false
}

func (l *Layer) handleKey(o *overlay, msg tea.KeyMsg) {
	keys := l.renderer.keys
	n := len(o.dialog.controls)
	if n == 0 {
		return
	}

	switch {
	case key.Matches(msg, keys.Next):
		o.focus = (o.focus + 1) % n
	case key.Matches(msg, keys.Prev):
		o.focus = (o.focus - 1 + n) % n
	case key.Matches(msg, keys.Activate):
		l.activate(o, o.focus)
	case key.Matches(msg, keys.Pick):
		if i := int(msg.String()[0] - '1'); i < n {
			l.activate(o, i)
		}
	case key.Matches(msg, keys.Cancel):
		for i, c := range o.dialog.controls {
			if c.spec.Kind == entity.ActionKindCancel {
				l.activate(o, i)
				return
			}
		}
	}
}

func (l *Layer) activate(o *overlay, i int) {
	o.focus = i
	if fn := o.dialog.controls[i].activate; fn != nil {
		fn()
	}
}

func initialFocus(controls []control) int {
	for i, c := range controls {
		if c.spec.Preferred {
			return i
		}
	}
	return 0
}

func tick(o *overlay) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return dismissTickMsg{overlay: o}
	})
}
