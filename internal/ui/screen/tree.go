// Package screen keeps the live tree of terminal screens the overlay host
// presents confirmations on.
package screen

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
)

var (
	// ErrAlreadyPresenting is returned when a screen already presents another one.
	ErrAlreadyPresenting = errors.New("screen already presents another screen")
	// ErrDetached is returned for operations on screens removed from the tree.
	ErrDetached = errors.New("screen is no longer part of the tree")
	// ErrNotRoot is returned when a non-root screen is made key.
	ErrNotRoot = errors.New("only root screens can hold focus")
)

// Tree is a concurrency-safe screen hierarchy. Roots are top-level screens;
// each screen has ordered structural children and at most one presented
// screen covering it.
type Tree struct {
	mu    sync.RWMutex
	roots []*Screen
	key   *Screen
}

var _ port.SurfaceTree = (*Tree)(nil)

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// AddRoot appends a top-level screen. The first root becomes key.
func (t *Tree) AddRoot(title string) *Screen {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.newScreen(title, entity.SurfaceKindScreen)
	s.attached = true
	t.roots = append(t.roots, s)
	if t.key == nil {
		t.key = s
	}
	return s
}

// SetKey gives input focus to root. A nil root clears focus.
func (t *Tree) SetKey(root *Screen) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if root == nil {
		t.key = nil
		return nil
	}
	if root.removed {
		return ErrDetached
	}
	if !t.isRootLocked(root) {
		return ErrNotRoot
	}
	t.key = root
	return nil
}

// Key returns the focused root, or nil.
func (t *Tree) Key() *Screen {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.key
}

// Roots implements port.SurfaceTree.
func (t *Tree) Roots() []port.Surface {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]port.Surface, 0, len(t.roots))
	for _, r := range t.roots {
		out = append(out, r)
	}
	return out
}

// Lookup implements port.SurfaceTree. Removed screens are not found.
func (t *Tree) Lookup(ref entity.SurfaceRef) (port.Surface, bool) {
	s, ok := t.Find(ref)
	if !ok {
		return nil, false
	}
	return s, true
}

// Find is Lookup returning the concrete screen.
func (t *Tree) Find(ref entity.SurfaceRef) (*Screen, bool) {
	if ref.IsZero() {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, r := range t.roots {
		if s := r.findLocked(ref); s != nil {
			return s, true
		}
	}
	return nil, false
}

// Top returns the deepest presented screen of the key root, which is what
// the terminal shows. It returns nil without a key root.
func (t *Tree) Top() *Screen {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := t.key
	for s != nil && s.presented != nil {
		s = s.presented
	}
	return s
}

// RemoveRoot drops a root and everything under it.
func (t *Tree) RemoveRoot(root *Screen) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, r := range t.roots {
		if r == root {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			root.markRemovedLocked()
			break
		}
	}
	if t.key == root {
		t.key = nil
	}
}

func (t *Tree) newScreen(title string, kind entity.SurfaceKind) *Screen {
	return &Screen{
		tree:  t,
		ref:   entity.NewSurfaceRef(uuid.NewString()),
		title: title,
		kind:  kind,
	}
}

func (t *Tree) isRootLocked(s *Screen) bool {
	for _, r := range t.roots {
		if r == s {
			return true
		}
	}
	return false
}
