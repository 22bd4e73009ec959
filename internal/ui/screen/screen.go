package screen

import (
	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
)

// Screen is one node of a Tree.
type Screen struct {
	tree      *Tree
	ref       entity.SurfaceRef
	title     string
	kind      entity.SurfaceKind
	attached  bool
	removed   bool
	parent    *Screen
	presenter *Screen
	presented *Screen
	children  []*Screen
}

var _ port.Surface = (*Screen)(nil)

// Ref implements port.Surface.
func (s *Screen) Ref() entity.SurfaceRef { return s.ref }

// Kind implements port.Surface.
func (s *Screen) Kind() entity.SurfaceKind { return s.kind }

// Title is the screen's display name.
func (s *Screen) Title() string {
	s.tree.mu.RLock()
	defer s.tree.mu.RUnlock()
	return s.title
}

// IsKey reports whether s is the focused root.
func (s *Screen) IsKey() bool {
	s.tree.mu.RLock()
	defer s.tree.mu.RUnlock()
	return s.tree.key == s
}

// IsAttached reports whether s is in its parent's visible hierarchy.
func (s *Screen) IsAttached() bool {
	s.tree.mu.RLock()
	defer s.tree.mu.RUnlock()
	return s.attached && !s.removed
}

// PresentedSurface implements port.Surface.
func (s *Screen) PresentedSurface() port.Surface {
	s.tree.mu.RLock()
	defer s.tree.mu.RUnlock()
	if s.presented == nil {
		return nil
	}
	return s.presented
}

// Presented returns the screen covering s, or nil.
func (s *Screen) Presented() *Screen {
	s.tree.mu.RLock()
	defer s.tree.mu.RUnlock()
	return s.presented
}

// ChildSurfaces implements port.Surface.
func (s *Screen) ChildSurfaces() []port.Surface {
	s.tree.mu.RLock()
	defer s.tree.mu.RUnlock()

	out := make([]port.Surface, 0, len(s.children))
	for _, c := range s.children {
		out = append(out, c)
	}
	return out
}

// AddChild appends an attached structural child.
func (s *Screen) AddChild(title string) (*Screen, error) {
	s.tree.mu.Lock()
	defer s.tree.mu.Unlock()

	if s.removed {
		return nil, ErrDetached
	}
	child := s.tree.newScreen(title, entity.SurfaceKindScreen)
	child.attached = true
	child.parent = s
	s.children = append(s.children, child)
	return child, nil
}

// SetAttached shows or hides a structural child without removing it.
func (s *Screen) SetAttached(attached bool) {
	s.tree.mu.Lock()
	defer s.tree.mu.Unlock()
	s.attached = attached
}

// Present covers s with a new screen of the given kind.
func (s *Screen) Present(title string, kind entity.SurfaceKind) (*Screen, error) {
	s.tree.mu.Lock()
	defer s.tree.mu.Unlock()

	if s.removed {
		return nil, ErrDetached
	}
	if s.presented != nil {
		return nil, ErrAlreadyPresenting
	}
	p := s.tree.newScreen(title, kind)
	p.attached = true
	p.presenter = s
	s.presented = p
	return p, nil
}

// Dismiss removes a presented screen and everything it presents. Dismissing
// a screen that was not presented, or twice, is a no-op.
func (s *Screen) Dismiss() {
	s.tree.mu.Lock()
	defer s.tree.mu.Unlock()

	if s.presenter == nil || s.removed {
		return
	}
	if s.presenter.presented == s {
		s.presenter.presented = nil
	}
	s.markRemovedLocked()
}

// Remove detaches a structural child from its parent.
func (s *Screen) Remove() {
	s.tree.mu.Lock()
	defer s.tree.mu.Unlock()

	if s.parent == nil || s.removed {
		return
	}
	siblings := s.parent.children
	for i, c := range siblings {
		if c == s {
			s.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	s.markRemovedLocked()
}

func (s *Screen) markRemovedLocked() {
	s.removed = true
	if s.presented != nil {
		s.presented.markRemovedLocked()
	}
	for _, c := range s.children {
		c.markRemovedLocked()
	}
}

func (s *Screen) findLocked(ref entity.SurfaceRef) *Screen {
	if s.removed {
		return nil
	}
	if s.ref == ref {
		return s
	}
	if s.presented != nil {
		if found := s.presented.findLocked(ref); found != nil {
			return found
		}
	}
	for _, c := range s.children {
		if found := c.findLocked(ref); found != nil {
			return found
		}
	}
	return nil
}
