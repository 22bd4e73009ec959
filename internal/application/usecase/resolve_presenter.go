package usecase

import (
	"github.com/bnema/confirm/internal/application/port"
)

// ResolvePresenter finds the surface a new modal dialog should be shown on:
// the deepest visible, non-transient surface under the key root. It returns
// false when nothing qualifies, which is a legitimate "cannot present now"
// outcome rather than an error.
//
// When several structural children are visible at once the first one in
// declaration order wins.
func ResolvePresenter(tree port.SurfaceTree) (port.Surface, bool) {
	leaves := VisibleSurfaces(tree)
	if len(leaves) == 0 {
		return nil, false
	}
	return leaves[0], true
}

// VisibleSurfaces returns every visible leaf surface under the key root, in
// depth-first declaration order.
func VisibleSurfaces(tree port.SurfaceTree) []port.Surface {
	root := KeyRoot(tree)
	if root == nil {
		return nil
	}
	return visibleLeaves(root)
}

// KeyRoot returns the first root surface holding input focus, or nil.
func KeyRoot(tree port.SurfaceTree) port.Surface {
	if tree == nil {
		return nil
	}
	for _, root := range tree.Roots() {
		if root != nil && root.IsKey() {
			return root
		}
	}
	return nil
}

func visibleLeaves(parent port.Surface) []port.Surface {
	if presented := parent.PresentedSurface(); presented != nil && !isExcluded(presented) {
		return visibleLeaves(presented)
	}

	var leaves []port.Surface
	for _, child := range parent.ChildSurfaces() {
		if child == nil || !child.IsAttached() {
			continue
		}
		leaves = append(leaves, visibleLeaves(child)...)
	}

	if len(leaves) > 0 {
		return leaves
	}
	if isExcluded(parent) {
		return nil
	}
	return []port.Surface{parent}
}

// isExcluded reports whether a surface is itself a dialog host or a popover.
func isExcluded(s port.Surface) bool {
	return !s.Kind().CanPresent()
}
