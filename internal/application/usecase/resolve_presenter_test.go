package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/application/usecase"
	"github.com/bnema/confirm/internal/domain/entity"
)

func ids(surfaces []port.Surface) []string {
	out := make([]string, 0, len(surfaces))
	for _, s := range surfaces {
		out = append(out, s.Ref().ID())
	}
	return out
}

func TestResolvePresenter_EmptyTree(t *testing.T) {
	_, ok := usecase.ResolvePresenter(&fakeTree{})
	assert.False(t, ok)

	_, ok = usecase.ResolvePresenter(nil)
	assert.False(t, ok)
}

func TestResolvePresenter_NoKeyRoot(t *testing.T) {
	tree := &fakeTree{roots: []*fakeSurface{screen("a"), screen("b")}}

	_, ok := usecase.ResolvePresenter(tree)
	assert.False(t, ok)
}

func TestResolvePresenter_PicksKeyRootAmongMany(t *testing.T) {
	a := screen("a")
	b := screen("b")
	b.key = true
	tree := &fakeTree{roots: []*fakeSurface{a, b}}

	got, ok := usecase.ResolvePresenter(tree)
	require.True(t, ok)
	assert.Equal(t, "b", got.Ref().ID())
}

func TestResolvePresenter_DeepestPresentedWins(t *testing.T) {
	root := screen("root")
	modal := screen("modal")
	nested := screen("nested")
	root.presented = modal
	modal.presented = nested

	got, ok := usecase.ResolvePresenter(keyedTree(root))
	require.True(t, ok)
	assert.Equal(t, "nested", got.Ref().ID())
}

func TestResolvePresenter_NeverReturnsActiveDialog(t *testing.T) {
	root := screen("root")
	root.presented = &fakeSurface{id: "confirm-dialog", kind: entity.SurfaceKindDialog, attached: true}

	got, ok := usecase.ResolvePresenter(keyedTree(root))
	require.True(t, ok)
	assert.Equal(t, "root", got.Ref().ID())
}

func TestResolvePresenter_PopoverIsSkipped(t *testing.T) {
	content := screen("content")
	root := screen("root", content)
	root.presented = &fakeSurface{id: "popover", kind: entity.SurfaceKindPopover, attached: true}

	got, ok := usecase.ResolvePresenter(keyedTree(root))
	require.True(t, ok)
	assert.Equal(t, "content", got.Ref().ID())
}

func TestResolvePresenter_OnlyAttachedChildren(t *testing.T) {
	hidden := screen("hidden")
	hidden.attached = false
	visible := screen("visible")
	root := screen("root", hidden, visible)

	got, ok := usecase.ResolvePresenter(keyedTree(root))
	require.True(t, ok)
	assert.Equal(t, "visible", got.Ref().ID())
}

func TestResolvePresenter_FirstDeclaredChildWins(t *testing.T) {
	left := screen("left", screen("left-detail"))
	right := screen("right")
	root := screen("root", left, right)

	got, ok := usecase.ResolvePresenter(keyedTree(root))
	require.True(t, ok)
	assert.Equal(t, "left-detail", got.Ref().ID())

	assert.Equal(t, []string{"left-detail", "right"}, ids(usecase.VisibleSurfaces(keyedTree(root))))
}

func TestResolvePresenter_ExcludedChildDoesNotStopSiblings(t *testing.T) {
	popover := &fakeSurface{id: "popover", kind: entity.SurfaceKindPopover, attached: true}
	sibling := screen("sibling")
	root := screen("root", popover, sibling)

	got, ok := usecase.ResolvePresenter(keyedTree(root))
	require.True(t, ok)
	assert.Equal(t, "sibling", got.Ref().ID())
}

func TestResolvePresenter_ExcludedLeafOnlyFallsBackToParent(t *testing.T) {
	popover := &fakeSurface{id: "popover", kind: entity.SurfaceKindPopover, attached: true}
	root := screen("root", popover)

	got, ok := usecase.ResolvePresenter(keyedTree(root))
	require.True(t, ok)
	assert.Equal(t, "root", got.Ref().ID())
}

func TestResolvePresenter_ExcludedRootWithoutChildren(t *testing.T) {
	root := &fakeSurface{id: "root", kind: entity.SurfaceKindDialog, attached: true}

	_, ok := usecase.ResolvePresenter(keyedTree(root))
	assert.False(t, ok)
}

func TestResolvePresenter_PresentedChildBeatsStructuralChildren(t *testing.T) {
	root := screen("root", screen("child"))
	root.presented = screen("sheet")

	got, ok := usecase.ResolvePresenter(keyedTree(root))
	require.True(t, ok)
	assert.Equal(t, "sheet", got.Ref().ID())
}
