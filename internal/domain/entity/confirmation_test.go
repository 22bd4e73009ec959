package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_Accessors(t *testing.T) {
	tests := []struct {
		name          string
		action        Action
		wantLabel     string
		wantHasLabel  bool
		wantPreferred bool
		wantCancel    bool
		wantKind      ActionKind
	}{
		{"default", DefaultAction("Save"), "Save", true, false, false, ActionKindDefault},
		{"default preferred", DefaultAction("Save").AsPreferred(), "Save", true, true, false, ActionKindDefault},
		{"destructive", DestructiveAction("Delete"), "Delete", true, false, false, ActionKindDestructive},
		{"destructive preferred", DestructiveAction("Delete").AsPreferred(), "Delete", true, true, false, ActionKindDestructive},
		{"cancel", CancelAction(), "", false, false, true, ActionKindCancel},
		{"cancel with label", CancelActionWithLabel("Back"), "Back", true, false, true, ActionKindCancel},
		{"cancel never preferred", CancelAction().AsPreferred(), "", false, false, true, ActionKindCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := tt.action.Label()
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantHasLabel, ok)
			assert.Equal(t, tt.wantPreferred, tt.action.IsPreferred())
			assert.Equal(t, tt.wantCancel, tt.action.IsCancel())
			assert.Equal(t, tt.wantKind, tt.action.Kind())
		})
	}
}

func TestAction_StructuralEquality(t *testing.T) {
	assert.Equal(t, DefaultAction("OK"), DefaultAction("OK"))
	assert.True(t, DefaultAction("OK") == DefaultAction("OK"))
	assert.False(t, DefaultAction("OK") == DefaultAction("OK").AsPreferred())
	assert.False(t, DefaultAction("OK") == DestructiveAction("OK"))
	assert.False(t, CancelAction() == CancelActionWithLabel(""))
}

func TestValidateActions(t *testing.T) {
	assert.ErrorIs(t, ValidateActions(nil), ErrNoActions)
	assert.NoError(t, ValidateActions([]Action{CancelAction()}))
	assert.NoError(t, ValidateActions([]Action{DefaultAction("A").AsPreferred(), CancelAction()}))

	err := ValidateActions([]Action{DefaultAction("A").AsPreferred(), DestructiveAction("B").AsPreferred()})
	assert.True(t, errors.Is(err, ErrMultiplePreferred))
}

func TestNormalizeActions_KeepsFirstPreferred(t *testing.T) {
	in := []Action{
		DefaultAction("A"),
		DefaultAction("B").AsPreferred(),
		DestructiveAction("C").AsPreferred(),
	}

	out, demoted := NormalizeActions(in)

	assert.True(t, demoted)
	assert.Equal(t, []Action{DefaultAction("A"), DefaultAction("B").AsPreferred(), DestructiveAction("C")}, out)
	// input untouched
	assert.True(t, in[2].IsPreferred())
}

func TestFallbackAction(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Action
	}{
		{"first cancel wins", []Action{DefaultAction("A"), CancelActionWithLabel("X"), CancelAction()}, CancelActionWithLabel("X")},
		{"first action without cancel", []Action{DestructiveAction("A"), DefaultAction("B")}, DestructiveAction("A")},
		{"synthesized cancel when empty", nil, CancelAction()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackAction(tt.actions))
		})
	}
}

func TestResult(t *testing.T) {
	none := NoSelection()
	_, ok := none.Action()
	assert.False(t, ok)
	assert.Equal(t, "none", none.String())

	sel := Selected(DefaultAction("Go"))
	a, ok := sel.Action()
	assert.True(t, ok)
	assert.Equal(t, DefaultAction("Go"), a)
}

func TestFlavorFor(t *testing.T) {
	anchored := AnchoredSheetStyle(Rect{X: 1, Y: 2, Width: 10, Height: 1})

	assert.Equal(t, FlavorModalAlert, FlavorFor(PlatformWindowModal, AlertStyle()))
	assert.Equal(t, FlavorSheet, FlavorFor(PlatformWindowModal, SheetStyle()))
	assert.Equal(t, FlavorSheet, FlavorFor(PlatformWindowModal, anchored))
	assert.Equal(t, FlavorAlert, FlavorFor(PlatformOverlay, AlertStyle()))
	assert.Equal(t, FlavorAlert, FlavorFor(PlatformOverlay, SheetStyle()))
	assert.Equal(t, FlavorActionSheet, FlavorFor(PlatformOverlay, anchored))
}

func TestStyle_Options(t *testing.T) {
	ref := NewSurfaceRef("win-1")

	alert := AlertStyle().WithTarget(ref).WithEmphasis(EmphasisCritical)
	got, ok := alert.Target()
	assert.True(t, ok)
	assert.Equal(t, ref, got)
	assert.Equal(t, EmphasisCritical, alert.Emphasis())

	sheet := SheetStyle().WithEmphasis(EmphasisCritical)
	assert.Equal(t, Emphasis(""), sheet.Emphasis())
	_, ok = sheet.Target()
	assert.False(t, ok)
	_, ok = sheet.Anchor()
	assert.False(t, ok)
}

func TestParseEmphasis(t *testing.T) {
	e, err := ParseEmphasis("")
	assert.NoError(t, err)
	assert.Equal(t, EmphasisWarning, e)

	e, err = ParseEmphasis("critical")
	assert.NoError(t, err)
	assert.Equal(t, EmphasisCritical, e)

	_, err = ParseEmphasis("loud")
	assert.Error(t, err)
}

func TestSurfaceKind_CanPresent(t *testing.T) {
	assert.True(t, SurfaceKindScreen.CanPresent())
	assert.False(t, SurfaceKindDialog.CanPresent())
	assert.False(t, SurfaceKindPopover.CanPresent())
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 10, Height: 4}
	assert.False(t, r.IsEmpty())
	assert.Equal(t, 12, r.Right())
	assert.Equal(t, 7, r.Bottom())

	assert.True(t, Rect{Width: 0, Height: 4}.IsEmpty())
	assert.True(t, Rect{Width: 3, Height: -1}.IsEmpty())
}
