package entity

import (
	"errors"
	"fmt"
)

// ActionKind identifies the variant of a confirmation action.
type ActionKind int

const (
	// ActionKindDefault is a regular choice.
	ActionKindDefault ActionKind = iota
	// ActionKindDestructive is a choice that destroys or discards data.
	ActionKindDestructive
	// ActionKindCancel backs out of the confirmation.
	ActionKindCancel
)

// String returns the lowercase name of the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionKindDefault:
		return "default"
	case ActionKindDestructive:
		return "destructive"
	case ActionKindCancel:
		return "cancel"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

var (
	// ErrNoActions is reported when a confirmation is requested without any action.
	ErrNoActions = errors.New("confirmation requires at least one action")

	// ErrMultiplePreferred is reported when more than one action is marked preferred.
	ErrMultiplePreferred = errors.New("confirmation accepts at most one preferred action")
)

// Action is one selectable choice of a confirmation dialog.
// Actions are immutable values; two actions are equal when their kind,
// label and preferred flag are equal.
type Action struct {
	kind      ActionKind
	label     string
	hasLabel  bool
	preferred bool
}

// DefaultAction creates a regular action.
func DefaultAction(label string) Action {
	return Action{kind: ActionKindDefault, label: label, hasLabel: true}
}

// DestructiveAction creates an action rendered as destructive.
func DestructiveAction(label string) Action {
	return Action{kind: ActionKindDestructive, label: label, hasLabel: true}
}

// CancelAction creates a cancel action without a label.
// Hosts substitute the localized "cancelAction" string.
func CancelAction() Action {
	return Action{kind: ActionKindCancel}
}

// CancelActionWithLabel creates a cancel action with an explicit label.
func CancelActionWithLabel(label string) Action {
	return Action{kind: ActionKindCancel, label: label, hasLabel: true}
}

// AsPreferred returns a copy of the action bound to the default/return affordance.
// Cancel actions cannot be preferred and are returned unchanged.
func (a Action) AsPreferred() Action {
	if a.kind == ActionKindCancel {
		return a
	}
	a.preferred = true
	return a
}

// withoutPreference returns a copy of the action with the preferred flag cleared.
func (a Action) withoutPreference() Action {
	a.preferred = false
	return a
}

// Kind returns the variant of the action.
func (a Action) Kind() ActionKind {
	return a.kind
}

// Label returns the label and whether one was given.
func (a Action) Label() (string, bool) {
	return a.label, a.hasLabel
}

// IsPreferred reports whether the action is bound to the default affordance.
func (a Action) IsPreferred() bool {
	return a.preferred
}

// IsCancel reports whether the action is a cancel action.
func (a Action) IsCancel() bool {
	return a.kind == ActionKindCancel
}

// IsDestructive reports whether the action is destructive.
func (a Action) IsDestructive() bool {
	return a.kind == ActionKindDestructive
}

// String renders the action for logs.
func (a Action) String() string {
	label := "<default label>"
	if a.hasLabel {
		label = fmt.Sprintf("%q", a.label)
	}
	if a.preferred {
		return fmt.Sprintf("%s(%s, preferred)", a.kind, label)
	}
	return fmt.Sprintf("%s(%s)", a.kind, label)
}

// ValidateActions checks the presentation preconditions on an action list.
func ValidateActions(actions []Action) error {
	if len(actions) == 0 {
		return ErrNoActions
	}
	preferred := 0
	for _, a := range actions {
		if a.preferred {
			preferred++
		}
	}
	if preferred > 1 {
		return fmt.Errorf("%w: %d actions marked preferred", ErrMultiplePreferred, preferred)
	}
	return nil
}

// NormalizeActions returns a copy of actions where only the first preferred
// action keeps its flag. The second return value reports whether any action
// was demoted.
func NormalizeActions(actions []Action) ([]Action, bool) {
	out := make([]Action, len(actions))
	seen := false
	demoted := false
	for i, a := range actions {
		if a.preferred {
			if seen {
				a = a.withoutPreference()
				demoted = true
			}
			seen = true
		}
		out[i] = a
	}
	return out, demoted
}

// FallbackAction returns the action a dialog resolves to when it is closed
// without any control being activated: the first cancel action, else the
// first action, else a synthesized cancel.
func FallbackAction(actions []Action) Action {
	for _, a := range actions {
		if a.IsCancel() {
			return a
		}
	}
	if len(actions) > 0 {
		return actions[0]
	}
	return CancelAction()
}

// Result is the outcome of one presentation: either a selected action or
// no selection at all.
type Result struct {
	action   Action
	selected bool
}

// Selected creates a result carrying the chosen action.
func Selected(action Action) Result {
	return Result{action: action, selected: true}
}

// NoSelection creates a result for a presentation that could not happen.
func NoSelection() Result {
	return Result{}
}

// Action returns the chosen action and whether there is one.
func (r Result) Action() (Action, bool) {
	return r.action, r.selected
}

// IsSelected reports whether an action was chosen.
func (r Result) IsSelected() bool {
	return r.selected
}

// String renders the result for logs.
func (r Result) String() string {
	if !r.selected {
		return "none"
	}
	return r.action.String()
}
