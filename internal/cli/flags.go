package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/infrastructure/i18n"
)

// ErrInvalidAnchor is returned for malformed --anchor values.
var ErrInvalidAnchor = errors.New("invalid anchor")

// ParseAction parses an --action value of the form kind[:label][!]. kind is
// default, destructive or cancel; a trailing ! marks the preferred action.
// Only cancel may omit its label.
func ParseAction(s string) (entity.Action, error) {
	raw := strings.TrimSpace(s)
	preferred := strings.HasSuffix(raw, "!")
	raw = strings.TrimSuffix(raw, "!")

	kind, label, hasLabel := strings.Cut(raw, ":")
	label = norm.NFC.String(strings.TrimSpace(label))

	var action entity.Action
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "default":
		if label == "" {
			return entity.Action{}, fmt.Errorf("action %q: default actions need a label", s)
		}
		action = entity.DefaultAction(label)
	case "destructive":
		if label == "" {
			return entity.Action{}, fmt.Errorf("action %q: destructive actions need a label", s)
		}
		action = entity.DestructiveAction(label)
	case "cancel":
		if preferred {
			return entity.Action{}, fmt.Errorf("action %q: cancel actions cannot be preferred", s)
		}
		if hasLabel && label != "" {
			return entity.CancelActionWithLabel(label), nil
		}
		return entity.CancelAction(), nil
	default:
		return entity.Action{}, fmt.Errorf("action %q: unknown kind %q (want default, destructive or cancel)", s, kind)
	}

	if preferred {
		action = action.AsPreferred()
	}
	return action, nil
}

// ParseActions parses every --action value in order.
func ParseActions(values []string) ([]entity.Action, error) {
	actions := make([]entity.Action, 0, len(values))
	for _, v := range values {
		a, err := ParseAction(v)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// DefaultActions is the action set used when none is given: cancel and a
// preferred localized OK.
func DefaultActions(localizer *i18n.Localizer) []entity.Action {
	ok := "OK"
	if localizer != nil {
		if label := localizer.Localize(i18n.KeyOKAction); label != "" {
			ok = label
		}
	}
	return []entity.Action{
		entity.CancelAction(),
		entity.DefaultAction(ok).AsPreferred(),
	}
}

// ParseAnchor parses an --anchor value of the form x,y,width,height in host
// units.
func ParseAnchor(s string) (entity.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return entity.Rect{}, fmt.Errorf("%w %q: want x,y,width,height", ErrInvalidAnchor, s)
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return entity.Rect{}, fmt.Errorf("%w %q: %w", ErrInvalidAnchor, s, err)
		}
		if n < 0 {
			return entity.Rect{}, fmt.Errorf("%w %q: values cannot be negative", ErrInvalidAnchor, s)
		}
		v[i] = n
	}

	r := entity.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	if r.IsEmpty() {
		return entity.Rect{}, fmt.Errorf("%w %q: width and height must be positive", ErrInvalidAnchor, s)
	}
	return r, nil
}

// ParseStyle builds the style from the --style, --anchor and --emphasis
// flags. An anchor implies a sheet.
func ParseStyle(kind, anchor, emphasis string) (entity.Style, error) {
	var style entity.Style
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "alert":
		if anchor != "" {
			return entity.Style{}, fmt.Errorf("--anchor only applies to --style sheet")
		}
		style = entity.AlertStyle()
	case "sheet":
		if anchor == "" {
			style = entity.SheetStyle()
			break
		}
		r, err := ParseAnchor(anchor)
		if err != nil {
			return entity.Style{}, err
		}
		style = entity.AnchoredSheetStyle(r)
	default:
		return entity.Style{}, fmt.Errorf("unknown style %q (want alert or sheet)", kind)
	}

	e, err := entity.ParseEmphasis(strings.ToLower(strings.TrimSpace(emphasis)))
	if err != nil {
		return entity.Style{}, err
	}
	return style.WithEmphasis(e), nil
}
