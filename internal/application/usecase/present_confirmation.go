package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/logging"
	"github.com/bnema/confirm/pkg/completion"
)

// CancelActionKey is the localization key of the default cancel label.
const CancelActionKey = "cancelAction"

// fallbackCancelLabel is used when no localizer is wired.
const fallbackCancelLabel = "Cancel"

// PresentConfirmationInput holds the parameters of one presentation.
// Empty Title or Description means absent.
type PresentConfirmationInput struct {
	Title       string
	Description string
	Actions     []entity.Action
	Style       entity.Style
}

// PresentConfirmationUseCase shows a confirmation dialog on a DialogHost and
// waits for the user's choice.
type PresentConfirmationUseCase struct {
	host      port.DialogHost
	localizer port.Localizer
}

// NewPresentConfirmationUseCase creates the presentation engine for a host.
// localizer may be nil; the English cancel label is used then.
func NewPresentConfirmationUseCase(host port.DialogHost, localizer port.Localizer) *PresentConfirmationUseCase {
	if host == nil {
		panic("usecase.NewPresentConfirmationUseCase: host cannot be nil")
	}
	return &PresentConfirmationUseCase{
		host:      host,
		localizer: localizer,
	}
}

// Execute presents the confirmation and blocks until the user picks an
// action. It returns entity.NoSelection when no presenter could be resolved
// or the host aborted before any action fired. It panics when Actions is
// empty.
func (uc *PresentConfirmationUseCase) Execute(ctx context.Context, in PresentConfirmationInput) entity.Result {
	invalid := entity.ValidateActions(in.Actions)
	if errors.Is(invalid, entity.ErrNoActions) {
		panic(fmt.Sprintf("usecase.PresentConfirmation: %v", invalid))
	}

	presentationID := uuid.NewString()
	ctx = logging.WithPresentationID(ctx, presentationID)
	log := logging.FromContext(ctx).With().
		Str("component", "confirmation").
		Str("platform", string(uc.host.Platform())).
		Str("style", in.Style.Kind().String()).
		Logger()

	if invalid != nil {
		log.Warn().Err(invalid).Msg("keeping the first preferred action")
	}
	actions, _ := entity.NormalizeActions(in.Actions)

	presenter, ok := uc.resolvePresenter(in.Style, &log)
	if !ok {
		log.Info().Msg("no presenter available, skipping confirmation")
		return entity.NoSelection()
	}

	flavor := entity.FlavorFor(uc.host.Platform(), in.Style)
	spec := port.DialogSpec{
		PresentationID: presentationID,
		Title:          in.Title,
		Message:        in.Description,
		Flavor:         flavor,
		Emphasis:       in.Style.Emphasis(),
	}
	if flavor == entity.FlavorActionSheet {
		spec.Anchor, _ = in.Style.Anchor()
	}

	dialog, err := uc.host.NewDialog(ctx, spec, presenter)
	if err != nil {
		log.Error().Err(err).Msg("failed to build dialog")
		return entity.NoSelection()
	}

	bridge := completion.New[entity.Result]()
	selection := &pendingSelection{}
	for _, action := range actions {
		dialog.AddControl(uc.controlFor(action), func() {
			resolve, claimed := bridge.Claim()
			if !claimed {
				log.Debug().Stringer("action", action).Msg("ignoring activation, confirmation already answered")
				return
			}
			log.Debug().Stringer("action", action).Msg("action activated")
			settle := func() { resolve(entity.Selected(action)) }
			selection.set(settle)
			dialog.Dismiss(settle)
		})
	}

	callbacks := port.DialogCallbacks{
		OnClosed: func() {
			if selection.settle() {
				log.Debug().Msg("dialog closed while its dismissal was pending")
				return
			}
			fallback := entity.FallbackAction(actions)
			if bridge.Resolve(entity.Selected(fallback)) {
				log.Debug().Stringer("action", fallback).Msg("dialog closed without selection, using fallback")
			}
		},
		OnAborted: func() {
			if selection.settle() {
				return
			}
			if bridge.Resolve(entity.NoSelection()) {
				log.Debug().Msg("dialog aborted by host")
			}
		},
	}

	log.Debug().Str("flavor", string(flavor)).Int("actions", len(actions)).Msg("showing confirmation")
	if err := dialog.Show(ctx, callbacks); err != nil {
		log.Error().Err(err).Msg("failed to show dialog")
		return entity.NoSelection()
	}
	if uc.host.Platform() == entity.PlatformWindowModal && selection.settle() {
		// The window is gone; its dismissal may still be queued on this thread.
		log.Debug().Msg("settled activation after the window closed")
	}

	result, err := bridge.Wait(ctx)
	if err != nil {
		if errors.Is(err, completion.ErrCancelled) {
			if resolve, claimed := bridge.Claim(); claimed {
				dialog.Dismiss(func() { resolve(entity.NoSelection()) })
			}
			log.Debug().Msg("confirmation cancelled before an action fired")
		}
		return entity.NoSelection()
	}

	log.Debug().Stringer("result", result).Msg("confirmation answered")
	return result
}

// pendingSelection holds the resolution of an activated control until its
// dismissal completes. settle may run from any teardown path; the bridge
// keeps only the first value.
type pendingSelection struct {
	mu sync.Mutex
	fn func()
}

func (p *pendingSelection) set(fn func()) {
	p.mu.Lock()
	p.fn = fn
	p.mu.Unlock()
}

// settle resolves the activated control, if any, and reports whether there
// was one.
func (p *pendingSelection) settle() bool {
	p.mu.Lock()
	fn := p.fn
	p.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// resolvePresenter picks the surface the dialog is shown on. A nil surface
// with ok=true means the host presents application-modally.
func (uc *PresentConfirmationUseCase) resolvePresenter(style entity.Style, log *zerolog.Logger) (port.Surface, bool) {
	tree := uc.host.Surfaces()

	if ref, ok := style.Target(); ok {
		if tree == nil {
			return nil, false
		}
		surface, found := tree.Lookup(ref)
		if !found {
			log.Debug().Str("target", ref.ID()).Msg("target surface is gone")
			return nil, false
		}
		return surface, true
	}

	if uc.host.Platform() == entity.PlatformWindowModal {
		if style.Kind() == entity.StyleKindAlert {
			return nil, true
		}
		root := KeyRoot(tree)
		if root == nil {
			log.Debug().Msg("no focused window to attach the sheet to")
			return nil, false
		}
		return root, true
	}

	return ResolvePresenter(tree)
}

func (uc *PresentConfirmationUseCase) controlFor(action entity.Action) port.ControlSpec {
	label, ok := action.Label()
	if !ok {
		label = uc.cancelLabel()
	}
	return port.ControlSpec{
		Label:     label,
		Kind:      action.Kind(),
		Preferred: action.IsPreferred(),
	}
}

func (uc *PresentConfirmationUseCase) cancelLabel() string {
	if uc.localizer == nil {
		return fallbackCancelLabel
	}
	if label := uc.localizer.Localize(CancelActionKey); label != "" {
		return label
	}
	return fallbackCancelLabel
}
