package cli

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/confirm/internal/application/usecase"
	"github.com/bnema/confirm/internal/cli/model"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/logging"
	"github.com/bnema/confirm/internal/ui/dialog"
	"github.com/bnema/confirm/internal/ui/screen"
)

// presentTUI runs a one-shot full-screen program whose only screen presents
// the confirmation. The program draws on stderr so stdout stays free for
// the answer.
func (a *App) presentTUI(ctx context.Context, in usecase.PresentConfirmationInput) (entity.Result, error) {
	log := logging.FromContext(ctx)

	tree := screen.NewTree()
	tree.AddRoot("confirm")
	host := dialog.NewTUIHost(tree, dialog.OptionsFromConfig(a.Config))
	engine := usecase.NewPresentConfirmationUseCase(host, a.Localizer)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		model.NewPrompt(host.Layer(), a.Theme),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
		tea.WithInputTTY(),
		tea.WithContext(ctx),
	)
	host.Bind(p)

	a.sink.hold()
	defer func() {
		if err := a.sink.release(); err != nil {
			log.Debug().Err(err).Msg("failed to flush held log output")
		}
	}()

	result := entity.NoSelection()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer host.Close()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		result = engine.Execute(gctx, in)
		p.Send(model.DoneMsg{})
		return nil
	})

	if err := g.Wait(); err != nil {
		return entity.NoSelection(), err
	}
	log.Debug().Stringer("result", result).Msg("terminal confirmation finished")
	return result, nil
}
