package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/confirm/internal/application/usecase"
	"github.com/bnema/confirm/internal/cli/model"
	"github.com/bnema/confirm/internal/infrastructure/config"
	"github.com/bnema/confirm/internal/logging"
	"github.com/bnema/confirm/internal/ui/dialog"
	"github.com/bnema/confirm/internal/ui/screen"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Try the terminal dialogs interactively",
	Long: `Open a small terminal app that presents alerts, anchored action sheets,
queued dialogs and dialogs whose screen disappears while they are shown.

The configuration file is watched: palette and dialog changes apply live.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := logging.WithComponent(app.Context(), "demo")
	log := logging.FromContext(ctx)

	tree := screen.NewTree()
	root := tree.AddRoot("demo")
	host := dialog.NewTUIHost(tree, dialog.OptionsFromConfig(app.Config))
	defer host.Close()

	m := model.NewDemo(ctx, model.DemoDeps{
		Root:   root,
		Host:   host,
		Engine: usecase.NewPresentConfirmationUseCase(host, app.Localizer),
		Theme:  app.Theme,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	host.Bind(p)

	manager := app.ConfigManager()
	manager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ConfigChangedMsg{Config: cfg})
	})
	if err := manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}
