package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/confirm/internal/application/usecase"
	"github.com/bnema/confirm/internal/cli"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/logging"
)

var showOpts struct {
	title       string
	description string
	actions     []string
	style       string
	anchor      string
	emphasis    string
	json        bool
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a confirmation dialog",
	Long: `Show a confirmation dialog and print the label of the chosen action.

Actions are given in display order as kind[:label][!]:

  default:Save        a regular action
  destructive:Delete  an action drawn as destructive
  cancel              the cancel action, with the localized label
  cancel:Keep         the cancel action with a custom label

A trailing ! marks the preferred action, bound to the return key. Without any
--action the dialog offers Cancel and a preferred OK.`,
	Example: `  confirm show --title "Delete report.pdf?" --action cancel --action 'destructive:Delete!'
  confirm show --style sheet --anchor 10,4,20,1 --action default:Archive --action cancel`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	flags := showCmd.Flags()
	flags.StringVarP(&showOpts.title, "title", "t", "", "dialog title")
	flags.StringVarP(&showOpts.description, "description", "d", "", "explanatory text under the title")
	flags.StringArrayVarP(&showOpts.actions, "action", "a", nil, "action as kind[:label][!], repeatable")
	flags.StringVarP(&showOpts.style, "style", "s", "alert", "alert or sheet")
	flags.StringVar(&showOpts.anchor, "anchor", "", "anchor the sheet to x,y,width,height")
	flags.StringVarP(&showOpts.emphasis, "emphasis", "e", "", "alert emphasis: warning, informational or critical (default from config)")
	flags.BoolVar(&showOpts.json, "json", false, "print the result as JSON")
}

type showResult struct {
	Selected bool   `json:"selected"`
	Kind     string `json:"kind,omitempty"`
	Label    string `json:"label,omitempty"`
}

func runShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	actions, err := cli.ParseActions(showOpts.actions)
	if err != nil {
		return err
	}
	if len(actions) == 0 {
		actions = cli.DefaultActions(app.Localizer)
	}

	emphasis := showOpts.emphasis
	if !cmd.Flags().Changed("emphasis") {
		emphasis = app.Config.Dialog.DefaultEmphasis
	}
	style, err := cli.ParseStyle(showOpts.style, showOpts.anchor, emphasis)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Context(), "show"), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := app.Present(ctx, usecase.PresentConfirmationInput{
		Title:       showOpts.title,
		Description: showOpts.description,
		Actions:     actions,
		Style:       style,
	})
	if err != nil {
		return err
	}

	out := describe(result, app)
	if showOpts.json {
		if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
			return err
		}
	} else if out.Selected {
		fmt.Println(out.Label)
	}

	switch {
	case !out.Selected:
		return exitError{code: exitNoSelection}
	case out.Kind == entity.ActionKindCancel.String():
		return exitError{code: exitCancelled}
	default:
		return nil
	}
}

func describe(result entity.Result, app *cli.App) showResult {
	action, ok := result.Action()
	if !ok {
		return showResult{}
	}
	label, hasLabel := action.Label()
	if !hasLabel && app.Localizer != nil {
		label = app.Localizer.Localize(usecase.CancelActionKey)
	}
	return showResult{Selected: true, Kind: action.Kind().String(), Label: label}
}
