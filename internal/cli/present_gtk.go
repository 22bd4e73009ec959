package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/confirm/internal/application/usecase"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/logging"
	"github.com/bnema/confirm/internal/ui/gtkdialog"
)

// applicationID is the GApplication id of the dialog process.
const applicationID = "io.github.bnema.confirm"

// presentGTK runs a windowless GTK application for the lifetime of one
// confirmation. GTK must stay on the thread that initialised it.
func (a *App) presentGTK(ctx context.Context, in usecase.PresentConfirmationInput) (entity.Result, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := logging.FromContext(ctx)
	gtkdialog.InstallGLibLogHandler(*log)

	app := gtk.NewApplication(applicationID, gio.ApplicationNonUnique)
	result := entity.NoSelection()

	app.ConnectActivate(func() {
		app.Hold()
		defer app.Release()

		gtkdialog.ApplyPalette(ctx, gdk.DisplayGetDefault(), a.Config.Appearance.Palette)

		host := gtkdialog.NewHost(app)
		defer host.Close()

		result = usecase.NewPresentConfirmationUseCase(host, a.Localizer).Execute(ctx, in)
	})

	if code := app.Run([]string{os.Args[0]}); code != 0 {
		return entity.NoSelection(), fmt.Errorf("gtk application exited with status %d", code)
	}
	log.Debug().Stringer("result", result).Msg("gtk confirmation finished")
	return result, nil
}
