package gtkdialog

import (
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/rs/zerolog"
)

// InstallGLibLogHandler routes GLib and GTK log records into log.
func InstallGLibLogHandler(log zerolog.Logger) {
	log = log.With().Str("component", "glib").Logger()

	coreglib.LogSetWriter(func(lvl coreglib.LogLevelFlags, fields map[string]string) coreglib.LogWriterOutput {
		event := log.WithLevel(levelFor(lvl))
		if domain := fields["GLIB_DOMAIN"]; domain != "" {
			event = event.Str("domain", domain)
		}
		event.Msg(fields["MESSAGE"])
		return coreglib.LogWriterHandled
	})
}

func levelFor(lvl coreglib.LogLevelFlags) zerolog.Level {
	switch {
	case lvl&coreglib.LogLevelError != 0:
		return zerolog.ErrorLevel
	case lvl&coreglib.LogLevelCritical != 0:
		return zerolog.ErrorLevel
	case lvl&coreglib.LogLevelWarning != 0:
		return zerolog.WarnLevel
	case lvl&(coreglib.LogLevelMessage|coreglib.LogLevelInfo) != 0:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
