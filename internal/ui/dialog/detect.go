package dialog

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/bnema/confirm/internal/infrastructure/config"
)

// ErrNoHostAvailable is returned by DetectHost when there is neither a
// display server nor a terminal to draw on.
var ErrNoHostAvailable = errors.New("no dialog host available: no display server and stdout is not a terminal")

// HostKind names a concrete dialog host.
type HostKind string

const (
	HostKindGTK HostKind = "gtk"
	HostKindTUI HostKind = "tui"
)

// Environment is what host detection looks at.
type Environment struct {
	Getenv     func(string) string
	IsTerminal func(fd int) bool
	StdoutFd   int
}

// SystemEnvironment inspects the running process.
func SystemEnvironment() Environment {
	return Environment{
		Getenv:     os.Getenv,
		IsTerminal: term.IsTerminal,
		StdoutFd:   int(os.Stdout.Fd()),
	}
}

// DetectHost maps the configured host mode to a concrete host. Explicit
// modes are honored as is; auto prefers a display server, then the terminal.
func DetectHost(requested config.HostMode, env Environment) (HostKind, error) {
	switch requested {
	case config.HostGTK:
		return HostKindGTK, nil
	case config.HostTUI:
		return HostKindTUI, nil
	case config.HostAuto, "":
	default:
		return "", fmt.Errorf("unknown host mode %q", requested)
	}

	if env.Getenv != nil && (env.Getenv("WAYLAND_DISPLAY") != "" || env.Getenv("DISPLAY") != "") {
		return HostKindGTK, nil
	}
	if env.IsTerminal != nil && env.IsTerminal(env.StdoutFd) {
		return HostKindTUI, nil
	}
	return "", ErrNoHostAvailable
}
