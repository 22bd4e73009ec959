// Package cli wires configuration, logging and the dialog hosts behind the
// confirm commands.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bnema/confirm/internal/application/usecase"
	"github.com/bnema/confirm/internal/cli/styles"
	"github.com/bnema/confirm/internal/domain/build"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/infrastructure/config"
	"github.com/bnema/confirm/internal/infrastructure/i18n"
	"github.com/bnema/confirm/internal/logging"
	"github.com/bnema/confirm/internal/ui/dialog"
)

// Overrides are command-line values that take precedence over the
// configuration file. Empty fields keep the file's value.
type Overrides struct {
	Host     string
	Locale   string
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Localizer *i18n.Localizer

	manager *config.Manager
	sink    *logSink

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration from configDir (empty for the XDG
// location), applies o and builds the logger.
func NewApp(configDir string, o Overrides) (*App, error) {
	manager, err := config.NewManager(configDir)
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}

	cfg := manager.Get()
	if err := applyOverrides(cfg, o); err != nil {
		return nil, err
	}

	sink := &logSink{out: os.Stderr}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.ConsoleTimeFormat,
		Output:     sink,
	})
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().
		Str("config", manager.ConfigFile()).
		Str("host", string(cfg.Host)).
		Msg("configuration loaded")

	return &App{
		Config:    cfg,
		Theme:     styles.NewTheme(cfg),
		Localizer: i18n.New(cfg.Locale),
		manager:   manager,
		sink:      sink,
		ctx:       ctx,
	}, nil
}

func applyOverrides(cfg *config.Config, o Overrides) error {
	if o.Host != "" {
		cfg.Host = config.HostMode(o.Host)
		switch cfg.Host {
		case config.HostAuto, config.HostGTK, config.HostTUI:
		default:
			return fmt.Errorf("unknown host %q (want auto, gtk or tui)", o.Host)
		}
	}
	if o.Locale != "" {
		cfg.Locale = o.Locale
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	return nil
}

// Context returns the base context carrying the logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// ConfigManager returns the manager the configuration was loaded with.
func (a *App) ConfigManager() *config.Manager {
	return a.manager
}

// Close flushes held log output.
func (a *App) Close() error {
	if a.sink != nil {
		return a.sink.release()
	}
	return nil
}

// Present shows the confirmation on the host picked for this session and
// returns the user's answer.
func (a *App) Present(ctx context.Context, in usecase.PresentConfirmationInput) (entity.Result, error) {
	kind, err := dialog.DetectHost(a.Config.Host, dialog.SystemEnvironment())
	if err != nil {
		return entity.NoSelection(), err
	}

	log := logging.FromContext(ctx).With().Str("host", string(kind)).Logger()
	ctx = logging.WithContext(ctx, log)

	switch kind {
	case dialog.HostKindGTK:
		return a.presentGTK(ctx, in)
	case dialog.HostKindTUI:
		return a.presentTUI(ctx, in)
	default:
		return entity.NoSelection(), errors.New("unsupported dialog host")
	}
}

// logSink is the logger's output. While a full-screen program owns the
// terminal, writes are held and flushed once it exits.
type logSink struct {
	mu  sync.Mutex
	out io.Writer
	buf *bytes.Buffer
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf != nil {
		return s.buf.Write(p)
	}
	return s.out.Write(p)
}

func (s *logSink) hold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		s.buf = &bytes.Buffer{}
	}
}

func (s *logSink) release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		return nil
	}
	_, err := s.buf.WriteTo(s.out)
	s.buf = nil
	return err
}
