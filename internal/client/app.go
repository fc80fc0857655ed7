package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/service"
	"github.com/MKhiriev/bg-remover/internal/tui"
)

// UI is the part of the terminal UI the application drives.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.Services
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui UI, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, logger: logger}
}

// Run blocks until the user quits or the process is signalled. Pending
// removals are cancelled on the way out.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.services.Close()

	a.logger.Info().Msg("terminal client started")
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("terminal client closed by user")
		return nil
	}

	return err
}
