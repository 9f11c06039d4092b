package client

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-cipher-desk/internal/logger"
)

var ErrNilUI = errors.New("client: ui is nil")

type App struct {
	ui      UI
	workers Workers
	closer  io.Closer
	logger  *logger.Logger
}

// NewApp assembles the application. workers and closer are optional; closer
// is called once the UI has exited.
func NewApp(ui UI, workers Workers, closer io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}

	return &App{ui: ui, workers: workers, closer: closer, logger: logger}, nil
}

// Run starts the background jobs, shows the UI and blocks until it exits.
// Jobs are stopped and storage is closed before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.workers != nil {
		a.workers.Start(ctx)
	}

	runErr := a.ui.Run(ctx)

	if a.workers != nil {
		a.workers.Stop()
	}
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("error closing storage")
		}
	}

	a.logger.Info().Msg("client stopped")
	return runErr
}
