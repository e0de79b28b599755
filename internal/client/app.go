package client

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/service"
)

type App struct {
	registration service.RegistrationService
	presenter    Presenter

	logger *logger.Logger
}

func NewApp(registration service.RegistrationService, presenter Presenter, logger *logger.Logger) *App {
	return &App{
		registration: registration,
		presenter:    presenter,
		logger:       logger,
	}
}

// Run performs one registration session. SIGINT cancels it.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return a.presenter.Run(ctx, a.session)
}

func (a *App) session(ctx context.Context) error {
	result, err := a.registration.Run(ctx)
	if err != nil {
		a.logger.Err(err).Msg("registration session failed")
		return err
	}

	if !result.Succeeded() {
		a.logger.Warn().Int("status", result.StatusCode).Msg("registration endpoint rejected the upload")
		return nil
	}

	a.logger.Info().Int("status", result.StatusCode).Msg("registration session finished")
	return nil
}
