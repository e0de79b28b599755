package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/store"
	"github.com/MKhiriev/go-face-register/models"
)

type registrationReceiver struct {
	repo store.RegistrationRepository

	logger *logger.Logger
}

func NewRegistrationReceiver(repo store.RegistrationRepository, logger *logger.Logger) RegistrationReceiver {
	return &registrationReceiver{
		repo:   repo,
		logger: logger,
	}
}

func (r *registrationReceiver) Accept(ctx context.Context, userID models.SessionID, frames []models.Frame) (models.Registration, error) {
	log := logger.FromContext(ctx)

	if len(frames) == 0 {
		return models.Registration{}, ErrNoFramesFound
	}

	reg := models.Registration{UserID: userID, FrameCount: len(frames)}
	for i := range frames {
		frames[i].UserID = userID
		reg.TotalBytes += int64(len(frames[i].Data))
	}

	saved, err := r.repo.Save(ctx, reg, frames)
	if errors.Is(err, store.ErrUserAlreadyRegistered) {
		return models.Registration{}, fmt.Errorf("%w: %s", ErrUserAlreadyRegistered, userID)
	}
	if err != nil {
		log.Err(err).Str("func", "*registrationReceiver.Accept").Msg("failed to save registration")
		return models.Registration{}, fmt.Errorf("save registration: %w", err)
	}

	log.Info().
		Str("user_id", saved.UserID.String()).
		Int("frames", saved.FrameCount).
		Int64("bytes", saved.TotalBytes).
		Msg("registration accepted")

	return saved, nil
}

func (r *registrationReceiver) Get(ctx context.Context, userID models.SessionID) (models.Registration, error) {
	reg, err := r.repo.Get(ctx, userID)
	if errors.Is(err, store.ErrRegistrationNotFound) {
		return models.Registration{}, fmt.Errorf("%w: %s", ErrRegistrationNotFound, userID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*registrationReceiver.Get").Msg("failed to load registration")
		return models.Registration{}, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}

func (r *registrationReceiver) Count(ctx context.Context) (int, error) {
	return r.repo.Count(ctx)
}
