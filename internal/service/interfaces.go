package service

import (
	"context"

	"github.com/MKhiriev/go-face-register/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService reports static information about the running receiver.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// RegistrationReceiver accepts uploads on the receiver side.
type RegistrationReceiver interface {
	// Accept records the frames uploaded for userID. An upload without frames
	// fails with ErrNoFramesFound; a repeated user id fails with
	// ErrUserAlreadyRegistered.
	Accept(ctx context.Context, userID models.SessionID, frames []models.Frame) (models.Registration, error)

	// Get returns the registration of userID or ErrRegistrationNotFound.
	Get(ctx context.Context, userID models.SessionID) (models.Registration, error)

	// Count returns the number of accepted registrations.
	Count(ctx context.Context) (int, error)
}
