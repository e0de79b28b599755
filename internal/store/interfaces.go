package store

import (
	"context"

	"github.com/MKhiriev/go-face-register/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RegistrationRepository keeps the registrations accepted by the receiver.
type RegistrationRepository interface {
	// Save records reg together with its frames and returns it with
	// CreatedAt filled in. Either everything is stored or nothing is. A second
	// registration for the same user id fails with ErrUserAlreadyRegistered.
	Save(ctx context.Context, reg models.Registration, frames []models.Frame) (models.Registration, error)

	// Get returns the registration for userID or ErrRegistrationNotFound.
	Get(ctx context.Context, userID models.SessionID) (models.Registration, error)

	// Count returns the number of recorded registrations.
	Count(ctx context.Context) (int, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
