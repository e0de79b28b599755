package store

import (
	"context"

	"github.com/MKhiriev/go-face-register/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Journal records upload sessions on the client. Only metadata is stored.
type Journal interface {
	Record(ctx context.Context, entry models.JournalEntry) error
	Close() error
}
