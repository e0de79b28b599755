package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-face-register/internal/adapter"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/store"
	"github.com/MKhiriev/go-face-register/models"
)

type uploadService struct {
	adapter adapter.RegisterAdapter
	display ResponseDisplay
	journal store.Journal
	ids     EntryIDGenerator
	now     func() time.Time

	logger *logger.Logger
}

func NewUploadService(registerAdapter adapter.RegisterAdapter, display ResponseDisplay, journal store.Journal, ids EntryIDGenerator, logger *logger.Logger) UploadService {
	return &uploadService{
		adapter: registerAdapter,
		display: display,
		journal: journal,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

// Upload implements [UploadService]. There is no retry.
func (s *uploadService) Upload(ctx context.Context, endpoint string, batch models.ImageBatch, userID models.SessionID) (models.RegisterResult, error) {
	started := s.now()

	result, err := s.adapter.Register(ctx, endpoint, models.RegisterRequest{
		UserID: userID,
		Images: batch,
	})

	s.record(ctx, models.JournalEntry{
		ID:         s.ids.Generate(),
		UserID:     userID,
		Endpoint:   endpoint,
		FrameCount: batch.Len(),
		TotalBytes: batch.TotalBytes(),
		StatusCode: result.StatusCode,
		Response:   string(result.Body),
		StartedAt:  started,
		FinishedAt: s.now(),
	}, err)

	if err != nil {
		return models.RegisterResult{}, fmt.Errorf("upload batch: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Int("status", result.StatusCode).
		Int("frames", batch.Len()).
		Dur("took", s.now().Sub(started)).
		Msg("registration batch uploaded")

	s.display.ShowResponse(result)

	return result, nil
}

// record writes the session to the journal. Journal failures never fail the
// upload.
func (s *uploadService) record(ctx context.Context, entry models.JournalEntry, uploadErr error) {
	if uploadErr != nil {
		entry.Error = uploadErr.Error()
	}

	if err := s.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.Warn().Err(err).Str("entry_id", entry.ID).Msg("failed to journal upload session")
	}
}
