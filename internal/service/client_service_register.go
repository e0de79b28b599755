package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/camera"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/models"
)

// cameraAlertFormat is the text of the alert raised when the camera cannot
// be acquired.
const cameraAlertFormat = "Camera access denied or not available: %s"

type registrationService struct {
	source     camera.Source
	presenter  Presenter
	ids        SessionIDGenerator
	capture    CaptureService
	upload     UploadService
	endpoint   string
	frameCount int

	logger *logger.Logger
}

// NewRegistrationService wires one capture-and-upload session. A
// non-positive frameCount falls back to [DefaultFrameCount].
func NewRegistrationService(
	source camera.Source,
	presenter Presenter,
	ids SessionIDGenerator,
	capture CaptureService,
	upload UploadService,
	endpoint string,
	frameCount int,
	logger *logger.Logger,
) RegistrationService {
	if frameCount <= 0 {
		frameCount = DefaultFrameCount
	}

	return &registrationService{
		source:     source,
		presenter:  presenter,
		ids:        ids,
		capture:    capture,
		upload:     upload,
		endpoint:   endpoint,
		frameCount: frameCount,
		logger:     logger,
	}
}

// Run implements [RegistrationService].
func (s *registrationService) Run(ctx context.Context) (models.RegisterResult, error) {
	s.presenter.StageChanged(models.StageAcquiring)

	stream, err := s.source.Open(ctx)
	if err != nil {
		s.logger.Err(err).Str("source", s.source.Name()).Msg("camera acquisition failed")
		s.presenter.StageChanged(models.StageFailed)
		s.presenter.Alert(ctx, fmt.Sprintf(cameraAlertFormat, err))
		return models.RegisterResult{}, fmt.Errorf("%w: %w", ErrCameraUnavailable, err)
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			s.logger.Warn().Err(closeErr).Msg("failed to release camera")
		}
	}()

	s.presenter.BindStream(s.source.Name(), stream)

	userID := s.ids.Generate()
	log := s.logger.With().Str("user_id", userID.String()).Logger()
	log.Info().Int("frames", s.frameCount).Str("endpoint", s.endpoint).Msg("registration session started")

	s.presenter.StageChanged(models.StageCapturing)
	batch, err := s.capture.Capture(ctx, stream, s.frameCount)
	if err != nil {
		log.Err(err).Msg("capture failed")
		s.presenter.StageChanged(models.StageFailed)
		return models.RegisterResult{}, fmt.Errorf("capture frames: %w", err)
	}

	s.presenter.StageChanged(models.StageUploading)
	result, err := s.upload.Upload(ctx, s.endpoint, batch, userID)
	if err != nil {
		log.Err(err).Msg("upload failed")
		s.presenter.StageChanged(models.StageFailed)
		return models.RegisterResult{}, err
	}

	s.presenter.StageChanged(models.StageDone)
	return result, nil
}
