package service

import (
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/adapter"
	"github.com/MKhiriev/go-face-register/internal/camera"
	"github.com/MKhiriev/go-face-register/internal/canvas"
	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/store"
	"github.com/MKhiriev/go-face-register/internal/utils"
)

type ClientServices struct {
	CaptureService      CaptureService
	UploadService       UploadService
	RegistrationService RegistrationService
}

func NewClientServices(
	cfg *config.ClientConfig,
	source camera.Source,
	registerAdapter adapter.RegisterAdapter,
	storages *store.ClientStorages,
	presenter Presenter,
	logger *logger.Logger,
) (*ClientServices, error) {
	surface, err := canvas.NewSurface(cfg.Camera.Width, cfg.Camera.Height, cfg.Camera.JPEGQuality)
	if err != nil {
		return nil, fmt.Errorf("create drawing surface: %w", err)
	}

	endpoint, err := adapter.ResolveEndpoint(cfg.Adapter.HTTPAddress, cfg.Adapter.RegisterPath)
	if err != nil {
		return nil, err
	}

	captureSvc, err := NewCaptureService(surface, cfg.Capture, presenter, logger)
	if err != nil {
		return nil, err
	}
	uploadSvc := NewUploadService(registerAdapter, presenter, storages.Journal, utils.NewUUIDGenerator(), logger)

	return &ClientServices{
		CaptureService: captureSvc,
		UploadService:  uploadSvc,
		RegistrationService: NewRegistrationService(
			source,
			presenter,
			utils.NewSessionIDGenerator(),
			captureSvc,
			uploadSvc,
			endpoint,
			cfg.Capture.FrameCount,
			logger,
		),
	}, nil
}
