package http

import (
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/service"
)

const (
	// maxUploadSize caps the whole registration request body.
	maxUploadSize int64 = 256 << 20
	// multipartMemory is the part of the form kept in memory; the rest
	// spills to temporary files.
	multipartMemory int64 = 32 << 20
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
