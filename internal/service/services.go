package service

import (
	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/store"
	"github.com/MKhiriev/go-face-register/models"
)

type Services struct {
	AppInfoService       AppInfoService
	RegistrationReceiver RegistrationReceiver
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:       appInfo,
		RegistrationReceiver: NewRegistrationReceiver(storages.RegistrationRepository, logger),
	}, nil
}
