package service

import (
	"context"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService prefers the configured version and falls back to the
// one baked in at build time.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetAppInfo returns the version and build metadata. Routes are filled in
// by the HTTP layer.
func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Version:     s.appVersion,
		BuildDate:   s.build.BuildDate(),
		BuildCommit: s.build.BuildCommit(),
	}
}
