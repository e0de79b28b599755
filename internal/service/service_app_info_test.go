package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ConfiguredVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc123")

	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, build, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	build := models.NewAppBuildInfo("0.9.0", "", "")

	svc, err := NewAppInfoService(config.App{}, build, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_NoVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppInfo_CarriesBuildMetadata(t *testing.T) {
	build := models.NewAppBuildInfo("2.5.1", "2026-03-04", "deadbeef")
	svc, err := NewAppInfoService(config.App{}, build, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // info does not depend on ctx

	assert.Equal(t, models.AppInfo{
		Version:     "2.5.1",
		BuildDate:   "2026-03-04",
		BuildCommit: "deadbeef",
	}, svc.GetAppInfo(ctx))
}
