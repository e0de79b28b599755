package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientView() *StructuredConfig {
	cfg := defaultConfig()
	return cfg
}

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := newClientConfig(validClientView())
	require.NoError(t, err)
	assert.Equal(t, DefaultFrameCount, cfg.Capture.FrameCount)
	assert.Equal(t, DefaultCameraSource, cfg.Camera.Source)
}

func TestNewClientConfig_JournalSeparateFromReceiverDSN(t *testing.T) {
	cfg := validClientView()
	cfg.Storage.DB.DSN = "postgres://localhost:5432/faces"
	cfg.Storage.Journal.Path = "journal.db"

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, Journal{Path: "journal.db"}, clientCfg.Journal)

	serverCfg, err := newServerConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/faces", serverCfg.Storage.DB.DSN)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{name: "zero width", mutate: func(c *StructuredConfig) { c.Camera.Width = 0 }, want: ErrInvalidCameraConfigs},
		{name: "quality too high", mutate: func(c *StructuredConfig) { c.Camera.JPEGQuality = 101 }, want: ErrInvalidCameraConfigs},
		{name: "no frames", mutate: func(c *StructuredConfig) { c.Capture.FrameCount = 0 }, want: ErrInvalidCaptureConfigs},
		{name: "negative delay", mutate: func(c *StructuredConfig) { c.Capture.FrameDelay = -1 }, want: ErrInvalidCaptureConfigs},
		{name: "no endpoint", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "no ui", mutate: func(c *StructuredConfig) { c.UI.Mode = "" }, want: ErrInvalidUIConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientView()
			tt.mutate(cfg)
			_, err := newClientConfig(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewServerConfig(t *testing.T) {
	cfg, err := newServerConfig(defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)

	_, err = newServerConfig(&StructuredConfig{})
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestStructuredConfigValidate_Enums(t *testing.T) {
	assert.NoError(t, (&StructuredConfig{}).validate())
	assert.ErrorIs(t, (&StructuredConfig{Capture: Capture{EmptyFramePolicy: "retry"}}).validate(), ErrInvalidCaptureConfigs)
	assert.ErrorIs(t, (&StructuredConfig{UI: UI{Mode: "gui"}}).validate(), ErrInvalidUIConfigs)
	assert.NoError(t, (&StructuredConfig{Camera: Camera{Source: SourceDevice}}).validate())
}
