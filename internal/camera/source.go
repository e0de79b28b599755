package camera

import (
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
)

// NewSource builds the source selected by cfg.Source.
func NewSource(cfg config.Camera, log *logger.Logger) (Source, error) {
	log.Debug().Str("source", cfg.Source).Str("device", cfg.Device).Msg("creating camera source")

	switch cfg.Source {
	case config.SourceFile:
		return NewFileSource(cfg.Device, log), nil
	case config.SourceHTTP:
		return NewHTTPSource(cfg.Device, log), nil
	case config.SourceWebSocket:
		return NewWebSocketSource(cfg.Device, log), nil
	case config.SourcePattern:
		return NewPatternSource(cfg.Width, cfg.Height), nil
	case config.SourceDevice:
		return NewDeviceSource(cfg.Device, cfg.Width, cfg.Height, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}
