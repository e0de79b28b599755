package client

import (
	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/tui"
	"github.com/MKhiriev/go-face-register/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NewPresenter returns the presenter for cfg.Mode. Anything other than
// "tui" gets the plain presenter.
func NewPresenter(cfg config.UI, build models.AppBuildInfo, logger *logger.Logger) Presenter {
	if cfg.Mode == config.UIModeTUI {
		return tui.New(build, logger, tea.WithAltScreen())
	}
	return tui.NewPlain()
}
