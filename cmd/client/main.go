package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/adapter"
	"github.com/MKhiriev/go-face-register/internal/camera"
	"github.com/MKhiriev/go-face-register/internal/client"
	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/service"
	"github.com/MKhiriev/go-face-register/internal/store"
	"github.com/MKhiriev/go-face-register/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("face-register-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if cfg.UI.Mode != config.UIModeTUI {
		printBuildInfo()
	}

	ctx := context.Background()

	source, err := camera.NewSource(cfg.Camera, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create camera source")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Journal, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	registerAdapter := adapter.NewHTTPRegisterAdapter(cfg.Adapter, log)
	presenter := client.NewPresenter(cfg.UI, build, log)

	services, err := service.NewClientServices(cfg, source, registerAdapter, localStorage, presenter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app := client.NewApp(services.RegistrationService, presenter, log)
	if err = app.Run(ctx); err != nil {
		localStorage.Close()
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
