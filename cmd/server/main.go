package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/handler"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/server"
	"github.com/MKhiriev/go-face-register/internal/service"
	"github.com/MKhiriev/go-face-register/internal/store"
	"github.com/MKhiriev/go-face-register/models"
)

const devVersion = "dev"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("face-register-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	// unstamped builds still report a version
	if buildVersion == "" {
		buildVersion = devVersion
	}
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
