package main

import (
	"fmt"

	"github.com/MKhiriev/bg-remover/internal/adapter"
	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/handler"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/server"
	"github.com/MKhiriev/bg-remover/internal/service"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/internal/workers"
	"github.com/MKhiriev/bg-remover/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("bg-remover-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("bg-remover-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("fal_url", cfg.Adapter.BaseURL).
		Str("fal_model", cfg.Adapter.Model).
		Bool("fal_key_set", cfg.Adapter.Key != "").
		Msg("received configs")

	removalAdapter, err := adapter.NewFalAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating removal adapter")
	}

	storages := store.NewStorages(log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, removalAdapter, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services, workers.NewWorkers(storages, *cfg, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
