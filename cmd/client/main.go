package main

import (
	"github.com/MKhiriev/bg-remover/internal/adapter"
	"github.com/MKhiriev/bg-remover/internal/client"
	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/service"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/internal/tui"
	"github.com/MKhiriev/bg-remover/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewClientLogger("bg-remover-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("bg-remover-client", cfg.App.LogLevel)

	removalAdapter, err := adapter.NewFalAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create removal adapter")
	}

	buildInfo := models.NewAppBuildInfo(valueOrNA(buildVersion), valueOrNA(buildDate), valueOrNA(buildCommit))
	services, err := service.NewServices(store.NewStorages(log), removalAdapter, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	app := client.NewApp(services, tui.New(services, buildInfo, log), log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
