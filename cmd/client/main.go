package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-sign-in/internal/adapter"
	"github.com/MKhiriev/go-sign-in/internal/client"
	"github.com/MKhiriev/go-sign-in/internal/config"
	"github.com/MKhiriev/go-sign-in/internal/logger"
	"github.com/MKhiriev/go-sign-in/internal/metrics"
	"github.com/MKhiriev/go-sign-in/internal/service"
	"github.com/MKhiriev/go-sign-in/internal/store"
	"github.com/MKhiriev/go-sign-in/internal/workers"
	"github.com/MKhiriev/go-sign-in/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-sign-in-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-sign-in-client", cfg.LogFile)

	adapters, err := adapter.NewClientAdapters(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client adapters")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewPrometheusRecorder(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("register metrics")
	}

	services := service.NewClientServices(cfg.App, adapters, storages, recorder, log)

	var metricsWorker workers.Worker
	if cfg.Metrics.Address != "" {
		metricsWorker = workers.NewHTTPServer(cfg.Metrics.Address, metrics.NewRouter(registry), log)
	}

	app, err := client.NewApp(cfg.App, services, workers.NewWorkers(metricsWorker), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		_ = storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
