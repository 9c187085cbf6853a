package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/dsmirnov/cryptodiary/internal/adapter"
	"github.com/dsmirnov/cryptodiary/internal/client"
	"github.com/dsmirnov/cryptodiary/internal/config"
	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/service"
	"github.com/dsmirnov/cryptodiary/internal/tui"
	"github.com/dsmirnov/cryptodiary/internal/workers"
	"github.com/dsmirnov/cryptodiary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	_ = godotenv.Load()

	log := logger.NewClient("cryptodiary-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	refresh := workers.NewRefreshWorker(services.Entries, cfg.Workers.RefreshInterval, log)
	defer refresh.Stop()

	app, err := client.NewApp(services, ui, workers.NewWorkers(refresh), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
