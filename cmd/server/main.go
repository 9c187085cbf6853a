package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/dsmirnov/cryptodiary/internal/config"
	handler "github.com/dsmirnov/cryptodiary/internal/handler/http"
	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/server"
	"github.com/dsmirnov/cryptodiary/internal/service"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	_ = godotenv.Load()

	log := logger.New("cryptodiary-server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnect(context.Background(), cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, db.Dialect()); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(
		store.NewEntryRepository(db, log),
		store.NewUserRepository(db, log),
		service.AuthConfig{
			TokenIssuer:   cfg.Auth.TokenIssuer,
			TokenSignKey:  cfg.Auth.TokenSignKey,
			TokenDuration: cfg.Auth.TokenDuration,
		},
		log,
	)

	srv, err := server.NewServer(handler.NewHandler(services, log).Init(), cfg, log)
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
