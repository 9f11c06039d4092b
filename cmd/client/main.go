package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-cipher-desk/internal/adapter"
	"github.com/MKhiriev/go-cipher-desk/internal/capability"
	"github.com/MKhiriev/go-cipher-desk/internal/client"
	"github.com/MKhiriev/go-cipher-desk/internal/config"
	"github.com/MKhiriev/go-cipher-desk/internal/logger"
	"github.com/MKhiriev/go-cipher-desk/internal/service"
	"github.com/MKhiriev/go-cipher-desk/internal/store"
	"github.com/MKhiriev/go-cipher-desk/internal/tui"
	"github.com/MKhiriev/go-cipher-desk/internal/utils"
	"github.com/MKhiriev/go-cipher-desk/internal/workers"
	"github.com/MKhiriev/go-cipher-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewClientLogger("cipher-desk-client", "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	transformAdapter, err := adapter.NewHTTPTransformAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create transform adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, utils.NewUUIDGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	clipboard := utils.NewSystemClipboard()
	if !clipboard.Available() {
		log.Warn().Msg("no clipboard backend found, copy will fail")
	}

	services := service.NewClientServices(storages, transformAdapter, clipboard, log)
	table := capability.NewTable(cfg.Catalog.LettersOnly, cfg.Catalog.BinaryCapable)

	ui, err := tui.New(services, table, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(cfg.Workers, services), storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	for _, line := range models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Lines() {
		fmt.Printf("Build %s: %s\n", strings.ToLower(line.Label), line.Value)
	}
}
