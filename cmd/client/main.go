// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-matrix-client/internal/adapter"
	"github.com/MKhiriev/go-matrix-client/internal/client"
	"github.com/MKhiriev/go-matrix-client/internal/config"
	"github.com/MKhiriev/go-matrix-client/internal/console"
	"github.com/MKhiriev/go-matrix-client/internal/credential"
	"github.com/MKhiriev/go-matrix-client/internal/logger"
	"github.com/MKhiriev/go-matrix-client/internal/service"
	"github.com/MKhiriev/go-matrix-client/internal/store"
	"github.com/MKhiriev/go-matrix-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()
	printer := console.Stdout()

	cfg, err := config.GetClientConfig()
	if err != nil {
		printer.Errorf("%v", err)
		printer.Println(config.Usage)
		os.Exit(2)
	}

	log := logger.NewClientLogger(cfg.App.ServiceName, cfg.App.LogDir)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("server_name", cfg.Adapter.ServerName).
		Str("session_path", cfg.Storage.SessionPath).
		Msg("client starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := service.NewEnvironment(cfg.App.ServiceName, log, printer)
	location := store.NewStorageLocation(cfg.Storage.SessionPath)
	diagnosis := service.Diagnosis{
		ServerName:  cfg.Adapter.ServerName,
		SessionFile: location.SessionFile(),
		StorageRoot: location.Root(),
	}
	exit := &fatalExit{printer: printer, diagnosis: diagnosis, log: log}
	fatal := exit.fatal

	storages, err := store.NewClientStorages(ctx, location, log.Component("store"))
	if err != nil {
		fatal(err, "create local storage")
	}
	exit.closeOnExit(storages)

	protocol, err := adapter.NewMatrixClient(ctx, cfg.Adapter, storages.SyncState, storages.Events, log.Component("adapter"))
	if err != nil {
		fatal(err, "create protocol client")
	}

	chain := client.NewCredentialChain(env, cfg, credential.OSKeyring{}, os.Stdin, os.Stdout)
	services := service.NewClientServices(env, cfg, storages.Sessions, protocol, chain)

	app, err := client.NewApp(services, service.NewConsoleMessageHandler(printer))
	if err != nil {
		fatal(err, "init client app error")
	}

	// Run has no success path
	err = app.Run(ctx)
	fatal(err, "client run error")
}

// fatalExit reports a fatal error to the operator, closes what was opened
// and terminates the process. log.Fatal skips deferred calls, so resources
// are closed here.
type fatalExit struct {
	printer   *console.Printer
	diagnosis service.Diagnosis
	log       *logger.Logger
	closers   []io.Closer
}

func (e *fatalExit) closeOnExit(c io.Closer) {
	e.closers = append(e.closers, c)
}

// release closes in reverse order of registration.
func (e *fatalExit) release() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			e.log.Err(err).Msg("close on exit")
		}
	}
	e.closers = nil
}

func (e *fatalExit) fatal(err error, msg string) {
	e.printer.Errorf("%s", e.diagnosis.Explain(err))
	e.release()
	e.log.Fatal().Err(err).Msg(msg)
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())

	return info
}
