// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moov-io/base/admin"

	"github.com/moov-io/cpa005/internal/util"
	"github.com/moov-io/cpa005/pkg/config"
	"github.com/moov-io/cpa005/pkg/cpa005"
	"github.com/moov-io/cpa005/pkg/server"
)

var (
	httpAddr  = flag.String("http.addr", "", "HTTP listen address")
	adminAddr = flag.String("admin.addr", "", "Admin HTTP listen address")

	flagConfigFile = flag.String("config", "", "Filepath for config file to load")
	flagLogFormat  = flag.String("log.format", "", "Format for log lines (Options: json, plain)")
)

func main() {
	flag.Parse()

	configFilepath := util.Or(os.Getenv("CONFIG_FILE"), *flagConfigFile)
	cfg, err := config.FromFile(configFilepath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	cfg.ApplyLogFormat(*flagLogFormat)
	cfg.Logger.Log("startup", fmt.Sprintf("Starting cpa005 server version %s", cpa005.Version))

	// Listen for application termination.
	errs := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	// Spin up admin HTTP server and optionally override -admin.addr
	adminBindAddr := util.Or(os.Getenv("HTTP_ADMIN_BIND_ADDRESS"), util.Or(*adminAddr, cfg.Admin.BindAddress))
	adminServer := admin.NewServer(adminBindAddr)
	adminServer.AddVersionHandler(cpa005.Version) // Setup 'GET /version'
	go func() {
		cfg.Logger.Log("admin", fmt.Sprintf("listening on %s", adminServer.BindAddr()))
		if err := adminServer.Listen(); err != nil {
			err = fmt.Errorf("problem starting admin http: %v", err)
			cfg.Logger.Log("admin", err)
			errs <- err
		}
	}()
	defer adminServer.Shutdown()

	// Create main HTTP server
	bindAddr := util.Or(os.Getenv("HTTP_BIND_ADDRESS"), util.Or(*httpAddr, cfg.Http.BindAddress))
	serve := &http.Server{
		Addr:         bindAddr,
		Handler:      server.Handler(cfg),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	shutdownServer := func() {
		if err := serve.Shutdown(context.TODO()); err != nil {
			cfg.Logger.Log("shutdown", err)
		}
	}
	defer shutdownServer()

	go func() {
		cfg.Logger.Log("startup", fmt.Sprintf("binding to %s for HTTP server", bindAddr))
		if err := serve.ListenAndServe(); err != nil {
			cfg.Logger.Log("exit", err)
		}
	}()

	if err := <-errs; err != nil {
		cfg.Logger.Log("exit", err)
	}
}
