// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package server

import (
	"net/http"

	"github.com/moov-io/cpa005/pkg/config"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
)

// Controller registers the conversion HTTP surface onto a router.
type Controller struct {
	logger log.Logger
	cfg    *config.Config
}

func NewController(cfg *config.Config) *Controller {
	return &Controller{
		logger: cfg.Logger,
		cfg:    cfg,
	}
}

func (c *Controller) RegisterRoutes(r *mux.Router) {
	addPingRoute(r)
	r.Methods("POST").Path("/files/convert").HandlerFunc(c.convertFile)
}

func addPingRoute(r *mux.Router) {
	r.Methods("GET").Path("/ping").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("PONG"))
	})
}

// Handler builds the complete router for the service.
func Handler(cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	NewController(cfg).RegisterRoutes(r)
	return r
}
