/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ihttpimpl

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/ihttp"
	"github.com/drnecj/UPBL09a/pkg/ijobs"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
)

// Provide wires the REST API over the job engine. cleanup closes the
// listener of a prepared but never run processor.
func Provide(params ihttp.CLIParams, engine ijobs.IJobs, registry iplugin.IPluginRegistry,
	metrics imetrics.IMetrics) (processor ihttp.IHTTPProcessor, cleanup func()) {
	router := mux.NewRouter()
	p := &httpProcessor{
		params:   params,
		router:   router,
		engine:   engine,
		registry: registry,
		metrics:  metrics,
		server: &http.Server{
			Addr:              coreutils.ServerAddress(params.Port),
			Handler:           router,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
	}
	p.registerHandlers()
	return p, p.cleanup
}
