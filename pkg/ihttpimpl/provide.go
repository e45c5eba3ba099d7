/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ihttpimpl

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voedger/websecurity/pkg/ihttp"
)

// NewProcessor serves HealthPath itself, everything else is served by app
func NewProcessor(params ihttp.CLIParams, app http.Handler) (server ihttp.IHTTPProcessor, cleanup func()) {
	if params.ReadHeaderTimeout <= 0 {
		params.ReadHeaderTimeout = defaultReadHeaderTimeout
	}
	r := mux.NewRouter()
	r.HandleFunc(HealthPath, handleHealth).Methods(http.MethodGet, http.MethodHead)
	r.PathPrefix("/").Handler(app)
	p := &httpProcessor{
		params: params,
		router: r,
		server: &http.Server{
			Handler:           r,
			ReadHeaderTimeout: params.ReadHeaderTimeout,
		},
	}
	return p, p.cleanup
}
