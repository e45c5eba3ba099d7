/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ihttpimpl

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/ihttp"
)

type httpProcessor struct {
	params   ihttp.CLIParams
	router   *mux.Router
	server   *http.Server
	listener net.Listener
}

func (p *httpProcessor) Prepare() (err error) {
	if p.listener, err = net.Listen("tcp", coreutils.ServerAddress(p.params.Port)); err == nil {
		logger.Info("listening port:", p.ListeningPort())
	}
	return err
}

// Run returns when ctx is done or if the server fails
func (p *httpProcessor) Run(ctx context.Context) {
	wg := &sync.WaitGroup{}
	failed := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("httpProcessor started")
		err := p.server.Serve(p.listener)
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("httpProcessor failed:", err)
			close(failed)
			return
		}
		logger.Info("httpProcessor stopped")
	}()

	select {
	case <-ctx.Done():
	case <-failed:
		wg.Wait()
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := p.server.Shutdown(shutdownCtx); err != nil {
		// notest
		logger.Error("server shutdown failed:", err)
		p.server.Close()
	}

	logger.Verbose("waiting for the httpProcessor...")
	wg.Wait()
}

func (p *httpProcessor) ListeningPort() int {
	if p.listener == nil {
		return 0
	}
	return p.listener.Addr().(*net.TCPAddr).Port
}

func (p *httpProcessor) cleanup() {
	if p.listener != nil {
		p.listener.Close()
		p.listener = nil
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(coreutils.ContentType, coreutils.TextPlain)
	if _, err := w.Write([]byte("ok")); err != nil {
		// notest
		logger.Error("failed to write response:", err)
	}
}
