/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ihttpimpl

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/untillpro/goutils/logger"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/ihttp"
	"github.com/drnecj/UPBL09a/pkg/ijobs"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
)

type httpProcessor struct {
	params   ihttp.CLIParams
	router   *mux.Router
	server   *http.Server
	listener net.Listener
	engine   ijobs.IJobs
	registry iplugin.IPluginRegistry
	metrics  imetrics.IMetrics
}

func (p *httpProcessor) Prepare() (err error) {
	if p.listener, err = net.Listen("tcp", coreutils.ServerAddress(p.params.Port)); err == nil {
		logger.Info("listening port:", p.listener.Addr().(*net.TCPAddr).Port)
	}
	return
}

func (p *httpProcessor) Run(ctx context.Context) {
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("httpProcessor started:", fmt.Sprintf("%#v", p.params))
		err := p.server.Serve(p.listener)
		logger.Info("httpProcessor stopped, result:", err)
	}()

	<-ctx.Done()
	if err := p.server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown failed", err)
		p.listener.Close()
		p.server.Close()
	}

	logger.Info("waiting for the httpProcessor...")
	wg.Wait()
	logger.Info("httpProcessor done")
}

func (p *httpProcessor) ListeningPort() int {
	return p.listener.Addr().(*net.TCPAddr).Port
}

func (p *httpProcessor) HandlePath(resource string, prefix bool, handlerFunc func(http.ResponseWriter, *http.Request)) {
	var r *mux.Route
	if prefix {
		r = p.router.PathPrefix(resource)
	} else {
		r = p.router.Path(resource)
	}
	r.HandlerFunc(handlerFunc)
}

func (p *httpProcessor) cleanup() {
	if nil != p.listener {
		p.listener.Close()
		p.listener = nil
	}
}
