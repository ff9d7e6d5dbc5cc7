/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"os"

	"github.com/drnecj/UPBL09a/pkg/ihttp"
	"github.com/drnecj/UPBL09a/pkg/ihttpimpl"
	"github.com/drnecj/UPBL09a/pkg/iimagescache"
	"github.com/drnecj/UPBL09a/pkg/iimagesimpl"
	"github.com/drnecj/UPBL09a/pkg/iintegrator"
	"github.com/drnecj/UPBL09a/pkg/iintegratorimpl"
	"github.com/drnecj/UPBL09a/pkg/ijobs"
	"github.com/drnecj/UPBL09a/pkg/ijobsmem"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
	"github.com/drnecj/UPBL09a/pkg/iprocbusmem"
	"github.com/drnecj/UPBL09a/pkg/iservices"
	"github.com/drnecj/UPBL09a/pkg/objcache"
	"github.com/drnecj/UPBL09a/pkg/plugins/example"
	"github.com/drnecj/UPBL09a/pkg/plugins/integrate"
)

type wiredEngine struct {
	engine   ijobs.IJobs
	workers  iservices.IService
	registry iplugin.IPluginRegistry
	metrics  imetrics.IMetrics
}

// wireEngine assembles the job engine with every built-in plugin registered.
func wireEngine(params CLIParams) (we wiredEngine, err error) {
	hostName, err := os.Hostname()
	if err != nil {
		return we, err
	}

	we.metrics = imetrics.Provide()
	we.registry = iplugin.Provide()
	example.Provide(we.registry)

	images := iimagescache.Provide(params.FrameCacheSize, iimagesimpl.Provide(), we.metrics, hostName)
	mEvicted := we.metrics.MetricAddr(integratorsEvictedTotal, hostName)
	integrators := objcache.New[string, iintegrator.IIntegrator](params.IntegratorCacheSize,
		func(string, iintegrator.IIntegrator) { imetrics.AddFloat64(mEvicted, 1.0) })
	integrate.Provide(we.registry, integrators, iintegratorimpl.Provide(), images, we.metrics, hostName)

	if params.NumWorkers == 0 {
		params.NumWorkers = ijobsmem.DefaultNumWorkers
	}
	bus := iprocbusmem.Provide([]iprocbusmem.ChannelGroup{{
		NumChannels:       params.NumWorkers,
		ChannelBufferSize: channelBufferSize,
	}})
	we.engine, we.workers = ijobsmem.Provide(
		ijobsmem.Params{NumWorkers: params.NumWorkers, Workdir: params.Workdir},
		we.registry, bus, we.metrics, hostName, nil)
	return we, nil
}

func wireServer(httpCLIParams ihttp.CLIParams, hostCLIParams CLIParams) (WiredServer, func(), error) {
	we, err := wireEngine(hostCLIParams)
	if err != nil {
		return WiredServer{}, nil, err
	}
	processor, cleanup := ihttpimpl.Provide(httpCLIParams, we.engine, we.registry, we.metrics)
	return WiredServer{JobWorkers: we.workers, HTTPServer: processor}, cleanup, nil
}
