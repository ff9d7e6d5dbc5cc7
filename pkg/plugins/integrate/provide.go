/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package integrate

import (
	"github.com/drnecj/UPBL09a/pkg/iimages"
	"github.com/drnecj/UPBL09a/pkg/iintegrator"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
	"github.com/drnecj/UPBL09a/pkg/objcache"
)

// Provide registers the azimuthal-integration plugins.
//
// cache is the host-wide integrator cache: one instance shared by every
// registered plugin factory, so every job sees the same cached integrators.
func Provide(registry iplugin.IPluginRegistry, cache objcache.ICache[string, iintegrator.IIntegrator],
	factory iintegrator.IIntegratorFactory, images iimages.IImageSource,
	metrics imetrics.IMetrics, hostName string) {
	mBuilt := metrics.MetricAddr(integratorsBuiltTotal, hostName)
	mCloned := metrics.MetricAddr(integratorsClonedTotal, hostName)
	mProcessed := metrics.MetricAddr(framesProcessedTotal, hostName)
	mSkipped := metrics.MetricAddr(framesSkippedTotal, hostName)

	registry.Register(PluginIntegrate, func() iplugin.IPlugin {
		return &integratePlugin{
			PluginBase:  iplugin.NewBase(PluginIntegrate),
			cache:       cache,
			factory:     factory,
			images:      images,
			npt:         iintegrator.DefaultNumPoints,
			unit:        iintegrator.UnitQ,
			outputFiles: []string{},
			mBuilt:      mBuilt,
			mCloned:     mCloned,
			mProcessed:  mProcessed,
			mSkipped:    mSkipped,
		}
	})
	registry.Register(PluginIntegrateSimple,
		iplugin.FromFunction(PluginIntegrateSimple, integrateSimpleFunc(factory, images)))
}
