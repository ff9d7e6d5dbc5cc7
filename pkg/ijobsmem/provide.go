/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ijobsmem

import (
	"time"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/ijobs"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
	"github.com/drnecj/UPBL09a/pkg/iprocbus"
	"github.com/drnecj/UPBL09a/pkg/iservices"
)

type Params struct {
	// number of worker goroutines, DefaultNumWorkers when 0
	NumWorkers uint

	// directory for <id>.in.json / <id>.out.json records, no records when empty
	Workdir string
}

// Provide returns the in-memory job engine and the service running its
// workers. The bus must carry one channel group with NumWorkers channels.
func Provide(params Params, registry iplugin.IPluginRegistry, bus iprocbus.IProcBus, metrics imetrics.IMetrics,
	hostName string, now coreutils.TimeFunc) (ijobs.IJobs, iservices.IService) {
	if params.NumWorkers == 0 {
		params.NumWorkers = DefaultNumWorkers
	}
	if now == nil {
		now = time.Now
	}
	js := &jobs{
		registry:   registry,
		bus:        bus,
		numWorkers: params.NumWorkers,
		byID:       map[int64]*job{},
		started:    now(),
		workdir:    params.Workdir,
		now:        now,
		mSucceeded: metrics.MetricAddr(jobsSucceededTotal, hostName),
		mFailed:    metrics.MetricAddr(jobsFailedTotal, hostName),
		mAborted:   metrics.MetricAddr(jobsAbortedTotal, hostName),
	}
	return js, &workersService{jobs: js}
}
