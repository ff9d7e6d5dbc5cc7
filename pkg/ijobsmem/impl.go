/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ijobsmem

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/ijobs"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
	"github.com/drnecj/UPBL09a/pkg/iprocbus"
)

type jobs struct {
	lock       sync.Mutex
	registry   iplugin.IPluginRegistry
	bus        iprocbus.IProcBus
	numWorkers uint
	byID       map[int64]*job
	lastID     int64
	started    time.Time
	workdir    string
	now        coreutils.TimeFunc

	/* metrics */
	mSucceeded *float64
	mFailed    *float64
	mAborted   *float64
}

type job struct {
	lock      sync.Mutex
	id        int64
	name      string
	input     coreutils.MapObject
	output    coreutils.MapObject
	state     ijobs.State
	submitted time.Time
	runtime   time.Duration
	completed bool
	callbacks []ijobs.JobCallback
	plugin    iplugin.IPlugin
	cancel    context.CancelFunc
	now       coreutils.TimeFunc
}

func (j *job) ID() int64    { return j.id }
func (j *job) Name() string { return j.name }

func (j *job) State() ijobs.State {
	j.lock.Lock()
	defer j.lock.Unlock()
	return j.state
}

func (j *job) Input() coreutils.MapObject { return j.input }

// Output returns a shallow copy: the engine keeps writing the original
// until the job completes.
func (j *job) Output() coreutils.MapObject {
	j.lock.Lock()
	defer j.lock.Unlock()
	out := coreutils.MapObject{}
	for field, value := range j.output {
		out[field] = value
	}
	return out
}

func (j *job) Runtime() time.Duration {
	j.lock.Lock()
	defer j.lock.Unlock()
	if j.completed {
		return j.runtime
	}
	return j.now().Sub(j.submitted)
}

// begin moves the job to running once. A second delivery of the same job is
// not executed.
func (j *job) begin(plugin iplugin.IPlugin, cancel context.CancelFunc) bool {
	j.lock.Lock()
	defer j.lock.Unlock()
	if j.state != ijobs.StateUninitialized {
		return false
	}
	j.state = ijobs.StateRunning
	j.plugin = plugin
	j.cancel = cancel
	return true
}

func (js *jobs) Submit(input coreutils.MapObject, callbacks ...ijobs.JobCallback) (id int64, err error) {
	name, err := input.AsStringRequired(iplugin.FieldPluginName)
	if err != nil {
		return 0, err
	}
	if !slices.Contains(js.registry.Names(), name) {
		return 0, fmt.Errorf("%q: %w", name, iplugin.ErrPluginNotFound)
	}

	js.lock.Lock()
	js.lastID++
	j := &job{
		id:        js.lastID,
		name:      name,
		input:     input,
		output:    coreutils.MapObject{},
		state:     ijobs.StateUninitialized,
		submitted: js.now(),
		callbacks: callbacks,
		now:       js.now,
	}
	input[iplugin.FieldJobID] = j.id
	js.byID[j.id] = j
	js.lock.Unlock()

	if !js.bus.Submit(jobsChannelGroup, uint(j.id)%js.numWorkers, j) {
		js.lock.Lock()
		delete(js.byID, j.id)
		js.lock.Unlock()
		return 0, ijobs.ErrBusy
	}
	return j.id, nil
}

func (js *jobs) Job(id int64) (ijobs.IJob, error) {
	j, err := js.job(id)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (js *jobs) job(id int64) (*job, error) {
	js.lock.Lock()
	defer js.lock.Unlock()
	j, ok := js.byID[id]
	if !ok {
		return nil, fmt.Errorf("%d: %w", id, ijobs.ErrJobNotFound)
	}
	return j, nil
}

func (js *jobs) Jobs() []int64 {
	js.lock.Lock()
	defer js.lock.Unlock()
	ids := maps.Keys(js.byID)
	slices.Sort(ids)
	return ids
}

func (js *jobs) Abort(id int64) error {
	j, err := js.job(id)
	if err != nil {
		return err
	}
	j.lock.Lock()
	if j.state != ijobs.StateRunning {
		j.lock.Unlock()
		return nil
	}
	j.state = ijobs.StateAborted
	j.output[fieldAborted] = coreutils.Isotime(js.now())
	plugin, cancel := j.plugin, j.cancel
	j.lock.Unlock()

	imetrics.AddFloat64(js.mAborted, 1.0)
	if plugin != nil {
		plugin.Abort()
	}
	if cancel != nil {
		cancel()
	}
	return nil
}

// execute runs the job stages with the original short-circuit rule: a failed
// stage ends the job, teardown does not run after a failed process.
func (js *jobs) execute(ctx context.Context, j *job) {
	jctx, cancel := context.WithCancel(ctx)
	defer cancel()

	plugin, err := js.registry.New(j.name)
	if err != nil {
		js.complete(j, ijobs.StateFailure, nil, []string{err.Error()})
		return
	}
	if !j.begin(plugin, cancel) {
		return
	}

	if err := plugin.Setup(j.input); err != nil {
		js.fail(j, plugin, "setup", err)
		return
	}
	if err := plugin.Process(jctx); err != nil {
		js.fail(j, plugin, "process", err)
		return
	}
	output, err := plugin.Teardown()
	if err != nil {
		js.fail(j, plugin, "teardown", err)
		return
	}
	js.complete(j, ijobs.StateSuccess, output, nil)
}

func (js *jobs) fail(j *job, plugin iplugin.IPlugin, stage string, err error) {
	trail := []string{fmt.Sprintf("error %s while calling %s.%s", err, j.name, stage)}
	if info := plugin.Info(); info != "" {
		trail = append(trail, strings.Split(info, "\n")...)
	}
	js.complete(j, ijobs.StateFailure, nil, trail)
}

// complete finalizes the job: merges the plugin output, appends the error
// trail, fixes the runtime and fires the callbacks. An aborted state is
// terminal, it is never overwritten by the outcome of the interrupted stage.
func (js *jobs) complete(j *job, final ijobs.State, output coreutils.MapObject, errTrail []string) {
	j.lock.Lock()
	for field, value := range output {
		j.output[field] = value
	}
	if len(errTrail) > 0 {
		if existing, ok := j.output[iplugin.FieldError].([]string); ok {
			j.output[iplugin.FieldError] = append(append(existing, errSeparator), errTrail...)
		} else {
			j.output[iplugin.FieldError] = errTrail
		}
	}
	if j.state == ijobs.StateUninitialized || j.state == ijobs.StateRunning {
		j.state = final
	}
	final = j.state
	j.runtime = js.now().Sub(j.submitted)
	j.completed = true
	callbacks := j.callbacks
	j.lock.Unlock()

	switch final {
	case ijobs.StateSuccess:
		imetrics.AddFloat64(js.mSucceeded, 1.0)
	case ijobs.StateFailure:
		imetrics.AddFloat64(js.mFailed, 1.0)
	}

	js.writeRecords(j)
	for _, callback := range callbacks {
		js.runCallback(j, callback)
	}
}

func (js *jobs) runCallback(j *job, callback ijobs.JobCallback) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("callback for job", j.id, "panicked:", r)
		}
	}()
	callback(j)
}
