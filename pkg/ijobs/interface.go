/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ijobs

import (
	"time"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
)

type State string

const (
	StateUninitialized State = "uninitialized"
	StateRunning       State = "running"
	StateSuccess       State = "success"
	StateFailure       State = "failure"
	StateAborted       State = "aborted"
)

// IJob is a read view of one submitted job.
type IJob interface {
	ID() int64

	// Name is the plugin name the job was submitted for.
	Name() string

	State() State

	// Input returns the job input, including the injected "job_id" field.
	Input() coreutils.MapObject

	// Output is empty until the job completes. A failed job carries the
	// error trail under "error", an aborted one the abort time under
	// "aborted".
	Output() coreutils.MapObject

	// Runtime is queue wait plus execution for a completed job, time since
	// submission for a job still in flight.
	Runtime() time.Duration
}

// JobCallback runs on job completion, whatever the final state.
type JobCallback func(job IJob)

// IJobs is the job engine: it accepts, tracks and executes plugin jobs.
type IJobs interface {
	// Submit validates the input, creates the job and hands it to a worker.
	// The returned id is monotonic over the engine lifetime.
	// Unknown plugin_name: ErrPluginNotFound. Full worker queue: ErrBusy.
	// Callbacks run on completion, in order, with the completed job.
	//
	// @ConcurrentAccess
	Submit(input coreutils.MapObject, callbacks ...JobCallback) (id int64, err error)

	// Job returns the job by id, ErrJobNotFound otherwise.
	//
	// @ConcurrentAccess
	Job(id int64) (job IJob, err error)

	// Jobs lists known job ids, ascending.
	//
	// @ConcurrentAccess
	Jobs() []int64

	// Abort asks a running job to stop: the job context is cancelled and the
	// plugin's Abort is invoked. Jobs not in the running state are left as
	// they are. ErrJobNotFound when id is unknown.
	//
	// @ConcurrentAccess
	Abort(id int64) error

	// Stats renders the per-job table and the throughput totals.
	//
	// @ConcurrentAccess
	Stats() string
}
