/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ijobsmem

const (
	// the engine drains channel group 0 of the proc bus, one channel per worker
	jobsChannelGroup = 0

	DefaultNumWorkers = 4

	// output field holding the abort time of an aborted job
	fieldAborted = "aborted"

	// 50 stars, separates error trails of repeated failures
	errSeparator = "**************************************************"
)

// metrics
const (
	jobsSucceededTotal = "dahu_jobs_succeeded_total"
	jobsFailedTotal    = "dahu_jobs_failed_total"
	jobsAbortedTotal   = "dahu_jobs_aborted_total"
)
