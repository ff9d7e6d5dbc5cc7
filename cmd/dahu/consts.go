/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

const (
	Default_ihttp_Port = 8080

	// jobs queued per worker before submissions reply busy
	channelBufferSize = 10

	integratorsEvictedTotal = "dahu_integrators_evicted_total"
)
