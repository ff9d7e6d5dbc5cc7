/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimagescache

// DefaultMaxFrames bounds the decoded-frame cache of a host that does not
// configure the capacity.
const DefaultMaxFrames = 10

const (
	openTotal       = "dahu_iimagescache_open_total"
	openCachedTotal = "dahu_iimagescache_open_cached_total"
)
