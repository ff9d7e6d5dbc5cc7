/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package pipeline

// Error places
const (
	placeCatchOnErr = "catch-onErr"
	placeDoSync     = "doSync"
)
