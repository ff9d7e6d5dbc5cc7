/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ihttpimpl

import "time"

const (
	apiPrefix                = "/api/v1"
	defaultReadHeaderTimeout = time.Second
	retryAfterSecondsOn503   = 1
)
