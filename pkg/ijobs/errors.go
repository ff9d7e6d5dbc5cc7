/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ijobs

import "errors"

var (
	// ErrBusy: every worker queue is full, the caller should retry later.
	ErrBusy = errors.New("no free job processor")

	ErrJobNotFound = errors.New("job not found")
)
