/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package coreutils

import "time"

// TimeFunc is injected wherever job timing must be deterministic in tests.
type TimeFunc func() time.Time

// Isotime renders t the way job records and log trails expect it.
func Isotime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05-07:00")
}
