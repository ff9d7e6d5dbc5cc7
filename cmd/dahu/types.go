/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"github.com/drnecj/UPBL09a/pkg/iservices"
)

type CLIParams struct {
	NumWorkers          uint
	Workdir             string
	IntegratorCacheSize int
	FrameCacheSize      int
}

type WiredServer struct {
	JobWorkers iservices.IService
	HTTPServer iservices.IService
}
