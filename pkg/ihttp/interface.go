/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ihttp

import (
	"net/http"

	"github.com/drnecj/UPBL09a/pkg/iservices"
)

type CLIParams struct {
	// TCP port to listen on, 0 picks a free one
	Port int
}

// IHTTPProcessor serves the host REST API.
type IHTTPProcessor interface {
	iservices.IService

	// ListeningPort is valid after Prepare
	ListeningPort() int

	// HandlePath mounts an extra handler, exact path or prefix
	HandlePath(resource string, prefix bool, handlerFunc func(http.ResponseWriter, *http.Request))
}
