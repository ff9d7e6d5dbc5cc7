/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iservices

import "errors"

var ErrAtLeastOneServiceFailedToStart = errors.New("at least one service failed to start")
