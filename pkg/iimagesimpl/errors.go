/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimagesimpl

import "errors"

var (
	ErrNotEDF              = errors.New("not an EDF image")
	ErrUnsupportedDataType = errors.New("unsupported EDF data type")
)
