/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package coreutils

import "errors"

var (
	ErrFieldsMissed      = errors.New("fields are missed")
	ErrFieldTypeMismatch = errors.New("field type mismatch")
)
