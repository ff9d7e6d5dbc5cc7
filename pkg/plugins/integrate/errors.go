/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package integrate

import "github.com/drnecj/UPBL09a/pkg/iintegrator"

// ErrConfigurationNotFound fails a job before any integration happens:
// missing PONI file, missing or blank output_dir.
var ErrConfigurationNotFound = iintegrator.ErrConfigurationNotFound
