/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iplugin

import "errors"

var ErrPluginNotFound = errors.New("plugin not found")
