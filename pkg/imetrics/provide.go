/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package imetrics

func Provide() IMetrics {
	return newMetrics()
}
