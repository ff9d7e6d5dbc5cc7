/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimagescache

import (
	"github.com/drnecj/UPBL09a/pkg/iimages"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
)

// Provide s.e.
func Provide(maxFrames int, source iimages.IImageSource, metrics imetrics.IMetrics, hostName string) iimages.IImageSource {
	return newCachingImageSource(maxFrames, source, metrics, hostName)
}
