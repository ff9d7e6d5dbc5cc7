/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimagescache

import (
	theine "github.com/Yiling-J/theine-go"

	"github.com/drnecj/UPBL09a/pkg/iimages"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
)

// Keeps a bounded number of decoded frames in memory. Raw files are decoded
// once and served from the cache while they stay resident.
type cachedImageSource struct {
	cache  *theine.Cache[string, iimages.Frame]
	source iimages.IImageSource

	/* metrics */
	mOpenTotal       *float64
	mOpenCachedTotal *float64
}

func newCachingImageSource(maxFrames int, source iimages.IImageSource, metrics imetrics.IMetrics, hostName string) iimages.IImageSource {
	cache, err := theine.NewBuilder[string, iimages.Frame](int64(maxFrames)).Build()
	if err != nil {
		panic(err)
	}
	return &cachedImageSource{
		cache:            cache,
		source:           source,
		mOpenTotal:       metrics.MetricAddr(openTotal, hostName),
		mOpenCachedTotal: metrics.MetricAddr(openCachedTotal, hostName),
	}
}

func (s *cachedImageSource) Open(path string) (frame iimages.Frame, err error) {
	imetrics.AddFloat64(s.mOpenTotal, 1.0)
	if frame, ok := s.cache.Get(path); ok {
		imetrics.AddFloat64(s.mOpenCachedTotal, 1.0)
		return frame, nil
	}
	if frame, err = s.source.Open(path); err != nil {
		return frame, err
	}
	_ = s.cache.Set(path, frame, 1)
	return frame, nil
}
