/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package imetrics

type IMetric interface {
	Name() string

	// Host returns the processing host the metric was counted on, empty when not specified
	Host() string
}

type IMetrics interface {
	// Increase metric value with "delta".
	// The default metric value is always 0.
	// Naming best practices: https://prometheus.io/docs/practices/naming/
	//
	// @ConcurrentAccess
	Increase(metricName string, host string, valueDelta float64)

	// MetricAddr returns the address of the metric value for use with
	// AddFloat64 on hot paths.
	//
	// @ConcurrentAccess
	MetricAddr(metricName string, host string) *float64

	// List enumerates current values of all metrics
	//
	// @ConcurrentAccess
	List(cb func(metric IMetric, metricValue float64) (err error)) (err error)
}
