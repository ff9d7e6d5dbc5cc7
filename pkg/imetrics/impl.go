/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package imetrics

import (
	"bytes"
	"math"
	"strconv"
	"sync"
	"sync/atomic"
	"unsafe"
)

type metric struct {
	name string
	host string
}

func (m *metric) Name() string {
	return m.name
}

func (m *metric) Host() string {
	return m.host
}

type mapMetrics struct {
	metrics map[metric]*float64
	lock    sync.Mutex
}

func newMetrics() IMetrics {
	return &mapMetrics{
		metrics: make(map[metric]*float64),
	}
}

// AddFloat64 atomically adds delta to the value at addr.
func AddFloat64(addr *float64, delta float64) {
	for {
		oldBits := atomic.LoadUint64((*uint64)(unsafe.Pointer(addr)))
		newBits := math.Float64bits(math.Float64frombits(oldBits) + delta)
		if atomic.CompareAndSwapUint64((*uint64)(unsafe.Pointer(addr)), oldBits, newBits) {
			return
		}
	}
}

func loadFloat64(addr *float64) float64 {
	return math.Float64frombits(atomic.LoadUint64((*uint64)(unsafe.Pointer(addr))))
}

func (m *mapMetrics) MetricAddr(metricName string, host string) *float64 {
	key := metric{
		name: metricName,
		host: host,
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	addr, ok := m.metrics[key]
	if !ok {
		addr = new(float64)
		m.metrics[key] = addr
	}
	return addr
}

func (m *mapMetrics) Increase(metricName string, host string, valueDelta float64) {
	AddFloat64(m.MetricAddr(metricName, host), valueDelta)
}

func (m *mapMetrics) List(cb func(metric IMetric, metricValue float64) (err error)) (err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for metric, addr := range m.metrics {
		metric := metric
		err = cb(&metric, loadFloat64(addr))
		if err != nil {
			return
		}
	}
	return err
}

func ToPrometheus(metric IMetric, metricValue float64) []byte {
	bb := bytes.Buffer{}
	bb.WriteString(metric.Name())
	if metric.Host() != "" {
		bb.WriteString(`{host="`)
		bb.WriteString(metric.Host())
		bb.WriteString(`"}`)
	}
	bb.WriteRune(' ')
	bb.WriteString(strconv.FormatFloat(metricValue, 'f', -1, bitSize))
	bb.WriteRune('\n')
	return bb.Bytes()
}
