// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stats implements the fixed-capacity moving sample (spec.md
// §4.9) and the Temperature/Thermodynamic analyzers built on it (spec.md
// §4.10).
package stats

import "github.com/cpmech/gosl/chk"

// ScalarStatistics is the result of ScalarSample.Statistics: the sample
// mean and Bessel-corrected (1/(n-1)) variance.
type ScalarStatistics struct {
	Mean     float64
	Variance float64
}

// ScalarSample is a fixed-capacity ring buffer of scalar samples.
type ScalarSample struct {
	capacity int
	values   []float64
	next     int
	full     bool
}

// NewScalarSample returns an empty ring buffer of capacity k.
func NewScalarSample(k int) *ScalarSample {
	return &ScalarSample{capacity: k, values: make([]float64, 0, k)}
}

// Push appends x, overwriting the oldest sample once the buffer is full.
func (m *ScalarSample) Push(x float64) {
	if len(m.values) < m.capacity {
		m.values = append(m.values, x)
		return
	}
	m.values[m.next] = x
	m.next = (m.next + 1) % m.capacity
}

// Clear empties the buffer.
func (m *ScalarSample) Clear() {
	m.values = m.values[:0]
	m.next = 0
}

// IsFull reports whether the buffer holds capacity samples.
func (m *ScalarSample) IsFull() bool {
	return len(m.values) == m.capacity
}

// Len returns the number of samples currently held.
func (m *ScalarSample) Len() int {
	return len(m.values)
}

// Statistics computes the sample mean and Bessel-corrected variance. It
// fails if fewer than two samples are present.
func (m *ScalarSample) Statistics() (ScalarStatistics, error) {
	n := len(m.values)
	if n < 2 {
		return ScalarStatistics{}, chk.Err("need at least 2 samples, have %d", n)
	}
	var sum float64
	for _, v := range m.values {
		sum += v
	}
	mean := sum / float64(n)
	var sqsum float64
	for _, v := range m.values {
		d := v - mean
		sqsum += d * d
	}
	return ScalarStatistics{Mean: mean, Variance: sqsum / float64(n-1)}, nil
}

// VectorStatistics is the result of VectorSample.Statistics: the sample
// mean vector and Bessel-corrected covariance matrix.
type VectorStatistics struct {
	Mean       [2]float64
	Covariance [2][2]float64
}

// VectorSample is a fixed-capacity ring buffer of 2-vector samples, used
// by ThermodynamicAnalyzer to correlate (time, MeanSquareDisplacement).
type VectorSample struct {
	capacity int
	values   [][2]float64
	next     int
}

// NewVectorSample returns an empty ring buffer of capacity k.
func NewVectorSample(k int) *VectorSample {
	return &VectorSample{capacity: k, values: make([][2]float64, 0, k)}
}

// Push appends x, overwriting the oldest sample once full.
func (m *VectorSample) Push(x [2]float64) {
	if len(m.values) < m.capacity {
		m.values = append(m.values, x)
		return
	}
	m.values[m.next] = x
	m.next = (m.next + 1) % m.capacity
}

// Clear empties the buffer.
func (m *VectorSample) Clear() {
	m.values = m.values[:0]
	m.next = 0
}

// IsFull reports whether the buffer holds capacity samples.
func (m *VectorSample) IsFull() bool {
	return len(m.values) == m.capacity
}

// Statistics computes the sample mean vector and Bessel-corrected
// covariance matrix. It fails if fewer than two samples are present.
func (m *VectorSample) Statistics() (VectorStatistics, error) {
	n := len(m.values)
	if n < 2 {
		return VectorStatistics{}, chk.Err("need at least 2 samples, have %d", n)
	}
	var mean [2]float64
	for _, v := range m.values {
		mean[0] += v[0]
		mean[1] += v[1]
	}
	mean[0] /= float64(n)
	mean[1] /= float64(n)

	var cov [2][2]float64
	for _, v := range m.values {
		d0 := v[0] - mean[0]
		d1 := v[1] - mean[1]
		cov[0][0] += d0 * d0
		cov[0][1] += d0 * d1
		cov[1][0] += d1 * d0
		cov[1][1] += d1 * d1
	}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			cov[a][b] /= float64(n - 1)
		}
	}
	return VectorStatistics{Mean: mean, Covariance: cov}, nil
}
