/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iintegratorimpl

import (
	"fmt"
	"math"

	"github.com/drnecj/UPBL09a/pkg/iimages"
	"github.com/drnecj/UPBL09a/pkg/iintegrator"
)

type refIntegrator struct {
	geom Geometry
	key  string

	// bin assignment of every pixel, built lazily on the first frame and
	// rebuilt when dims, bin count or unit change. Building is the expensive
	// part of integration and mutates the integrator: shared instances must
	// be cloned before use.
	lut *binTable
}

func newIntegrator(geom Geometry) *refIntegrator {
	return &refIntegrator{
		geom: geom,
		key:  geom.Key(),
	}
}

func (i *refIntegrator) Key() string {
	return i.key
}

func (i *refIntegrator) CloneForExclusiveUse() iintegrator.IIntegrator {
	clone := &refIntegrator{
		geom: i.geom,
		key:  i.key,
	}
	if i.lut != nil {
		clone.lut = i.lut.clone()
	}
	return clone
}

func (i *refIntegrator) Integrate1D(frame iimages.Frame, params iintegrator.IntegrateParams) (curve iintegrator.Curve, err error) {
	npt := params.NumPoints
	if npt <= 0 {
		npt = iintegrator.DefaultNumPoints
	}
	unit, err := iintegrator.ParseUnit(string(params.Unit))
	if err != nil {
		return curve, err
	}
	norm := params.Normalization
	if norm == 0 {
		norm = 1
	}

	if frame.Dim1 <= 0 || frame.Dim2 <= 0 || len(frame.Data) != frame.Dim1*frame.Dim2 {
		return curve, fmt.Errorf("frame %d×%d with %d pixels: %w",
			frame.Dim1, frame.Dim2, len(frame.Data), iintegrator.ErrIntegration)
	}

	if i.lut == nil || !i.lut.matches(frame.Dim1, frame.Dim2, npt, unit) {
		if i.lut, err = i.buildTable(frame.Dim1, frame.Dim2, npt, unit); err != nil {
			return curve, err
		}
	}

	sums := make([]float64, npt)
	counts := make([]int, npt)
	for idx, v := range frame.Data {
		b := i.lut.binOf[idx]
		sums[b] += v
		counts[b]++
	}

	curve = iintegrator.Curve{
		Unit: unit,
		X:    append([]float64(nil), i.lut.centers...),
		Y:    make([]float64, npt),
	}
	for b := 0; b < npt; b++ {
		if counts[b] > 0 {
			curve.Y[b] = sums[b] / float64(counts[b]) / norm
		}
	}

	if params.Filename != "" {
		if err = writeDat(params.Filename, curve, norm); err != nil {
			return curve, err
		}
	}
	return curve, nil
}

type binTable struct {
	dim1, dim2 int
	npt        int
	unit       iintegrator.Unit
	binOf      []int32
	centers    []float64
}

func (t *binTable) matches(dim1, dim2, npt int, unit iintegrator.Unit) bool {
	return t.dim1 == dim1 && t.dim2 == dim2 && t.npt == npt && t.unit == unit
}

func (t *binTable) clone() *binTable {
	return &binTable{
		dim1:    t.dim1,
		dim2:    t.dim2,
		npt:     t.npt,
		unit:    t.unit,
		binOf:   append([]int32(nil), t.binOf...),
		centers: append([]float64(nil), t.centers...),
	}
}

func (i *refIntegrator) buildTable(dim1, dim2, npt int, unit iintegrator.Unit) (*binTable, error) {
	g := i.geom
	lambdaNm := g.Wavelength * 1e9
	if unit == iintegrator.UnitQ && lambdaNm <= 0 {
		return nil, fmt.Errorf("unit %s needs a wavelength: %w", unit, iintegrator.ErrIntegration)
	}
	s1, c1 := math.Sincos(g.Rot1)
	s2, c2 := math.Sincos(g.Rot2)

	pos := make([]float64, dim1*dim2)
	min, max := math.Inf(1), math.Inf(-1)
	idx := 0
	for row := 0; row < dim2; row++ {
		p1 := (float64(row)+0.5)*g.PixelSize1 - g.Poni1
		for col := 0; col < dim1; col++ {
			p2 := (float64(col)+0.5)*g.PixelSize2 - g.Poni2

			// pixel center after the detector rotations about axes 1 and 2;
			// rot3 spins the detector about the beam and does not move the
			// radial coordinate
			t2 := p2*c1 - g.Distance*s1
			t3 := p2*s1 + g.Distance*c1
			v1 := p1*c2 + t3*s2
			v3 := -p1*s2 + t3*c2
			tth := math.Atan2(math.Hypot(v1, t2), v3)

			var x float64
			switch unit {
			case iintegrator.UnitTTh:
				x = tth * 180 / math.Pi
			case iintegrator.UnitR:
				x = g.Distance * math.Tan(tth) * 1000
			default: // UnitQ
				x = 4 * math.Pi * math.Sin(tth/2) / lambdaNm
			}
			pos[idx] = x
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
			idx++
		}
	}

	table := &binTable{
		dim1:    dim1,
		dim2:    dim2,
		npt:     npt,
		unit:    unit,
		binOf:   make([]int32, len(pos)),
		centers: make([]float64, npt),
	}
	width := (max - min) / float64(npt)
	for b := 0; b < npt; b++ {
		table.centers[b] = min + (float64(b)+0.5)*width
	}
	for idx, x := range pos {
		b := 0
		if width > 0 {
			b = int((x - min) / width)
			if b >= npt {
				b = npt - 1
			}
		}
		table.binOf[idx] = int32(b)
	}
	return table, nil
}
