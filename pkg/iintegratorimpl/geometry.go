/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iintegratorimpl

import "fmt"

// Geometry of the detector relative to the sample.
//
// Lengths are in meters, rotations in radians. Poni1/Poni2 locate the point
// of normal incidence on the detector: Poni1 along the slow axis (rows),
// Poni2 along the fast axis (columns).
type Geometry struct {
	Distance   float64
	Poni1      float64
	Poni2      float64
	Rot1       float64
	Rot2       float64
	Rot3       float64
	Wavelength float64
	PixelSize1 float64
	PixelSize2 float64
}

// Key is the canonical textual form of the geometry: fixed field order,
// fixed formatting. Equal geometries produce equal keys.
func (g Geometry) Key() string {
	return fmt.Sprintf(
		"dist=%.12e poni1=%.12e poni2=%.12e rot1=%.12e rot2=%.12e rot3=%.12e wl=%.12e pix1=%.12e pix2=%.12e",
		g.Distance, g.Poni1, g.Poni2, g.Rot1, g.Rot2, g.Rot3, g.Wavelength, g.PixelSize1, g.PixelSize2)
}
