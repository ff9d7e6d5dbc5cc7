/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iintegrator

import "fmt"

// Unit of the radial axis.
type Unit string

const (
	UnitQ   Unit = "q_nm^-1" // scattering vector, 1/nm
	UnitTTh Unit = "2th_deg" // scattering angle 2θ, degrees
	UnitR   Unit = "r_mm"    // radius in the detector plane, mm
)

// DefaultNumPoints is the bin count used when a job does not set one.
const DefaultNumPoints = 1000

type IntegrateParams struct {
	NumPoints     int     // radial bins, DefaultNumPoints when 0
	Unit          Unit    // UnitQ when empty
	Normalization float64 // monitor value the intensities are divided by, 1 when 0
	Filename      string  // when set, the curve is also written there as a two-column .dat
}

// Curve is a 1D integration result: mean intensity per radial bin.
type Curve struct {
	Unit Unit
	X    []float64 // bin centers, in Unit
	Y    []float64 // mean intensity per bin, normalized
}

// ParseUnit validates a textual radial unit from a job input.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitQ, UnitTTh, UnitR:
		return Unit(s), nil
	case "":
		return UnitQ, nil
	default:
		return "", fmt.Errorf("'%s': %w", s, ErrUnknownUnit)
	}
}
