/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iintegrator

import (
	"github.com/drnecj/UPBL09a/pkg/iimages"
)

// IIntegrator reduces 2D detector frames to 1D scattering curves.
//
// Implementations are NOT safe for concurrent use: integration lazily builds
// and reuses private lookup state. A shared instance must be cloned with
// CloneForExclusiveUse before integrating outside the owner.
type IIntegrator interface {
	// Key returns the canonical textual form of the integrator configuration.
	// Equal configurations produce equal keys.
	Key() string

	// Integrate1D bins frame radially per params and returns the curve.
	Integrate1D(frame iimages.Frame, params IntegrateParams) (Curve, error)

	// CloneForExclusiveUse returns a private copy sharing no mutable state
	// with the receiver.
	CloneForExclusiveUse() IIntegrator
}

type IIntegratorFactory interface {
	// New constructs an integrator from a PONI geometry file.
	// Missing file: ErrConfigurationNotFound. Malformed content: ErrConstruction.
	New(poniPath string) (IIntegrator, error)
}
