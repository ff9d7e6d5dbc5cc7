/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iintegrator

import "errors"

var (
	// ErrConfigurationNotFound: the geometry file a job points at does not exist.
	ErrConfigurationNotFound = errors.New("integrator configuration not found")

	// ErrConstruction: the geometry file exists but no integrator can be built from it.
	ErrConstruction = errors.New("integrator construction failed")

	// ErrIntegration: a constructed integrator failed on a concrete frame.
	ErrIntegration = errors.New("integration failed")

	ErrUnknownUnit = errors.New("unknown radial unit")
)
