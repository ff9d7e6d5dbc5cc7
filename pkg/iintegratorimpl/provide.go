/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iintegratorimpl

import (
	"github.com/drnecj/UPBL09a/pkg/iintegrator"
)

type factory struct{}

func (f *factory) New(poniPath string) (iintegrator.IIntegrator, error) {
	geom, err := LoadPONI(poniPath)
	if err != nil {
		return nil, err
	}
	return newIntegrator(geom), nil
}

// Provide s.e.
func Provide() iintegrator.IIntegratorFactory {
	return &factory{}
}
