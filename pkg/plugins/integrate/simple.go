/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package integrate

import (
	"errors"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/iimages"
	"github.com/drnecj/UPBL09a/pkg/iintegrator"
)

// IntegrateSimple integrates a single frame into a two-column curve file.
// The integrator is reconstructed on every call, which is simple and slow;
// batch work goes through the id31.integrate plugin instead.
func IntegrateSimple(factory iintegrator.IIntegratorFactory, images iimages.IImageSource,
	poniFile, imageFile, curveFile string, nbins int) (coreutils.MapObject, error) {
	ai, err := factory.New(poniFile)
	if err != nil {
		return nil, err
	}
	frame, err := images.Open(imageFile)
	if err != nil {
		return nil, err
	}
	if _, err = ai.Integrate1D(frame, iintegrator.IntegrateParams{
		NumPoints: nbins,
		Unit:      iintegrator.UnitTTh,
		Filename:  curveFile,
	}); err != nil {
		return nil, err
	}
	return coreutils.MapObject{"out_file": curveFile}, nil
}

func integrateSimpleFunc(factory iintegrator.IIntegratorFactory, images iimages.IImageSource) func(coreutils.MapObject) (interface{}, error) {
	return func(input coreutils.MapObject) (interface{}, error) {
		poniFile, err := input.AsStringRequired(fieldPoniFile)
		if err != nil {
			return nil, err
		}
		imageFile, err := input.AsStringRequired(fieldImageFile)
		if err != nil {
			return nil, err
		}
		curveFile, err := input.AsStringRequired(fieldCurveFile)
		if err != nil {
			return nil, err
		}
		nbins := iintegrator.DefaultNumPoints
		if v, ok, err := input.AsInt64(fieldNbins); err != nil {
			return nil, err
		} else if ok {
			if v <= 0 {
				return nil, errors.New("nbins must be positive")
			}
			nbins = int(v)
		}
		return IntegrateSimple(factory, images, poniFile, imageFile, curveFile, nbins)
	}
}
