/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package example

import (
	"context"
	"errors"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
)

// cubePlugin demonstrates a struct-based plugin: it overrides Process and
// fills the output itself.
type cubePlugin struct {
	iplugin.PluginBase
}

func (p *cubePlugin) Process(_ context.Context) error {
	x, ok, err := p.Input.AsFloat64("x")
	if err != nil {
		return p.LogError(err)
	}
	if !ok {
		p.LogWarning("no x in input, using 0")
	}
	p.Output[iplugin.FieldResult] = x * x * x
	return nil
}

// square demonstrates a plain function wrapped by iplugin.FromFunction.
func square(input coreutils.MapObject) (interface{}, error) {
	x, ok, err := input.AsFloat64("x")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("no x in input")
	}
	return x * x, nil
}
