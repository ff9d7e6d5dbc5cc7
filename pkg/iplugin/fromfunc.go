/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iplugin

import (
	"context"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
)

// FromFunction wraps a plain function into a plugin factory. The wrapper
// strips the engine-owned fields from the input, calls fn and publishes the
// returned value under "result".
func FromFunction(name string, fn func(input coreutils.MapObject) (interface{}, error)) func() IPlugin {
	return func() IPlugin {
		return &funcPlugin{PluginBase: NewBase(name), fn: fn}
	}
}

type funcPlugin struct {
	PluginBase
	fn     func(coreutils.MapObject) (interface{}, error)
	result interface{}
}

func (p *funcPlugin) Process(_ context.Context) error {
	input := coreutils.MapObject{}
	for field, value := range p.Input {
		if field == FieldJobID || field == FieldPluginName {
			continue
		}
		input[field] = value
	}
	result, err := p.fn(input)
	if err != nil {
		return p.LogError(err)
	}
	p.result = result
	return nil
}

func (p *funcPlugin) Teardown() (coreutils.MapObject, error) {
	p.Output[FieldResult] = p.result
	return p.PluginBase.Teardown()
}
