/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package example

import "github.com/drnecj/UPBL09a/pkg/iplugin"

// Provide registers the demo plugins.
func Provide(registry iplugin.IPluginRegistry) {
	registry.Register(PluginCube, func() iplugin.IPlugin {
		return &cubePlugin{PluginBase: iplugin.NewBase(PluginCube)}
	})
	registry.Register(PluginSquare, iplugin.FromFunction(PluginSquare, square))
}
