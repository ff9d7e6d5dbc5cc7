/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iplugin

// Provide creates an empty plugin registry.
func Provide() IPluginRegistry {
	return &registry{factories: map[string]func() IPlugin{}}
}
