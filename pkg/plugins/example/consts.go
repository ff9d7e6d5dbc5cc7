/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package example

const (
	PluginCube   = "example.cube"
	PluginSquare = "example.square"
)
