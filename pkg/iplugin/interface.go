/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iplugin

import (
	"context"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
)

// IPlugin is one unit of processing work executed by the job engine.
//
// Lifecycle: Setup → Process → Teardown. A failed stage ends the job and the
// following stages do not run. Abort may be called concurrently with Process.
type IPlugin interface {
	Name() string

	// Setup receives the job input and prepares the plugin.
	Setup(input coreutils.MapObject) error

	// Process performs the work. Long processing must honor ctx and Abort.
	Process(ctx context.Context) error

	// Teardown closes resources and returns the job output.
	// Runs after a successful Process only.
	Teardown() (output coreutils.MapObject, err error)

	// Abort asks a running Process to stop at the next frame boundary.
	Abort()

	// Info returns the collected log trail, one line per entry.
	Info() string
}

// IPluginRegistry creates plugins by name.
//
// The registry is an explicit instance wired into the engine, plugins
// register at host assembly.
type IPluginRegistry interface {
	// Register panics when name is taken.
	Register(name string, factory func() IPlugin)

	// New instantiates a fresh plugin. Unknown name: ErrPluginNotFound.
	New(name string) (IPlugin, error)

	// Names lists registered plugins, sorted.
	Names() []string
}
