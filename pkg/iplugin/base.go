/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iplugin

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/untillpro/goutils/logger"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
)

// PluginBase carries the state common to all plugins: the job input, the
// output under construction and the log trail published under "logging".
// Embed it and override the stages the plugin needs.
type PluginBase struct {
	name     string
	Input    coreutils.MapObject
	Output   coreutils.MapObject
	logTrail []string
	aborted  int32
}

func NewBase(name string) PluginBase {
	return PluginBase{
		name:   name,
		Input:  coreutils.MapObject{},
		Output: coreutils.MapObject{},
	}
}

func (b *PluginBase) Name() string { return b.name }

func (b *PluginBase) Setup(input coreutils.MapObject) error {
	if input != nil {
		b.Input = input
	}
	return nil
}

func (b *PluginBase) Process(_ context.Context) error { return nil }

// Teardown publishes the log trail and hands the output over.
func (b *PluginBase) Teardown() (coreutils.MapObject, error) {
	if len(b.logTrail) > 0 {
		b.Output[FieldLogging] = append([]string(nil), b.logTrail...)
	}
	return b.Output, nil
}

func (b *PluginBase) Abort()        { atomic.StoreInt32(&b.aborted, 1) }
func (b *PluginBase) Aborted() bool { return atomic.LoadInt32(&b.aborted) != 0 }

func (b *PluginBase) Info() string { return strings.Join(b.logTrail, "\n") }

// LogError records a fatal condition and returns it as the error to fail
// the current stage with.
func (b *PluginBase) LogError(err error) error {
	err = fmt.Errorf("error in %s: %w", b.name, err)
	logger.Error(err.Error())
	b.logTrail = append(b.logTrail, err.Error())
	return err
}

// LogWarning records a condition the plugin recovers from, e.g. a skipped
// frame.
func (b *PluginBase) LogWarning(txt string) {
	msg := fmt.Sprintf("warning in %s: %s", b.name, txt)
	logger.Warning(msg)
	b.logTrail = append(b.logTrail, msg)
}
