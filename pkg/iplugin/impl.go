/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iplugin

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type registry struct {
	lock      sync.Mutex
	factories map[string]func() IPlugin
}

func (r *registry) Register(name string, factory func() IPlugin) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("plugin %q is already registered", name))
	}
	r.factories[name] = factory
}

func (r *registry) New(name string) (IPlugin, error) {
	r.lock.Lock()
	factory, ok := r.factories[name]
	r.lock.Unlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrPluginNotFound)
	}
	return factory(), nil
}

func (r *registry) Names() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	names := maps.Keys(r.factories)
	slices.Sort(names)
	return names
}
