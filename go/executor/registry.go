// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package executor

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// This file provides a registry for Executor implementations.
//
// Executor packages register their factories as part of their init code.
// By importing an implementation package, its executor becomes available
// in this central registry.

// Factory creates a new Executor using an executor specific configuration.
type Factory func(config any) (Executor, error)

// NewExecutor performs a lookup for the given name (case-insensitive) in
// the registry and creates a new Executor using the given optional
// configuration. An error is returned if no factory was registered under
// the given name.
func NewExecutor(name string, config ...any) (Executor, error) {
	if len(config) > 1 {
		return nil, fmt.Errorf("invalid configuration: too many arguments")
	}
	factory := GetExecutorFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("executor not found: %s", name)
	}
	c := any(nil)
	if len(config) > 0 {
		c = config[0]
	}
	return factory(c)
}

func GetExecutorFactory(name string) Factory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return registry[strings.ToLower(name)]
}

// GetAllRegisteredExecutors obtains all registered implementations.
func GetAllRegisteredExecutors() map[string]Factory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return maps.Clone(registry)
}

// RegisterExecutorFactory registers a new Executor implementation. The name
// is not case-sensitive. Registering a nil factory or a name bound before
// fails.
func RegisterExecutorFactory(name string, factory Factory) error {
	key := strings.ToLower(name)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, found := registry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	registry[key] = factory
	return nil
}

// MustRegisterExecutorFactory is RegisterExecutorFactory for package
// initialization code; it panics on failure.
func MustRegisterExecutorFactory(name string, factory Factory) {
	if err := RegisterExecutorFactory(name, factory); err != nil {
		panic(err)
	}
}

var registry = map[string]Factory{}

var registryLock sync.Mutex
