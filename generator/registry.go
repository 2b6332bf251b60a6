// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"slices"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
)

// Register adds a generator to the registry. Adding a language to the tool
// is registering one Generator; the CLI registers all built-in targets at
// startup.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()
	meta := g.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("generator %q already registered", meta.Name))
	}
	registry[meta.Name] = g
}

// Get returns a generator by language identifier.
func Get(language string) (Generator, bool) {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := registry[language]
	return g, ok
}

// Lookup returns a generator by language identifier, or an error naming the
// unknown language. Configuration validation rejects unsupported languages
// before the pipeline runs, so a failing lookup is an invariant violation
// surfaced to the caller, never a process exit.
func Lookup(language string) (Generator, error) {
	g, ok := Get(language)
	if !ok {
		return nil, fmt.Errorf("no generator registered for language %q (supported: %v)", language, List())
	}
	return g, nil
}

// List returns all registered language identifiers, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Generator)
}
