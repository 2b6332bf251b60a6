// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Binding is one resolved model-map entry: the implementation type backing a
// schema type, qualified by where it lives on disk and how the generated
// types file imports it.
type Binding struct {
	// FilePath is the absolute path of the implementation source file.
	FilePath string

	// ImportPath is the implementation file's path relative to the
	// directory of the generated types file, in slash form, with the
	// source extension stripped (import-statement ready).
	ImportPath string

	// TypeName is the exported implementation type name, carried through
	// unchanged from the user's declaration.
	TypeName string
}

// ModelMap binds schema type names to their resolved implementation
// bindings. Built once per run, immutable afterward.
type ModelMap map[string]Binding

// ResolveModelMap converts user model declarations of the form
// "path:TypeName" into absolute-path-qualified bindings. Import paths are
// computed relative to typesDir, the directory the generated types file is
// written to.
//
// A malformed value fails fast naming the offending entry; a partial map is
// never returned.
func ResolveModelMap(models map[string]string, typesDir string) (ModelMap, error) {
	mm := make(ModelMap, len(models))
	for typeName, value := range models {
		b, err := ResolveBinding(value, typesDir)
		if err != nil {
			return nil, fmt.Errorf("model map entry %q: %w", typeName, err)
		}
		mm[typeName] = *b
	}
	return mm, nil
}

// ResolveBinding resolves a single "path:TypeName" declaration against the
// given output directory. The context-type declaration in the configuration
// uses the same form and resolves through here as well.
func ResolveBinding(value, typesDir string) (*Binding, error) {
	sep := strings.LastIndex(value, ":")
	if sep <= 0 || sep == len(value)-1 {
		return nil, fmt.Errorf("malformed value %q (want \"path:TypeName\")", value)
	}
	file, typeName := value[:sep], value[sep+1:]

	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", file, err)
	}

	absDir, err := filepath.Abs(typesDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory %s: %w", typesDir, err)
	}
	rel, err := filepath.Rel(absDir, abs)
	if err != nil {
		return nil, fmt.Errorf("relativize %s against %s: %w", abs, absDir, err)
	}

	return &Binding{
		FilePath:   abs,
		ImportPath: ImportPath(rel),
		TypeName:   typeName,
	}, nil
}

// ImportPath converts a relative file path to import-statement form: slash
// separators, an explicit leading "./" for same-tree paths, and no source
// extension.
func ImportPath(rel string) string {
	p := filepath.ToSlash(rel)
	p = strings.TrimSuffix(p, filepath.Ext(p))
	if !strings.HasPrefix(p, ".") {
		p = "./" + p
	}
	return p
}
