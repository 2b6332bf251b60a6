// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads and validates the graphqlgen.yml definition.
//
// A definition looks like:
//
//	language: typescript
//	schema: ./schema.graphql
//	context: ./src/context.ts:Context
//	models:
//	  User: ./src/models.ts:UserModel
//	output:
//	  types: ./src/generated/graphqlgen.ts
//	  resolvers: ./src/resolvers/
//
// Relative paths are interpreted against the definition file's directory.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the definition file name looked up when none is given.
const DefaultFile = "graphqlgen.yml"

// Definition is the typed graphqlgen.yml configuration. Read once per run,
// never mutated afterward.
type Definition struct {
	// Language selects the target generator (e.g., "typescript", "go").
	Language string `yaml:"language"`

	// Schema is the path of the SDL schema entry file.
	Schema string `yaml:"schema"`

	// Context optionally binds the per-request context type, in
	// "path:TypeName" form.
	Context string `yaml:"context,omitempty"`

	// Models maps schema type names to "path:TypeName" bindings.
	Models map[string]string `yaml:"models,omitempty"`

	// Output declares where generated artifacts are written.
	Output Output `yaml:"output"`
}

// Output declares the two generation destinations.
type Output struct {
	// Types is the path of the single combined type-declarations file.
	Types string `yaml:"types"`

	// Resolvers is the directory resolver scaffolds are written under.
	Resolvers string `yaml:"resolvers"`
}

// Load reads and validates the definition at path. supported lists the
// registered target languages; validation rejects anything else so the
// pipeline can treat an unknown language as an invariant violation.
func Load(path string, supported []string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	def.anchor(filepath.Dir(path))

	if err := def.Validate(supported); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &def, nil
}

// anchor rebases relative paths onto the definition file's directory, so
// running the tool from anywhere produces the same layout.
func (d *Definition) anchor(dir string) {
	d.Schema = rebase(dir, d.Schema)
	d.Output.Types = rebase(dir, d.Output.Types)
	d.Output.Resolvers = rebase(dir, d.Output.Resolvers)
	d.Context = rebaseBinding(dir, d.Context)
	for k, v := range d.Models {
		d.Models[k] = rebaseBinding(dir, v)
	}
}

func rebase(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func rebaseBinding(dir, v string) string {
	sep := strings.LastIndex(v, ":")
	if sep <= 0 {
		return v
	}
	return rebase(dir, v[:sep]) + v[sep:]
}

// Validate checks required fields and the syntactic shape of bindings.
// Semantic checks (does the model type exist in the schema) belong to the
// pipeline, which has the extracted IR in hand.
func (d *Definition) Validate(supported []string) error {
	if d.Language == "" {
		return fmt.Errorf("missing required field: language")
	}
	if len(supported) > 0 && !slices.Contains(supported, d.Language) {
		return fmt.Errorf("unsupported language %q (supported: %s)", d.Language, strings.Join(supported, ", "))
	}
	if d.Schema == "" {
		return fmt.Errorf("missing required field: schema")
	}
	if d.Output.Types == "" {
		return fmt.Errorf("missing required field: output.types")
	}
	if d.Output.Resolvers == "" {
		return fmt.Errorf("missing required field: output.resolvers")
	}
	if d.Context != "" {
		if err := wellFormedBinding(d.Context); err != nil {
			return fmt.Errorf("context: %w", err)
		}
	}
	for name, v := range d.Models {
		if err := wellFormedBinding(v); err != nil {
			return fmt.Errorf("models.%s: %w", name, err)
		}
	}
	return nil
}

func wellFormedBinding(v string) error {
	sep := strings.LastIndex(v, ":")
	if sep <= 0 || sep == len(v)-1 {
		return fmt.Errorf("malformed value %q (want \"path:TypeName\")", v)
	}
	return nil
}
