// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package pipeline orchestrates one generation run: IR extraction, model-map
// validation, generator dispatch, and optional formatting.
//
// The pipeline never touches the filesystem and never terminates the
// process; it returns values and errors only. Writing the results is the
// writer package's job, exit codes are the CLI's.
package pipeline

import (
	"fmt"
	"slices"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/albertocavalcante/graphqlgen/generator"
	"github.com/albertocavalcante/graphqlgen/model"
)

// Options controls one run.
type Options struct {
	// Language selects the registered target generator.
	Language string

	// Prettify applies the target's formatter after generation.
	Prettify bool

	// Format holds the formatting options threaded to the target's
	// formatter when Prettify is set.
	Format generator.FormatOptions
}

// Result is the assembled output of one run.
type Result struct {
	// Types is the combined type-declarations source text.
	Types string

	// Resolvers are the generated scaffold files, in generator order.
	Resolvers []generator.CodeFile
}

// Generate runs the pipeline over a parsed schema document.
//
// The IR is extracted fresh from doc, and the same IR and model map are
// threaded into both the types and the resolvers generator, so the two
// outputs always describe one consistent schema snapshot. Formatting runs
// strictly after generation. Generator and formatter failures propagate
// unchanged.
func Generate(doc *ast.SchemaDocument, modelMap generator.ModelMap, context *generator.Binding, opts Options) (*Result, error) {
	ir, err := model.Extract(doc)
	if err != nil {
		return nil, err
	}

	if err := validateModelMap(ir, modelMap); err != nil {
		return nil, err
	}

	g, err := generator.Lookup(opts.Language)
	if err != nil {
		return nil, err
	}

	args := generator.GenerateArgs{
		IR:       ir,
		ModelMap: modelMap,
		Context:  context,
	}

	types, err := g.GenerateTypes(args)
	if err != nil {
		return nil, err
	}

	resolvers, err := g.GenerateResolvers(args)
	if err != nil {
		return nil, err
	}

	if opts.Prettify {
		types, err = g.FormatTypes(types, opts.Format)
		if err != nil {
			return nil, err
		}
		for i, file := range resolvers {
			code, err := g.FormatResolver(file.Code, opts.Format)
			if err != nil {
				return nil, fmt.Errorf("format %s: %w", file.Path, err)
			}
			resolvers[i].Code = code
		}
	}

	return &Result{Types: types, Resolvers: resolvers}, nil
}

// validateModelMap rejects bindings whose key names no extracted type. A
// type without a binding is legal (generators fall back to the generated
// type); a binding without a type is a configuration typo and fails fast.
func validateModelMap(ir *model.IR, modelMap generator.ModelMap) error {
	var unknown []string
	for name := range modelMap {
		if ir.Type(name) == nil {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return fmt.Errorf("model map binds types not declared in the schema: %v", unknown)
}
