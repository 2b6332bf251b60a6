// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package golang generates Go type declarations and resolver scaffolds from
// the extracted schema IR.
//
// Types are emitted into one combined file (package graphql); scaffolds are
// emitted one file per object type (package resolvers). Scaffolds import the
// types package through the deferred-path token; after substitution the
// developer replaces it with their module's import path while completing the
// scaffold.
package golang

import (
	"github.com/albertocavalcante/graphqlgen/generator"
)

// Generator implements [generator.Generator] for Go output.
type Generator struct{}

// NewGenerator creates a new Go generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:          "go",
		Version:       "1.0.0",
		Description:   "Generate Go types and resolver scaffolds from a GraphQL schema",
		FileExtension: ".go",
	}
}

// GenerateTypes produces the combined type-declarations file.
func (g *Generator) GenerateTypes(args generator.GenerateArgs) (string, error) {
	return generateTypes(args)
}

// FormatTypes runs the generated source through goimports.
func (g *Generator) FormatTypes(src string, opts generator.FormatOptions) (string, error) {
	return formatSource("types.go", src)
}

// GenerateResolvers produces one scaffold file per object type.
func (g *Generator) GenerateResolvers(args generator.GenerateArgs) ([]generator.CodeFile, error) {
	return generateResolvers(args)
}

// FormatResolver runs one scaffold through goimports.
func (g *Generator) FormatResolver(src string, opts generator.FormatOptions) (string, error) {
	return formatSource("resolver.go", src)
}
