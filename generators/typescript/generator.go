// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package typescript generates TypeScript type declarations and resolver
// scaffolds from the extracted schema IR.
package typescript

import (
	"github.com/albertocavalcante/graphqlgen/generator"
)

// Generator implements [generator.Generator] for TypeScript output.
type Generator struct{}

// NewGenerator creates a new TypeScript generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:          "typescript",
		Version:       "1.0.0",
		Description:   "Generate TypeScript types and resolver scaffolds from a GraphQL schema",
		FileExtension: ".ts",
	}
}

// GenerateTypes produces the combined type-declarations file: one interface
// per schema type, string-literal unions for enums, resolver interfaces for
// object types, and imports for every bound model.
func (g *Generator) GenerateTypes(args generator.GenerateArgs) (string, error) {
	return generateTypes(args)
}

// FormatTypes pretty-prints generated TypeScript source.
func (g *Generator) FormatTypes(src string, opts generator.FormatOptions) (string, error) {
	return formatSource(src, opts)
}

// GenerateResolvers produces one scaffold file per object type.
func (g *Generator) GenerateResolvers(args generator.GenerateArgs) ([]generator.CodeFile, error) {
	return generateResolvers(args)
}

// FormatResolver pretty-prints one resolver scaffold.
func (g *Generator) FormatResolver(src string, opts generator.FormatOptions) (string, error) {
	return formatSource(src, opts)
}
