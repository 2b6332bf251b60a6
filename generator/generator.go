// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the contract all target-language code
// generators implement, the registry they are looked up in, and the
// model-map resolution shared by every target.
package generator

import "github.com/albertocavalcante/graphqlgen/model"

// Generator is the interface a target language implements.
//
// Each target carries two generate/format pairs: one producing the combined
// type-declarations text, one producing the per-type resolver scaffold
// files. Generate methods are pure given their arguments; Format methods are
// pure given text and options, so a formatter failure can never corrupt
// generation state.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// GenerateTypes produces the combined type-declarations source text.
	GenerateTypes(args GenerateArgs) (string, error)

	// FormatTypes pretty-prints previously generated types text.
	FormatTypes(src string, opts FormatOptions) (string, error)

	// GenerateResolvers produces one scaffold file per resolvable type.
	GenerateResolvers(args GenerateArgs) ([]CodeFile, error)

	// FormatResolver pretty-prints one resolver scaffold's source text.
	FormatResolver(src string, opts FormatOptions) (string, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the target-language identifier (e.g., "typescript", "go").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtension is the extension of generated sources (e.g., ".ts").
	FileExtension string
}

// GenerateArgs is the bundle handed to both generate calls of a target.
//
// The orchestrator builds it once per run and passes the same value to the
// types and resolvers generators, so both outputs always describe one
// consistent schema snapshot.
type GenerateArgs struct {
	// IR is the extracted intermediate representation.
	IR *model.IR

	// ModelMap binds schema type names to backing implementation types.
	ModelMap ModelMap

	// Context is the resolved binding for the per-request context type,
	// or nil when the configuration declares none.
	Context *Binding
}

// FormatOptions controls pretty-printing. Options are threaded explicitly
// from the caller; formatters never consult ambient configuration.
type FormatOptions struct {
	// TabWidth is the indentation width for space-indented targets.
	TabWidth int

	// UseTabs selects tab indentation where the target supports it.
	UseTabs bool
}

// CodeFile is one generated resolver scaffold.
type CodeFile struct {
	// Path is the output path relative to the resolvers output directory.
	Path string

	// Code is the generated source text.
	Code string

	// Force permits overwriting an existing file at Path.
	Force bool
}

// TypesPathToken is the reserved literal token generators embed where the
// relative import path to the generated types file belongs. The output
// writer substitutes it exactly once per file, after formatting and before
// persisting, when the final output location is known.
const TypesPathToken = "__TYPES_PATH__"
