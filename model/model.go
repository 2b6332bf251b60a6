// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the intermediate representation extracted from a
// parsed GraphQL schema document.
//
// The IR is a normalized, syntax-independent description of the schema's
// declarations: object/interface/input types with their fields, enums with
// their values, and unions with their member types. Every generator consumes
// this shape instead of the parser's syntax tree, so adding a target language
// never requires touching the parser.
package model

// TypeKind classifies an extracted type declaration.
type TypeKind string

const (
	// KindObject is a GraphQL object type (type Foo { ... }).
	KindObject TypeKind = "OBJECT"

	// KindInterface is a GraphQL interface type.
	KindInterface TypeKind = "INTERFACE"

	// KindInputObject is a GraphQL input object type.
	KindInputObject TypeKind = "INPUT_OBJECT"
)

// IR is the complete intermediate representation of one schema document.
//
// Collections preserve schema declaration order; generators rely on that
// order for deterministic output.
type IR struct {
	// Types holds object, interface and input object declarations.
	Types []*Type

	// Enums holds enum declarations.
	Enums []*Enum

	// Unions holds union declarations.
	Unions []*Union
}

// Type is a normalized object-like declaration.
type Type struct {
	// Name is the schema type name (e.g., "User", "Query").
	Name string

	// Kind distinguishes object, interface and input object declarations.
	Kind TypeKind

	// Interfaces lists the names of interfaces this type implements.
	Interfaces []string

	// Fields lists the declared fields in declaration order.
	Fields []Field
}

// Field is one field of a Type.
type Field struct {
	// Name is the field name as declared in the schema.
	Name string

	// TypeName is the name of the referenced type, unwrapped from any
	// list or non-null modifiers (e.g., "[String!]!" yields "String").
	TypeName string

	// Nullable reports whether the field itself may be null.
	Nullable bool

	// List reports whether the field is list-typed.
	List bool

	// Arguments lists the field's arguments, if any. Resolver scaffolds
	// use these to type the args parameter of each resolver.
	Arguments []Argument
}

// Argument is one argument of a Field.
type Argument struct {
	Name     string
	TypeName string
	Nullable bool
	List     bool
}

// Enum is a normalized enum declaration.
type Enum struct {
	// Name is the enum type name.
	Name string

	// Values lists the enum values in declaration order.
	Values []string
}

// Union is a normalized union declaration.
type Union struct {
	// Name is the union type name.
	Name string

	// Members lists the member type names in declaration order.
	Members []string
}

// Type returns the type with the given name, or nil.
func (ir *IR) Type(name string) *Type {
	for _, t := range ir.Types {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Enum returns the enum with the given name, or nil.
func (ir *IR) Enum(name string) *Enum {
	for _, e := range ir.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Union returns the union with the given name, or nil.
func (ir *IR) Union(name string) *Union {
	for _, u := range ir.Unions {
		if u.Name == name {
			return u
		}
	}
	return nil
}

// HasDeclaration reports whether name is declared as a type, enum or union.
func (ir *IR) HasDeclaration(name string) bool {
	return ir.Type(name) != nil || ir.Enum(name) != nil || ir.Union(name) != nil
}

// TypeNames returns the names of all extracted types, in declaration order.
func (ir *IR) TypeNames() []string {
	names := make([]string, len(ir.Types))
	for i, t := range ir.Types {
		names[i] = t.Name
	}
	return names
}
