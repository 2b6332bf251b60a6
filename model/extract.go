// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// Extract reduces a parsed schema document to its intermediate
// representation.
//
// Declaration order is preserved in every collection. Scalar declarations
// produce no IR (they only name a type that model bindings or generators map
// themselves). A definition kind the extractor does not understand is an
// error identifying the declaration; a document that parsed successfully
// should never trigger it.
func Extract(doc *ast.SchemaDocument) (*IR, error) {
	ir := &IR{}
	seen := make(map[string]ast.DefinitionKind)

	for _, def := range doc.Definitions {
		if prev, ok := seen[def.Name]; ok {
			return nil, fmt.Errorf("duplicate declaration %q (%s and %s)", def.Name, prev, def.Kind)
		}
		seen[def.Name] = def.Kind

		switch def.Kind {
		case ast.Object, ast.Interface, ast.InputObject:
			ir.Types = append(ir.Types, extractType(def))
		case ast.Enum:
			ir.Enums = append(ir.Enums, extractEnum(def))
		case ast.Union:
			ir.Unions = append(ir.Unions, extractUnion(def))
		case ast.Scalar:
			// Scalars declare a name only; nothing to normalize.
		default:
			return nil, fmt.Errorf("unsupported schema construct %s in declaration %q", def.Kind, def.Name)
		}
	}

	return ir, nil
}

func extractType(def *ast.Definition) *Type {
	t := &Type{
		Name:       def.Name,
		Kind:       typeKind(def.Kind),
		Interfaces: def.Interfaces,
	}
	for _, f := range def.Fields {
		field := Field{
			Name:     f.Name,
			TypeName: f.Type.Name(),
			Nullable: !f.Type.NonNull,
			List:     f.Type.Elem != nil,
		}
		for _, a := range f.Arguments {
			field.Arguments = append(field.Arguments, Argument{
				Name:     a.Name,
				TypeName: a.Type.Name(),
				Nullable: !a.Type.NonNull,
				List:     a.Type.Elem != nil,
			})
		}
		t.Fields = append(t.Fields, field)
	}
	return t
}

func extractEnum(def *ast.Definition) *Enum {
	e := &Enum{Name: def.Name}
	for _, v := range def.EnumValues {
		e.Values = append(e.Values, v.Name)
	}
	return e
}

func extractUnion(def *ast.Definition) *Union {
	return &Union{Name: def.Name, Members: def.Types}
}

func typeKind(k ast.DefinitionKind) TypeKind {
	switch k {
	case ast.Interface:
		return KindInterface
	case ast.InputObject:
		return KindInputObject
	default:
		return KindObject
	}
}
