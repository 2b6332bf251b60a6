// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"bytes"
	"slices"

	"github.com/dave/jennifer/jen"

	"github.com/albertocavalcante/graphqlgen/generator"
	"github.com/albertocavalcante/graphqlgen/model"
)

func generateTypes(args generator.GenerateArgs) (string, error) {
	f := jen.NewFile("graphql")
	f.HeaderComment("Code generated by graphqlgen. DO NOT EDIT.")

	for _, t := range args.IR.Types {
		if t.Kind == model.KindInterface {
			genInterface(f, args, t)
			continue
		}
		genStruct(f, args, t)
	}
	for _, e := range args.IR.Enums {
		genEnum(f, e)
	}
	for _, u := range args.IR.Unions {
		genUnion(f, args, u)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func genStruct(f *jen.File, args generator.GenerateArgs, t *model.Type) {
	fields := make([]jen.Code, 0, len(t.Fields))
	for _, fd := range t.Fields {
		fields = append(fields, jen.Id(exportName(fd.Name)).
			Add(goType(args, fd.TypeName, fd.List, fd.Nullable)).
			Tag(map[string]string{"json": jsonTag(fd)}))
	}
	f.Commentf("%s mirrors the schema %s type %s.", t.Name, kindNoun(t.Kind), t.Name)
	f.Type().Id(t.Name).Struct(fields...)
}

// genInterface emits a GraphQL interface as a Go marker interface, with the
// marker method declared on every object type implementing it.
func genInterface(f *jen.File, args generator.GenerateArgs, t *model.Type) {
	marker := "Is" + t.Name
	f.Commentf("%s mirrors the schema interface %s.", t.Name, t.Name)
	f.Type().Id(t.Name).Interface(jen.Id(marker).Params())

	for _, impl := range args.IR.Types {
		if impl.Kind == model.KindObject && slices.Contains(impl.Interfaces, t.Name) {
			f.Func().Params(jen.Id(impl.Name)).Id(marker).Params().Block()
		}
	}
}

func genEnum(f *jen.File, e *model.Enum) {
	f.Commentf("%s mirrors the schema enum %s.", e.Name, e.Name)
	f.Type().Id(e.Name).String()

	if len(e.Values) == 0 {
		return
	}
	defs := make([]jen.Code, 0, len(e.Values))
	for _, v := range e.Values {
		defs = append(defs, jen.Id(e.Name+enumValueName(v)).Id(e.Name).Op("=").Lit(v))
	}
	f.Const().Defs(defs...)
}

// genUnion emits the union as a marker interface, with the marker method
// declared on every member type.
func genUnion(f *jen.File, args generator.GenerateArgs, u *model.Union) {
	marker := "Is" + u.Name
	f.Commentf("%s mirrors the schema union %s.", u.Name, u.Name)
	f.Type().Id(u.Name).Interface(jen.Id(marker).Params())

	for _, m := range u.Members {
		if args.IR.Type(m) == nil {
			continue
		}
		f.Func().Params(jen.Id(m)).Id(marker).Params().Block()
	}
}

// goType maps a referenced type name plus its modifiers to Go code. Lists
// are slices; a nullable non-list value is a pointer, except for unions and
// interfaces, which are already nilable.
func goType(args generator.GenerateArgs, name string, list, nullable bool) jen.Code {
	base := baseType(args, name)
	if list {
		return jen.Index().Add(base)
	}
	if nullable && !nilable(args, name) {
		return jen.Op("*").Add(base)
	}
	return base
}

func nilable(args generator.GenerateArgs, name string) bool {
	if args.IR.Union(name) != nil {
		return true
	}
	if t := args.IR.Type(name); t != nil && t.Kind == model.KindInterface {
		return true
	}
	return false
}

func baseType(args generator.GenerateArgs, name string) jen.Code {
	switch name {
	case "ID", "String":
		return jen.String()
	case "Int":
		return jen.Int()
	case "Float":
		return jen.Float64()
	case "Boolean":
		return jen.Bool()
	}
	if args.IR.HasDeclaration(name) {
		return jen.Id(name)
	}
	// Custom scalar or undeclared reference.
	return jen.Id("any")
}

func jsonTag(f model.Field) string {
	if f.Nullable {
		return f.Name + ",omitempty"
	}
	return f.Name
}

func kindNoun(k model.TypeKind) string {
	switch k {
	case model.KindInterface:
		return "interface"
	case model.KindInputObject:
		return "input"
	default:
		return "object"
	}
}
