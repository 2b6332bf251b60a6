// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/albertocavalcante/graphqlgen/generator"
	"github.com/albertocavalcante/graphqlgen/model"
)

// generateResolvers produces one scaffold per object type. The scaffold
// imports the generated types package through the deferred-path token; the
// writer substitutes the relative path to the types file, which the
// developer swaps for their module's import path when completing the
// scaffold.
func generateResolvers(args generator.GenerateArgs) ([]generator.CodeFile, error) {
	var files []generator.CodeFile
	for _, t := range args.IR.Types {
		if t.Kind != model.KindObject {
			continue
		}
		code, err := resolverScaffold(args, t)
		if err != nil {
			return nil, fmt.Errorf("scaffold %s: %w", t.Name, err)
		}
		files = append(files, generator.CodeFile{
			Path: fileName(t.Name),
			Code: code,
		})
	}
	return files, nil
}

func resolverScaffold(args generator.GenerateArgs, t *model.Type) (string, error) {
	f := jen.NewFile("resolvers")
	f.HeaderComment("Code generated by graphqlgen as a starting point. Complete and keep.")
	f.ImportName(generator.TypesPathToken, "graphql")

	resolverName := t.Name + "Resolver"
	f.Commentf("%s resolves fields of the %s type.", resolverName, t.Name)
	f.Type().Id(resolverName).Struct()

	for _, fd := range t.Fields {
		genResolverMethod(f, args, t, resolverName, fd)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func genResolverMethod(f *jen.File, args generator.GenerateArgs, t *model.Type, resolverName string, fd model.Field) {
	params := []jen.Code{
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("parent").Op("*").Qual(generator.TypesPathToken, t.Name),
	}
	for _, a := range fd.Arguments {
		params = append(params, jen.Id(paramName(a.Name)).Add(goType(args, a.TypeName, a.List, a.Nullable)))
	}

	ret := qualReturnType(args, fd)

	method := f.Func().
		Params(jen.Id("r").Op("*").Id(resolverName)).
		Id(exportName(fd.Name)).
		Params(params...).
		Params(ret, jen.Error())

	if simpleDelegate(args, t, fd) {
		method.Block(
			jen.Return(jen.Id("parent").Dot(exportName(fd.Name)), jen.Nil()),
		)
		return
	}
	method.Block(
		jen.Return(zeroValue(args, fd), jen.Qual("errors", "New").Call(jen.Lit(t.Name+"."+fd.Name+" resolver not implemented"))),
	)
}

// simpleDelegate reports whether the scaffold can return the parent's field
// directly. Go scaffolds always receive the generated struct as the parent,
// so any argument-free field not referencing another object delegates.
func simpleDelegate(args generator.GenerateArgs, t *model.Type, fd model.Field) bool {
	return len(fd.Arguments) == 0 && !refersToObject(args, fd.TypeName)
}

func refersToObject(args generator.GenerateArgs, name string) bool {
	ty := args.IR.Type(name)
	return ty != nil && ty.Kind == model.KindObject
}

// qualReturnType is goType with declared names qualified against the
// generated types package.
func qualReturnType(args generator.GenerateArgs, fd model.Field) jen.Code {
	base := qualBaseType(args, fd.TypeName)
	if fd.List {
		return jen.Index().Add(base)
	}
	if fd.Nullable && !nilable(args, fd.TypeName) {
		return jen.Op("*").Add(base)
	}
	return base
}

func qualBaseType(args generator.GenerateArgs, name string) jen.Code {
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
		return jen.Qual(generator.TypesPathToken, name)
	}
	return jen.Id("any")
}

func zeroValue(args generator.GenerateArgs, fd model.Field) jen.Code {
	if fd.List || fd.Nullable || nilable(args, fd.TypeName) {
		return jen.Nil()
	}
	switch fd.TypeName {
	case "ID", "String":
		return jen.Lit("")
	case "Int":
		return jen.Lit(0)
	case "Float":
		return jen.Lit(0.0)
	case "Boolean":
		return jen.False()
	}
	if args.IR.Enum(fd.TypeName) != nil {
		return jen.Qual(generator.TypesPathToken, fd.TypeName).Call(jen.Lit(""))
	}
	if args.IR.Type(fd.TypeName) != nil {
		return jen.Qual(generator.TypesPathToken, fd.TypeName).Values()
	}
	return jen.Nil()
}
