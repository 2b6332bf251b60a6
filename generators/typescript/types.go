// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typescript

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/graphqlgen/generator"
	"github.com/albertocavalcante/graphqlgen/model"
)

const header = "/* Generated by graphqlgen. DO NOT EDIT. */\n\n"

// scalars maps GraphQL built-in scalars to TypeScript types. Custom scalars
// fall back to any.
var scalars = map[string]string{
	"ID":      "string",
	"String":  "string",
	"Int":     "number",
	"Float":   "number",
	"Boolean": "boolean",
}

func generateTypes(args generator.GenerateArgs) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	writeImports(&buf, args)

	for _, t := range args.IR.Types {
		writeInterface(&buf, args, t)
	}
	for _, e := range args.IR.Enums {
		writeEnum(&buf, e)
	}
	for _, u := range args.IR.Unions {
		writeUnion(&buf, u)
	}
	for _, t := range args.IR.Types {
		if t.Kind == model.KindObject {
			writeResolverInterface(&buf, args, t)
		}
	}

	return buf.String(), nil
}

// writeImports emits one import statement per bound model file, grouped by
// import path and sorted for deterministic output.
func writeImports(buf *bytes.Buffer, args generator.GenerateArgs) {
	groups := make(map[string][]string)
	for _, b := range args.ModelMap {
		if !slices.Contains(groups[b.ImportPath], b.TypeName) {
			groups[b.ImportPath] = append(groups[b.ImportPath], b.TypeName)
		}
	}
	if ctx := args.Context; ctx != nil {
		if !slices.Contains(groups[ctx.ImportPath], ctx.TypeName) {
			groups[ctx.ImportPath] = append(groups[ctx.ImportPath], ctx.TypeName)
		}
	}

	paths := make([]string, 0, len(groups))
	for p := range groups {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	for _, p := range paths {
		names := groups[p]
		slices.Sort(names)
		fmt.Fprintf(buf, "import { %s } from \"%s\";\n", strings.Join(names, ", "), p)
	}
	if len(paths) > 0 {
		buf.WriteString("\n")
	}
}

func writeInterface(buf *bytes.Buffer, args generator.GenerateArgs, t *model.Type) {
	fmt.Fprintf(buf, "export interface %s {\n", t.Name)
	for _, f := range t.Fields {
		fmt.Fprintf(buf, "  %s: %s;\n", f.Name, fieldType(args, f))
	}
	buf.WriteString("}\n\n")
}

func writeEnum(buf *bytes.Buffer, e *model.Enum) {
	if len(e.Values) == 0 {
		fmt.Fprintf(buf, "export type %s = never;\n\n", e.Name)
		return
	}
	literals := make([]string, len(e.Values))
	for i, v := range e.Values {
		literals[i] = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(buf, "export type %s = %s;\n\n", e.Name, strings.Join(literals, " | "))
}

func writeUnion(buf *bytes.Buffer, u *model.Union) {
	members := "never"
	if len(u.Members) > 0 {
		members = strings.Join(u.Members, " | ")
	}
	fmt.Fprintf(buf, "export type %s = %s;\n\n", u.Name, members)
}

// writeResolverInterface emits the typed resolver contract for one object
// type. Scaffold files implement it, importing it from the generated types
// file.
func writeResolverInterface(buf *bytes.Buffer, args generator.GenerateArgs, t *model.Type) {
	fmt.Fprintf(buf, "export interface %sResolvers {\n", t.Name)
	for _, f := range t.Fields {
		fmt.Fprintf(buf, "  %s: (parent: %s, args: %s, ctx: %s) => %s;\n",
			f.Name, parentType(args, t), argsType(args, f), contextType(args), resolverReturnType(args, f))
	}
	buf.WriteString("}\n\n")
}

// parentType is the model type backing t when bound, otherwise the generated
// interface itself.
func parentType(args generator.GenerateArgs, t *model.Type) string {
	if b, ok := args.ModelMap[t.Name]; ok {
		return b.TypeName
	}
	return t.Name
}

func contextType(args generator.GenerateArgs) string {
	if args.Context != nil {
		return args.Context.TypeName
	}
	return "any"
}

func argsType(args generator.GenerateArgs, f model.Field) string {
	if len(f.Arguments) == 0 {
		return "{}"
	}
	parts := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		parts[i] = fmt.Sprintf("%s: %s", a.Name, wrap(baseType(args, a.TypeName), a.List, a.Nullable))
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func fieldType(args generator.GenerateArgs, f model.Field) string {
	return wrap(baseType(args, f.TypeName), f.List, f.Nullable)
}

// resolverReturnType differs from fieldType in one way: a resolver for a
// field referencing a bound type returns the backing model, not the
// generated interface.
func resolverReturnType(args generator.GenerateArgs, f model.Field) string {
	base := baseType(args, f.TypeName)
	if b, ok := args.ModelMap[f.TypeName]; ok {
		base = b.TypeName
	}
	return wrap(base, f.List, f.Nullable)
}

// baseType maps a referenced type name to its TypeScript form, ignoring
// list/nullable modifiers.
func baseType(args generator.GenerateArgs, name string) string {
	if ts, ok := scalars[name]; ok {
		return ts
	}
	if args.IR.HasDeclaration(name) {
		return name
	}
	// Custom scalar or undeclared reference.
	return "any"
}

func wrap(base string, list, nullable bool) string {
	t := base
	if list {
		t += "[]"
	}
	if nullable {
		t += " | null"
	}
	return t
}
