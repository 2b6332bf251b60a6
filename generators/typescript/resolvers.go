// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typescript

import (
	"bytes"
	"fmt"

	"github.com/albertocavalcante/graphqlgen/generator"
	"github.com/albertocavalcante/graphqlgen/model"
)

// generateResolvers produces one scaffold per object type. Each scaffold
// imports its resolver contract from the generated types file through the
// deferred-path token; the writer substitutes the real relative path.
func generateResolvers(args generator.GenerateArgs) ([]generator.CodeFile, error) {
	var files []generator.CodeFile
	for _, t := range args.IR.Types {
		if t.Kind != model.KindObject {
			continue
		}
		files = append(files, generator.CodeFile{
			Path: t.Name + ".ts",
			Code: resolverScaffold(args, t),
		})
	}
	return files, nil
}

func resolverScaffold(args generator.GenerateArgs, t *model.Type) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "import { %sResolvers } from \"%s\";\n\n", t.Name, generator.TypesPathToken)

	_, backed := args.ModelMap[t.Name]

	fmt.Fprintf(&buf, "export const %s: %sResolvers = {\n", t.Name, t.Name)
	for _, f := range t.Fields {
		if backed && len(f.Arguments) == 0 {
			// Model-backed field: delegate to the parent model.
			fmt.Fprintf(&buf, "  %s: (parent, args, ctx) => parent.%s,\n", f.Name, f.Name)
			continue
		}
		fmt.Fprintf(&buf, "  %s: (parent, args, ctx) => {\n", f.Name)
		fmt.Fprintf(&buf, "    throw new Error(\"%s.%s resolver not implemented\");\n", t.Name, f.Name)
		buf.WriteString("  },\n")
	}
	buf.WriteString("};\n")
	return buf.String()
}
