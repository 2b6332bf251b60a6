// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package schema loads GraphQL SDL documents from disk and parses them.
//
// Loading resolves graphql-import style comment lines of the form
//
//	# import * from "./other.graphql"
//	# import "./other.graphql"
//
// into a single merged document before parsing. Imports are resolved
// relative to the importing file, followed recursively, and each file is
// included at most once.
package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

var importLine = regexp.MustCompile(`^#\s*import\s+(?:\*\s+from\s+)?"(.+)"\s*$`)

// Read loads the schema file at path and returns the merged SDL text with
// all imports expanded.
func Read(path string) (string, error) {
	var b strings.Builder
	seen := make(map[string]bool)
	if err := read(path, seen, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func read(path string, seen map[string]bool, out *strings.Builder) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve schema path %s: %w", path, err)
	}
	if seen[abs] {
		return nil
	}
	seen[abs] = true

	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("read schema %s: %w", path, err)
	}

	for line := range strings.Lines(string(data)) {
		m := importLine.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
		if m == nil {
			out.WriteString(line)
			continue
		}
		target := m[1]
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(abs), target)
		}
		if err := read(target, seen, out); err != nil {
			return err
		}
		out.WriteString("\n")
	}
	out.WriteString("\n")
	return nil
}

// Parse parses SDL text into a schema document. The name is used in error
// positions only, typically the source file path.
func Parse(name, input string) (*ast.SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: input})
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}
	return doc, nil
}

// Load reads the schema file at path, expands imports, and parses the
// result.
func Load(path string) (*ast.SchemaDocument, error) {
	sdl, err := Read(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, sdl)
}
