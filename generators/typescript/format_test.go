// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typescript

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/graphqlgen/generator"
)

func TestFormatSource_Reindents(t *testing.T) {
	in := "export interface User {\nid: string;\n    name: string | null;\n}\n"
	want := "export interface User {\n  id: string;\n  name: string | null;\n}\n"

	got, err := formatSource(in, generator.FormatOptions{})
	if err != nil {
		t.Fatalf("formatSource: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatSource_TabWidth(t *testing.T) {
	in := "a {\nb;\n}\n"

	got, err := formatSource(in, generator.FormatOptions{TabWidth: 4})
	if err != nil {
		t.Fatalf("formatSource: %v", err)
	}
	if want := "a {\n    b;\n}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, err = formatSource(in, generator.FormatOptions{UseTabs: true})
	if err != nil {
		t.Fatalf("formatSource: %v", err)
	}
	if want := "a {\n\tb;\n}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatSource_CollapsesBlankRuns(t *testing.T) {
	in := "a;\n\n\n\nb;\n"
	want := "a;\n\nb;\n"

	got, err := formatSource(in, generator.FormatOptions{})
	if err != nil {
		t.Fatalf("formatSource: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatSource_IgnoresBracesInStrings(t *testing.T) {
	in := "const s = \"{ not a block\";\nconst t = 1;\n"

	got, err := formatSource(in, generator.FormatOptions{})
	if err != nil {
		t.Fatalf("formatSource: %v", err)
	}
	if got != in {
		t.Errorf("braces inside string literals must not change depth:\ngot  %q\nwant %q", got, in)
	}
}

func TestFormatSource_IdempotentOnGeneratedOutput(t *testing.T) {
	a := args(t, `type User { id: ID! name: String friends: [User!]! }`, map[string]string{
		"User": "./models.ts:UserModel",
	})
	g := NewGenerator()

	src, err := g.GenerateTypes(a)
	if err != nil {
		t.Fatalf("GenerateTypes: %v", err)
	}

	once, err := g.FormatTypes(src, generator.FormatOptions{})
	if err != nil {
		t.Fatalf("FormatTypes: %v", err)
	}
	twice, err := g.FormatTypes(once, generator.FormatOptions{})
	if err != nil {
		t.Fatalf("FormatTypes: %v", err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("formatting is not idempotent (-once +twice):\n%s", diff)
	}
}
