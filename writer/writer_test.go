// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/albertocavalcante/graphqlgen/generator"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestWriteTypes_CreatesDirectoriesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "generated", "graphqlgen.ts")

	if err := WriteTypes(path, "first\n"); err != nil {
		t.Fatalf("WriteTypes: %v", err)
	}
	if got := readFile(t, path); got != "first\n" {
		t.Errorf("got %q", got)
	}

	// Types output is always fully regenerated: second write wins.
	if err := WriteTypes(path, "second\n"); err != nil {
		t.Fatalf("WriteTypes: %v", err)
	}
	if got := readFile(t, path); got != "second\n" {
		t.Errorf("overwrite failed, got %q", got)
	}
}

func TestWriteResolvers_WritesAndSubstitutes(t *testing.T) {
	dir := t.TempDir()
	typesPath := filepath.Join(dir, "generated", "graphqlgen.ts")
	resolversDir := filepath.Join(dir, "src", "resolvers")

	files := []generator.CodeFile{
		{Path: "User.ts", Code: "import { UserResolvers } from \"" + generator.TypesPathToken + "\";\n"},
	}

	report, err := WriteResolvers(resolversDir, typesPath, files, Options{})
	if err != nil {
		t.Fatalf("WriteResolvers: %v", err)
	}
	if len(report.Written) != 1 || len(report.Skipped) != 0 {
		t.Fatalf("report: %+v", report)
	}

	got := readFile(t, filepath.Join(resolversDir, "User.ts"))
	if strings.Contains(got, generator.TypesPathToken) {
		t.Errorf("token must never survive into a written file:\n%s", got)
	}
	if !strings.Contains(got, `"../../generated/graphqlgen"`) {
		t.Errorf("token should become the relative types path:\n%s", got)
	}
}

func TestWriteResolvers_SkipsExistingFile(t *testing.T) {
	dir := t.TempDir()
	typesPath := filepath.Join(dir, "types.ts")
	resolversDir := filepath.Join(dir, "resolvers")

	target := filepath.Join(resolversDir, "User.ts")
	if err := os.MkdirAll(resolversDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("hand edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := WriteResolvers(resolversDir, typesPath, []generator.CodeFile{
		{Path: "User.ts", Code: "generated\n"},
	}, Options{})
	if err != nil {
		t.Fatalf("WriteResolvers: %v", err)
	}

	if len(report.Skipped) != 1 {
		t.Fatalf("expected one skip, got %+v", report)
	}
	if got := readFile(t, target); got != "hand edited\n" {
		t.Errorf("existing file must stay byte-identical, got %q", got)
	}
}

func TestWriteResolvers_SkipsPreexistingNestedDirectory(t *testing.T) {
	dir := t.TempDir()
	typesPath := filepath.Join(dir, "types.ts")
	resolversDir := filepath.Join(dir, "resolvers")

	// auth/ exists before the run and is not the resolvers root itself:
	// treat it as hand-authored layout and leave it alone.
	if err := os.MkdirAll(filepath.Join(resolversDir, "auth"), 0o755); err != nil {
		t.Fatal(err)
	}

	report, err := WriteResolvers(resolversDir, typesPath, []generator.CodeFile{
		{Path: filepath.Join("auth", "User.ts"), Code: "generated\n"},
	}, Options{})
	if err != nil {
		t.Fatalf("WriteResolvers: %v", err)
	}

	if len(report.Skipped) != 1 || len(report.Written) != 0 {
		t.Fatalf("report: %+v", report)
	}
}

func TestWriteResolvers_CreatesFreshNestedDirectory(t *testing.T) {
	dir := t.TempDir()
	typesPath := filepath.Join(dir, "types.ts")
	resolversDir := filepath.Join(dir, "resolvers")

	report, err := WriteResolvers(resolversDir, typesPath, []generator.CodeFile{
		{Path: filepath.Join("auth", "User.ts"), Code: "generated\n"},
	}, Options{})
	if err != nil {
		t.Fatalf("WriteResolvers: %v", err)
	}

	if len(report.Written) != 1 {
		t.Fatalf("report: %+v", report)
	}
	if got := readFile(t, filepath.Join(resolversDir, "auth", "User.ts")); got != "generated\n" {
		t.Errorf("got %q", got)
	}
}

func TestWriteResolvers_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	typesPath := filepath.Join(dir, "types.ts")
	resolversDir := filepath.Join(dir, "resolvers")

	target := filepath.Join(resolversDir, "User.ts")
	if err := os.MkdirAll(resolversDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("hand edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("per-file force flag", func(t *testing.T) {
		report, err := WriteResolvers(resolversDir, typesPath, []generator.CodeFile{
			{Path: "User.ts", Code: "regenerated\n", Force: true},
		}, Options{})
		if err != nil {
			t.Fatalf("WriteResolvers: %v", err)
		}
		if len(report.Written) != 1 {
			t.Fatalf("report: %+v", report)
		}
		if got := readFile(t, target); got != "regenerated\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("run-wide force option", func(t *testing.T) {
		report, err := WriteResolvers(resolversDir, typesPath, []generator.CodeFile{
			{Path: "User.ts", Code: "forced\n"},
		}, Options{Force: true})
		if err != nil {
			t.Fatalf("WriteResolvers: %v", err)
		}
		if len(report.Written) != 1 {
			t.Fatalf("report: %+v", report)
		}
		if got := readFile(t, target); got != "forced\n" {
			t.Errorf("got %q", got)
		}
	})
}

func TestWriteResolvers_SequentialOrder(t *testing.T) {
	dir := t.TempDir()
	typesPath := filepath.Join(dir, "types.ts")
	resolversDir := filepath.Join(dir, "resolvers")

	report, err := WriteResolvers(resolversDir, typesPath, []generator.CodeFile{
		{Path: "B.ts", Code: "b\n"},
		{Path: "A.ts", Code: "a\n"},
	}, Options{})
	if err != nil {
		t.Fatalf("WriteResolvers: %v", err)
	}

	// Files are written one at a time in generator order, not sorted.
	want := []string{
		filepath.Join(resolversDir, "B.ts"),
		filepath.Join(resolversDir, "A.ts"),
	}
	if len(report.Written) != 2 || report.Written[0] != want[0] || report.Written[1] != want[1] {
		t.Errorf("written order: got %v, want %v", report.Written, want)
	}
}
