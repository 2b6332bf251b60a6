// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typescript

import (
	"strings"
	"testing"
)

func TestGenerateResolvers_OneFilePerObjectType(t *testing.T) {
	a := args(t, `
interface Node { id: ID! }
type User implements Node { id: ID! }
type Post { id: ID! }
input NewPost { title: String! }
union Item = User | Post
`, nil)

	files, err := NewGenerator().GenerateResolvers(a)
	if err != nil {
		t.Fatalf("GenerateResolvers: %v", err)
	}

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	want := []string{"User.ts", "Post.ts"}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("got %v, want %v", paths, want)
		}
	}
}

func TestGenerateResolvers_ModelBackedDelegation(t *testing.T) {
	a := args(t, `type User { id: ID! name: String }`, map[string]string{
		"User": "./models.ts:UserModel",
	})

	files, err := NewGenerator().GenerateResolvers(a)
	if err != nil {
		t.Fatalf("GenerateResolvers: %v", err)
	}
	code := files[0].Code

	if !strings.Contains(code, `import { UserResolvers } from "__TYPES_PATH__";`) {
		t.Errorf("scaffold should import its contract through the types-path token:\n%s", code)
	}
	if !strings.Contains(code, "  id: (parent, args, ctx) => parent.id,") {
		t.Errorf("model-backed field should delegate to parent:\n%s", code)
	}
	if !strings.Contains(code, "export const User: UserResolvers = {") {
		t.Errorf("missing resolver export:\n%s", code)
	}
}

func TestGenerateResolvers_UnbackedFieldsThrow(t *testing.T) {
	a := args(t, `type Query { version: String! }`, nil)

	files, err := NewGenerator().GenerateResolvers(a)
	if err != nil {
		t.Fatalf("GenerateResolvers: %v", err)
	}
	code := files[0].Code

	if !strings.Contains(code, `throw new Error("Query.version resolver not implemented");`) {
		t.Errorf("unbacked field should throw:\n%s", code)
	}
}

func TestGenerateResolvers_NoForceByDefault(t *testing.T) {
	a := args(t, `type User { id: ID! }`, nil)

	files, err := NewGenerator().GenerateResolvers(a)
	if err != nil {
		t.Fatalf("GenerateResolvers: %v", err)
	}
	for _, f := range files {
		if f.Force {
			t.Errorf("%s: generated scaffolds must not set force themselves", f.Path)
		}
	}
}
