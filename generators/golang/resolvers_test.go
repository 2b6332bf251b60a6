// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"strings"
	"testing"

	"github.com/albertocavalcante/graphqlgen/generator"
)

func TestGenerateResolvers_OneFilePerObjectType(t *testing.T) {
	files, err := NewGenerator().GenerateResolvers(args(t, `
interface Node { id: ID! }
type UserProfile implements Node { id: ID! }
type Post { id: ID! }
input NewPost { title: String! }
`))
	if err != nil {
		t.Fatalf("GenerateResolvers: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].Path != "user_profile.go" || files[1].Path != "post.go" {
		t.Errorf("paths: got %q, %q", files[0].Path, files[1].Path)
	}
}

func TestGenerateResolvers_Scaffold(t *testing.T) {
	files, err := NewGenerator().GenerateResolvers(args(t, `
type User {
  id: ID!
  name: String
  posts(limit: Int): [Post!]!
}
type Post { id: ID! }
`))
	if err != nil {
		t.Fatalf("GenerateResolvers: %v", err)
	}

	var user string
	for _, f := range files {
		if f.Path == "user.go" {
			user = f.Code
		}
	}
	if user == "" {
		t.Fatal("missing user.go scaffold")
	}

	for _, want := range []string{
		"package resolvers",
		`graphql "__TYPES_PATH__"`,
		"type UserResolver struct",
		"func (r *UserResolver) ID(ctx context.Context, parent *graphql.User) (string, error)",
		"return parent.ID, nil",
		"func (r *UserResolver) Name(ctx context.Context, parent *graphql.User) (*string, error)",
		"func (r *UserResolver) Posts(ctx context.Context, parent *graphql.User, limit *int) ([]graphql.Post, error)",
		`errors.New("User.posts resolver not implemented")`,
	} {
		if !strings.Contains(user, want) {
			t.Errorf("scaffold missing %q\n%s", want, user)
		}
	}
}

func TestGenerateResolvers_ZeroValues(t *testing.T) {
	// Arguments keep the fields from delegating to the parent, so every
	// body takes the not-implemented branch.
	files, err := NewGenerator().GenerateResolvers(args(t, `
type Query {
  count(seed: Int): Int!
  ratio(seed: Int): Float!
  ok(seed: Int): Boolean!
  role(seed: Int): Role!
  user(seed: Int): User!
}
type User { id: ID! }
enum Role { ADMIN }
`))
	if err != nil {
		t.Fatalf("GenerateResolvers: %v", err)
	}

	var query string
	for _, f := range files {
		if f.Path == "query.go" {
			query = f.Code
		}
	}

	for _, want := range []string{
		"return 0, errors.New",
		"return 0.0, errors.New",
		"return false, errors.New",
		`return graphql.Role(""), errors.New`,
		"return graphql.User{}, errors.New",
	} {
		if !strings.Contains(query, want) {
			t.Errorf("scaffold missing %q\n%s", want, query)
		}
	}
}

func TestGenerateResolvers_FormatsCleanly(t *testing.T) {
	g := NewGenerator()
	files, err := g.GenerateResolvers(args(t, `type User { id: ID! name: String }`))
	if err != nil {
		t.Fatalf("GenerateResolvers: %v", err)
	}

	for _, f := range files {
		formatted, err := g.FormatResolver(f.Code, generator.FormatOptions{})
		if err != nil {
			t.Fatalf("FormatResolver(%s): %v", f.Path, err)
		}
		if formatted == "" {
			t.Fatalf("%s: formatted output is empty", f.Path)
		}
	}
}
