// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// initialisms are name fragments rendered in all caps, matching Go
// convention. Ordered longest first so "uuid" wins over "id".
var initialisms = []struct{ lower, upper string }{
	{"uuid", "UUID"},
	{"html", "HTML"},
	{"json", "JSON"},
	{"url", "URL"},
	{"uri", "URI"},
	{"api", "API"},
	{"id", "ID"},
}

// exportName converts a schema field name to an exported Go identifier.
func exportName(name string) string {
	lower := strings.ToLower(name)
	for _, in := range initialisms {
		if lower == in.lower {
			return in.upper
		}
	}
	out := inflect.Camelize(name)
	// Camelize leaves camelCase input's interior intact but lowercases
	// nothing else; fix a trailing initialism like "userId".
	for _, in := range initialisms {
		if strings.HasSuffix(strings.ToLower(out), in.lower) && len(out) > len(in.lower) {
			out = out[:len(out)-len(in.lower)] + in.upper
			break
		}
	}
	return out
}

// enumValueName converts an enum value like "NOT_FOUND" to "NotFound".
func enumValueName(value string) string {
	return inflect.Camelize(strings.ToLower(value))
}

// paramName converts an argument name to an unexported identifier, avoiding
// collisions with the fixed ctx/parent parameters and Go keywords.
func paramName(name string) string {
	n := inflect.CamelizeDownFirst(name)
	switch n {
	case "ctx", "parent", "type", "func", "map", "range", "var":
		return n + "Arg"
	}
	return n
}

// fileName derives the scaffold file name for a type, e.g. "user_profile.go"
// for UserProfile.
func fileName(typeName string) string {
	return inflect.Underscore(typeName) + ".go"
}
