// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/albertocavalcante/graphqlgen/generator"
	"github.com/albertocavalcante/graphqlgen/generators/golang"
	"github.com/albertocavalcante/graphqlgen/generators/typescript"
)

// registerGenerators wires the built-in targets into the registry. Adding a
// language to the CLI is one line here plus its generators package.
func registerGenerators() {
	generator.Register(typescript.NewGenerator())
	generator.Register(golang.NewGenerator())
}
