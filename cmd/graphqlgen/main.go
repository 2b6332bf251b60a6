// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command graphqlgen generates typed declarations and resolver scaffolds
// from a GraphQL schema.
//
// Usage:
//
//	graphqlgen [flags]
//
// Flags:
//
//	-c string      Path to graphqlgen.yml (default "graphqlgen.yml")
//	--force        Overwrite existing resolver scaffold files
//	--no-format    Skip the target language formatter
//	--tab-width    Indentation width for space-indented targets (default 2)
//	--use-tabs     Indent with tabs where the target supports it
//	--verbose      Verbose output
//	--version      Show version information
//
// Exit status: 0 on a clean run, 1 on any fatal error, 3 when generation
// succeeded but one or more resolver files were skipped over conflicts.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/albertocavalcante/graphqlgen/config"
	"github.com/albertocavalcante/graphqlgen/generator"
	"github.com/albertocavalcante/graphqlgen/pipeline"
	"github.com/albertocavalcante/graphqlgen/schema"
	"github.com/albertocavalcante/graphqlgen/writer"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// exitSkipped is returned when the run succeeded but skipped conflicting
// resolver files; scripts can distinguish it from both success and failure.
const exitSkipped = 3

func main() {
	code, err := run()
	if err != nil {
		pterm.Error.Printf("%v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run() (int, error) {
	configPath := flag.String("c", config.DefaultFile, "Path to graphqlgen.yml")
	force := flag.Bool("force", false, "Overwrite existing resolver scaffold files")
	noFormat := flag.Bool("no-format", false, "Skip the target language formatter")
	tabWidth := flag.Int("tab-width", 2, "Indentation width for space-indented targets")
	useTabs := flag.Bool("use-tabs", false, "Indent with tabs where the target supports it")
	verbose := flag.Bool("verbose", false, "Verbose output")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *showVersion {
		fmt.Printf("graphqlgen %s (commit: %s, built: %s)\n", version, commit, date)
		return 0, nil
	}

	registerGenerators()

	def, err := config.Load(*configPath, generator.List())
	if err != nil {
		return 0, err
	}

	doc, err := schema.Load(def.Schema)
	if err != nil {
		return 0, err
	}

	typesDir := filepath.Dir(def.Output.Types)
	modelMap, err := generator.ResolveModelMap(def.Models, typesDir)
	if err != nil {
		return 0, err
	}

	var context *generator.Binding
	if def.Context != "" {
		context, err = generator.ResolveBinding(def.Context, typesDir)
		if err != nil {
			return 0, fmt.Errorf("context: %w", err)
		}
	}

	result, err := pipeline.Generate(doc, modelMap, context, pipeline.Options{
		Language: def.Language,
		Prettify: !*noFormat,
		Format: generator.FormatOptions{
			TabWidth: *tabWidth,
			UseTabs:  *useTabs,
		},
	})
	if err != nil {
		return 0, err
	}

	if err := writer.WriteTypes(def.Output.Types, result.Types); err != nil {
		return 0, err
	}
	if *verbose {
		pterm.Info.Printf("Wrote %s\n", def.Output.Types)
	}

	report, err := writer.WriteResolvers(def.Output.Resolvers, def.Output.Types, result.Resolvers, writer.Options{Force: *force})
	if err != nil {
		return 0, err
	}

	if *verbose {
		for _, p := range report.Written {
			pterm.Info.Printf("Wrote %s\n", p)
		}
	}
	for _, p := range report.Skipped {
		pterm.Warning.Printf("Skipped existing %s\n", p)
	}

	pterm.Success.Printf("Generated %d type declaration file, %d resolver file(s)\n", 1, len(report.Written))

	if len(report.Skipped) > 0 {
		pterm.Printf("Hint: rerun with --force to overwrite skipped resolver files\n")
		return exitSkipped, nil
	}
	return 0, nil
}
