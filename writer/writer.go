// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package writer persists generation results to disk.
//
// The two outputs carry different conflict policies. The types file is fully
// regenerated every run and is overwritten unconditionally. Resolver
// scaffolds are meant to be hand-completed, so an existing file, or a
// pre-existing nested directory that suggests hand-authored layout, is
// skipped with a warning instead of clobbered; a force flag (per file or per
// run) bypasses the check.
//
// Before a scaffold is written, the reserved types-path token embedded by
// the generator is substituted with the actual relative path from the
// scaffold's directory to the types file.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/albertocavalcante/graphqlgen/generator"
)

// Options controls resolver persistence.
type Options struct {
	// Force overwrites existing scaffold files for the whole run,
	// equivalent to every file carrying its own force flag.
	Force bool
}

// Report lists the outcome of a resolvers pass. Every generated file lands
// in exactly one list; there are no retries.
type Report struct {
	// Written are the absolute paths persisted this run.
	Written []string

	// Skipped are the absolute paths left untouched due to conflicts.
	Skipped []string
}

// WriteTypes persists the combined type declarations, creating parent
// directories as needed and overwriting any existing file. Types output is
// never hand-edited, so there is no conflict policy here.
func WriteTypes(path, code string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return fmt.Errorf("write types %s: %w", path, err)
	}
	return nil
}

// WriteResolvers persists scaffold files under dir, one at a time in
// generator order. typesPath is the location of the written types file; it
// anchors the per-file token substitution. A write failure aborts
// immediately with the failing path; conflicts never abort.
func WriteResolvers(dir, typesPath string, files []generator.CodeFile, opts Options) (*Report, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve resolvers directory %s: %w", dir, err)
	}
	absTypes, err := filepath.Abs(typesPath)
	if err != nil {
		return nil, fmt.Errorf("resolve types path %s: %w", typesPath, err)
	}

	report := &Report{}
	for _, file := range files {
		target := filepath.Join(root, file.Path)
		force := file.Force || opts.Force

		if !force && conflicts(root, target) {
			report.Skipped = append(report.Skipped, target)
			continue
		}

		code, err := substituteTypesPath(file.Code, target, absTypes)
		if err != nil {
			return report, err
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return report, fmt.Errorf("create directory for %s: %w", target, err)
		}
		if err := os.WriteFile(target, []byte(code), 0o644); err != nil {
			return report, fmt.Errorf("write resolver %s: %w", target, err)
		}
		report.Written = append(report.Written, target)
	}
	return report, nil
}

// conflicts reports whether writing target would touch something that looks
// pre-existing: the file itself, or a nested parent directory that already
// existed (and is not the resolvers root, which the writer owns).
func conflicts(root, target string) bool {
	if _, err := os.Stat(target); err == nil {
		return true
	}
	parent := filepath.Dir(target)
	if parent == root {
		return false
	}
	_, err := os.Stat(parent)
	return err == nil
}

// substituteTypesPath replaces the reserved token with the relative path
// from the scaffold's directory to the types file, import-statement shaped.
func substituteTypesPath(code, target, absTypes string) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(target), absTypes)
	if err != nil {
		return "", fmt.Errorf("relativize types path for %s: %w", target, err)
	}
	return strings.ReplaceAll(code, generator.TypesPathToken, generator.ImportPath(rel)), nil
}
