// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typescript

import (
	"strings"

	"github.com/albertocavalcante/graphqlgen/generator"
)

// formatSource is a deliberately small pretty-printer: it re-indents by
// brace/bracket/paren depth, collapses runs of blank lines, trims trailing
// whitespace and guarantees a single trailing newline. It never changes
// token content, so formatting a well-formed file is idempotent.
func formatSource(src string, opts generator.FormatOptions) (string, error) {
	indent := indentUnit(opts)

	var out strings.Builder
	depth := 0
	blank := false

	for line := range strings.Lines(src) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if !blank && out.Len() > 0 {
				out.WriteString("\n")
			}
			blank = true
			continue
		}
		blank = false

		opens, closes := delta(trimmed)
		// Closing tokens at the start of the line dedent the line itself.
		lineDepth := depth
		if leadingClose(trimmed) {
			lineDepth--
		}
		if lineDepth < 0 {
			lineDepth = 0
		}

		out.WriteString(strings.Repeat(indent, lineDepth))
		out.WriteString(trimmed)
		out.WriteString("\n")

		depth += opens - closes
		if depth < 0 {
			depth = 0
		}
	}

	return strings.TrimRight(out.String(), "\n") + "\n", nil
}

func indentUnit(opts generator.FormatOptions) string {
	if opts.UseTabs {
		return "\t"
	}
	width := opts.TabWidth
	if width <= 0 {
		width = 2
	}
	return strings.Repeat(" ", width)
}

// delta counts bracket opens and closes outside string literals.
func delta(line string) (opens, closes int) {
	var quote byte
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '{', '[', '(':
			opens++
		case '}', ']', ')':
			closes++
		}
	}
	return opens, closes
}

func leadingClose(line string) bool {
	switch line[0] {
	case '}', ']', ')':
		return true
	}
	return false
}
