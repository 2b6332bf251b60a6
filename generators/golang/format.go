// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// formatSource runs goimports over generated Go source. The filename only
// labels error positions. Go source is gofmt-shaped either way (jennifer
// renders formatted code); goimports additionally prunes and sorts imports.
func formatSource(filename, src string) (string, error) {
	out, err := imports.Process(filename, []byte(src), nil)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", filename, err)
	}
	return string(out), nil
}
