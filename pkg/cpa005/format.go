// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"fmt"
	"strings"
)

// padZero left pads s with zeros to width. Values already at or over
// the width are returned unchanged.
func padZero(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// padRight space pads s on the right to width.
func padRight(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// formatCents renders an amount of cents as zero padded dollars and
// cents with no separator, e.g. formatCents(123456, 8) == "0000123456".
func formatCents(cents uint64, dollarWidth int) string {
	return fmt.Sprintf("%0*d%02d", dollarWidth, cents/100, cents%100)
}

// isDigits reports whether s is entirely ASCII digits. The empty
// string counts as digits so length rules stay independent.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
