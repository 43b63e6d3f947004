// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a human formatted dollar amount such as
// "$1,234.56" into cents. Dollar signs, commas and spaces are
// formatting and silently discarded; digits and the decimal point are
// kept; any other character fails the parse and names the offending
// character. Sub-cent precision rounds half away from zero.
func ParseAmount(amount string) (uint64, error) {
	var sanitized strings.Builder
	for _, r := range amount {
		switch {
		case r >= '0' && r <= '9', r == '.':
			sanitized.WriteRune(r)
		case r == ',', r == ' ', r == '$':
			// formatting only
		default:
			return 0, fmt.Errorf("amount %q contains unexpected character %q", amount, r)
		}
	}

	d, err := decimal.NewFromString(sanitized.String())
	if err != nil {
		return 0, fmt.Errorf("amount %q is not a valid dollar value", amount)
	}
	return uint64(d.Shift(2).Round(0).IntPart()), nil
}
