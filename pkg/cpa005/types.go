// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"fmt"
	"strings"
)

// RecordType identifies the role of a physical line within a CPA-005
// file and is written as the first character of every record.
type RecordType string

const (
	Header  RecordType = "A"
	Credit  RecordType = "C"
	Debit   RecordType = "D"
	Trailer RecordType = "Z"
)

// validatePayment confirms t is a type a payment detail record may
// carry. Header and Trailer records are owned by the File itself.
func (t RecordType) validatePayment() error {
	switch t {
	case Credit, Debit:
		return nil
	default:
		return fmt.Errorf("payment record type must be Credit or Debit, got %q", string(t))
	}
}

// Currency is the ISO 4217 destination currency of a file. Only CAD
// and USD files are accepted for CPA-005 processing.
type Currency string

const (
	CAD Currency = "CAD"
	USD Currency = "USD"
)

// ParseCurrency matches a case-insensitive currency code against the
// accepted set.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(strings.ToUpper(code)) {
	case CAD:
		return CAD, nil
	case USD:
		return USD, nil
	default:
		return CAD, fmt.Errorf("invalid Currency Code: %s specified in CSV header", code)
	}
}

// ProcessingCentre is the data centre a file is submitted to.
type ProcessingCentre string

const (
	Halifax   ProcessingCentre = "Halifax"
	Montreal  ProcessingCentre = "Montreal"
	Toronto   ProcessingCentre = "Toronto"
	Regina    ProcessingCentre = "Regina"
	Winnipeg  ProcessingCentre = "Winnipeg"
	Calgary   ProcessingCentre = "Calgary"
	Vancouver ProcessingCentre = "Vancouver"
)

var processingCentreCodes = map[ProcessingCentre]string{
	Halifax:   "00330",
	Montreal:  "00310",
	Toronto:   "00320",
	Regina:    "00278",
	Winnipeg:  "00370",
	Calgary:   "00390",
	Vancouver: "00300",
}

// Code returns the five digit data centre code written into the file
// header record.
func (pc ProcessingCentre) Code() string {
	return processingCentreCodes[pc]
}

// LookupProcessingCentre matches a data centre code against the known
// set. Codes shorter than five digits are zero padded first, so "330"
// and "00330" both resolve to Halifax.
func LookupProcessingCentre(code string) (ProcessingCentre, error) {
	padded := padZero(code, 5)
	for pc, c := range processingCentreCodes {
		if c == padded {
			return pc, nil
		}
	}
	return Vancouver, fmt.Errorf("invalid Processing Centre: %s specified in CSV header", padded)
}

// Date is a calendar year paired with the 1-based ordinal day within
// that year, which is how CPA-005 date fields are encoded.
type Date struct {
	Year int
	Day  int
}

// Format renders the six character 0YYDDD layout used by the file
// header and payment detail records.
func (d Date) Format() string {
	return fmt.Sprintf("0%02d%03d", d.Year%100, d.Day)
}
