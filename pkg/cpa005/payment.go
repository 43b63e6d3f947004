// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"fmt"
	"strings"
)

// Payment is one detail record of a file: a Credit or Debit prefix
// followed by its segments in insertion order. The record number is
// assigned exactly once, by File.Append, and doubles as the record's
// own file creation number per the legacy layout.
type Payment struct {
	recordType         RecordType
	recordNumber       int
	clientNumber       string
	fileCreationNumber int
	segments           []*Segment

	log ErrorLog
}

// NewPayment builds a detail record of the given type. Header and
// Trailer are reserved for the File's own records; passing either is
// a contract violation recorded on the payment's log rather than a
// crash at serialization time.
func NewPayment(rt RecordType) *Payment {
	p := &Payment{recordType: rt}
	if err := rt.validatePayment(); err != nil {
		p.log.Add(err)
	}
	return p
}

// Log exposes the payment's accumulated validation problems,
// including those merged from its segments.
func (p *Payment) Log() *ErrorLog {
	return &p.log
}

// RecordNumber returns the sequence number assigned by File.Append,
// or zero before the payment has been appended.
func (p *Payment) RecordNumber() int {
	return p.recordNumber
}

// SetClientNumber validates with the same ten digit rule segments use.
func (p *Payment) SetClientNumber(number string) *Payment {
	if err := validateClientNumber(number); err != nil {
		p.log.Add(err)
		return p
	}
	p.clientNumber = number
	return p
}

// SetFileCreationNumber rejects values over four decimal digits.
func (p *Payment) SetFileCreationNumber(no int) *Payment {
	if no < 0 || no > 9999 {
		p.log.Write("file creation number exceeds 4 digits")
		return p
	}
	p.fileCreationNumber = no
	return p
}

// AddSegment appends one segment and merges its log upward so the
// payment carries every problem found beneath it.
func (p *Payment) AddSegment(s *Segment) *Payment {
	p.log.Merge(&s.log)
	p.segments = append(p.segments, s)
	return p
}

// Format renders the 24 character detail prefix followed by every
// segment. An invalid record type renders as an empty string; the
// violation was already recorded when the payment was built, so the
// conversion fails before this output is ever used.
func (p *Payment) Format() string {
	if p.recordType.validatePayment() != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(string(p.recordType))
	fmt.Fprintf(&b, "%09d", p.recordNumber)
	b.WriteString(padRight(p.clientNumber, 10))
	fmt.Fprintf(&b, "%-4d", p.fileCreationNumber)
	for i := range p.segments {
		b.WriteString(p.segments[i].Format())
	}
	return b.String()
}
