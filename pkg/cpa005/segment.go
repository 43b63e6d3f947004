// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"errors"
	"strconv"
	"strings"
)

// errClientNumber is the shared ten digit client number violation.
var errClientNumber = errors.New("client number must be exactly 10 numeric digits long")

// segmentLength is the fixed width of one encoded payment segment,
// fields 5 through 22 of the CPA-005 logical record.
const segmentLength = 240

// Segment is the per-transaction field block within a payment detail
// record. Setters validate independently and append problems to the
// segment's log without aborting the other fields, so a bad branch
// number still leaves the account number validated and set.
type Segment struct {
	transactionCode   string
	amount            uint64
	paymentDate       Date
	institutionNumber string
	branchNumber      string
	accountNumber     string
	clientShortName   string
	customerName      string
	clientName        string
	clientNumber      string
	customerNumber    string
	sundryInformation string

	log ErrorLog
}

func NewSegment() *Segment {
	return &Segment{}
}

// Log exposes the segment's accumulated validation problems.
func (s *Segment) Log() *ErrorLog {
	return &s.log
}

// Amount returns the segment's value in cents.
func (s *Segment) Amount() uint64 {
	return s.amount
}

// SetTransactionCode requires exactly three characters.
func (s *Segment) SetTransactionCode(code string) *Segment {
	if len(code) != 3 {
		s.log.Write("transaction code must be 3 digits")
		return s
	}
	s.transactionCode = code
	return s
}

// SetAmount stores the transaction value in cents.
func (s *Segment) SetAmount(cents uint64) *Segment {
	s.amount = cents
	return s
}

// SetPaymentDate stores the payment date with its year reduced to two
// digits. A zero day means the date never parsed upstream.
func (s *Segment) SetPaymentDate(d Date) *Segment {
	if d.Day == 0 {
		s.log.Write("payment date day number is 0")
		return s
	}
	s.paymentDate = Date{Year: d.Year % 100, Day: d.Day}
	return s
}

// SetInstitutionNumber zero pads the financial institution number to
// four characters.
func (s *Segment) SetInstitutionNumber(number string) *Segment {
	s.institutionNumber = padZero(number, 4)
	return s
}

// SetBranchNumber requires a non-negative integer and zero pads it to
// five characters.
func (s *Segment) SetBranchNumber(number string) *Segment {
	if _, err := strconv.ParseUint(number, 10, 64); err != nil {
		s.log.Write("branch number must be 5 digits")
		return s
	}
	s.branchNumber = padZero(number, 5)
	return s
}

func (s *Segment) SetAccountNumber(number string) *Segment {
	if !isDigits(number) {
		s.log.Write("account number must only include digits")
		return s
	}
	if len(number) > 12 {
		s.log.Write("account number cannot exceed 12 digits")
		return s
	}
	s.accountNumber = number
	return s
}

// SetClientShortName requires at most 15 characters. Callers truncate
// the full client name before calling.
func (s *Segment) SetClientShortName(name string) *Segment {
	if len(name) > 15 {
		s.log.Write("client short name must not exceed 15 characters")
		return s
	}
	s.clientShortName = name
	return s
}

func (s *Segment) SetCustomerName(name string) *Segment {
	if len(name) > 30 {
		s.log.Write("customer name must not exceed 30 characters")
		return s
	}
	s.customerName = name
	return s
}

func (s *Segment) SetClientName(name string) *Segment {
	if len(name) > 30 {
		s.log.Write("client name must not exceed 30 characters")
		return s
	}
	s.clientName = name
	return s
}

func (s *Segment) SetClientNumber(number string) *Segment {
	if err := validateClientNumber(number); err != nil {
		s.log.Add(err)
		return s
	}
	s.clientNumber = number
	return s
}

func (s *Segment) SetCustomerNumber(number string) *Segment {
	if len(number) > 19 {
		s.log.Write("customer number must not exceed 19 characters")
		return s
	}
	s.customerNumber = number
	return s
}

// SetSundryInformation stores the optional client sundry field.
func (s *Segment) SetSundryInformation(info string) *Segment {
	if len(info) > 15 {
		s.log.Write("client sundry information must not exceed 15 characters")
		return s
	}
	s.sundryInformation = info
	return s
}

// Format renders the segment's fixed 240 character layout. The zero
// and space filled gap regions are part of the format and reproduced
// verbatim.
func (s *Segment) Format() string {
	var b strings.Builder
	b.Grow(segmentLength)

	b.WriteString(padRight(s.transactionCode, 3))    // field 5
	b.WriteString(formatCents(s.amount, 8))          // field 6
	b.WriteString(s.paymentDate.Format())            // field 7
	b.WriteString(padZero(s.institutionNumber, 4))   // field 8
	b.WriteString(padZero(s.branchNumber, 5))        // field 8
	b.WriteString(padRight(s.accountNumber, 12))     // field 9
	b.WriteString(strings.Repeat("0", 22))           // field 10
	b.WriteString(strings.Repeat("0", 3))            // field 11
	b.WriteString(padRight(s.clientShortName, 15))   // field 12
	b.WriteString(padRight(s.customerName, 30))      // field 13
	b.WriteString(padRight(s.clientName, 30))        // field 14
	b.WriteString(padRight(s.clientNumber, 10))      // field 15
	b.WriteString(padRight(s.customerNumber, 19))    // field 16
	b.WriteString(strings.Repeat("0", 9))            // field 17
	b.WriteString(strings.Repeat(" ", 12))           // field 18
	b.WriteString(padRight(s.sundryInformation, 15)) // field 19
	b.WriteString(strings.Repeat(" ", 35))           // fields 20-22

	return b.String()
}

// validateClientNumber is the shared ten digit client number rule.
func validateClientNumber(number string) error {
	if len(number) != 10 || !isDigits(number) {
		return errClientNumber
	}
	return nil
}
