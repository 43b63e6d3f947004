// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"fmt"
	"strings"
)

// recordLength is the fixed width of the file header and trailer
// records. A single wrong width shifts every following column for
// every downstream consumer, so tests pin this value.
const recordLength = 1464

// File accumulates payments and renders the complete CPA-005 file.
//
// The record counter starts at 1, representing the file header
// record, so the first appended payment is assigned number 2. Credit
// and debit totals track segment amounts while the counts increment
// once per appended payment. After Render the file is finalized and
// further appends are refused.
type File struct {
	currentRecordNumber int
	clientNumber        string
	fileCreationNumber  int
	creationDate        Date
	processingCentre    ProcessingCentre
	currency            Currency

	totalDebitAmount  uint64
	totalDebitCount   uint64
	totalCreditAmount uint64
	totalCreditCount  uint64

	payments  []*Payment
	finalized bool

	log ErrorLog
}

func NewFile() *File {
	return &File{
		currentRecordNumber: 1,
		processingCentre:    Vancouver,
		currency:            CAD,
	}
}

// Log exposes the file's accumulated validation problems.
func (f *File) Log() *ErrorLog {
	return &f.log
}

func (f *File) SetClientNumber(number string) *File {
	if err := validateClientNumber(number); err != nil {
		f.log.Add(err)
		return f
	}
	f.clientNumber = number
	return f
}

// SetFileCreationNumber rejects values over four decimal digits.
func (f *File) SetFileCreationNumber(no int) *File {
	if no < 0 || no > 9999 {
		f.log.Write("file creation number exceeds 4 digits")
		return f
	}
	f.fileCreationNumber = no
	return f
}

func (f *File) SetCreationDate(d Date) *File {
	if d.Year < 0 || d.Year > 9999 {
		f.log.Write("file creation date: year number exceeds 4 digits")
		return f
	}
	if d.Day < 0 || d.Day > 999 {
		f.log.Write("file creation date: day number exceeds 3 digits")
		return f
	}
	f.creationDate = d
	return f
}

func (f *File) SetProcessingCentre(pc ProcessingCentre) *File {
	f.processingCentre = pc
	return f
}

func (f *File) SetCurrency(currency Currency) *File {
	f.currency = currency
	return f
}

// Append assigns the payment the next sequential record number,
// mirrors that number into the payment's file creation number, bumps
// the matching credit or debit count by one, and sums every segment
// amount into the matching total. Payments carrying a record type
// other than Credit or Debit are refused with a logged contract
// violation and never allocated a number.
func (f *File) Append(p *Payment) *File {
	if f.finalized {
		f.log.Write("cannot append a payment to a rendered file")
		return f
	}
	if err := p.recordType.validatePayment(); err != nil {
		f.log.Add(err)
		return f
	}

	f.currentRecordNumber++
	p.recordNumber = f.currentRecordNumber
	p.fileCreationNumber = f.currentRecordNumber

	switch p.recordType {
	case Credit:
		f.totalCreditCount++
		for i := range p.segments {
			f.totalCreditAmount += p.segments[i].amount
		}
	case Debit:
		f.totalDebitCount++
		for i := range p.segments {
			f.totalDebitAmount += p.segments[i].amount
		}
	}

	f.payments = append(f.payments, p)
	return f
}

// headerRecord renders the 1464 character "A" record.
func (f *File) headerRecord() string {
	var b strings.Builder
	b.Grow(recordLength)

	b.WriteString(string(Header))
	fmt.Fprintf(&b, "%09d", 1)
	b.WriteString(padRight(f.clientNumber, 10))
	fmt.Fprintf(&b, "%-4d", f.fileCreationNumber)
	b.WriteString(f.creationDate.Format())
	b.WriteString(f.processingCentre.Code())
	b.WriteString(strings.Repeat(" ", 20))
	b.WriteString(string(f.currency))
	b.WriteString(strings.Repeat(" ", 1406))

	return b.String()
}

// trailerRecord renders the 1464 character "Z" record carrying the
// debit and credit totals.
func (f *File) trailerRecord() string {
	var b strings.Builder
	b.Grow(recordLength)

	b.WriteString(string(Trailer))
	fmt.Fprintf(&b, "%09d", f.currentRecordNumber+1)
	b.WriteString(padRight(f.clientNumber, 10))
	fmt.Fprintf(&b, "%-4d", f.fileCreationNumber)
	b.WriteString(formatCents(f.totalDebitAmount, 12))
	fmt.Fprintf(&b, "%08d", f.totalDebitCount)
	b.WriteString(formatCents(f.totalCreditAmount, 12))
	fmt.Fprintf(&b, "%08d", f.totalCreditCount)
	b.WriteString(strings.Repeat("0", 1396))

	return b.String()
}

// Render serializes the header record, one line per appended payment,
// and the trailer record, separated by single newlines. The file is
// finalized afterward.
func (f *File) Render() string {
	f.finalized = true

	var b strings.Builder
	b.WriteString(f.headerRecord())
	b.WriteString("\n")
	for i := range f.payments {
		b.WriteString(f.payments[i].Format())
		b.WriteString("\n")
	}
	b.WriteString(f.trailerRecord())
	return b.String()
}
