// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"strings"
	"testing"
)

func testFile() *File {
	return NewFile().
		SetClientNumber("1234567890").
		SetFileCreationNumber(1).
		SetCreationDate(Date{Year: 2023, Day: 15}).
		SetProcessingCentre(Winnipeg).
		SetCurrency(CAD)
}

func paymentOf(rt RecordType, cents uint64) *Payment {
	return NewPayment(rt).
		SetClientNumber("1234567890").
		AddSegment(validSegment().SetAmount(cents))
}

func TestFile__recordLengths(t *testing.T) {
	f := testFile()
	if !f.Log().Empty() {
		t.Fatalf("unexpected errors: %v", f.Log().String())
	}

	header := f.headerRecord()
	if len(header) != recordLength {
		t.Fatalf("header length=%d, expected %d", len(header), recordLength)
	}
	if v := header[0:10]; v != "A000000001" {
		t.Errorf("got %q", v)
	}
	if v := header[10:20]; v != "1234567890" {
		t.Errorf("client number column: %q", v)
	}
	if v := header[20:24]; v != "1   " {
		t.Errorf("file creation number column: %q", v)
	}
	if v := header[24:30]; v != "023015" {
		t.Errorf("creation date column: %q", v)
	}
	if v := header[30:35]; v != "00370" {
		t.Errorf("processing centre column: %q", v)
	}
	if v := header[35:58]; v != strings.Repeat(" ", 20)+"CAD" {
		t.Errorf("currency columns: %q", v)
	}
	if v := header[58:]; v != strings.Repeat(" ", 1406) {
		t.Errorf("reserved region is not blank")
	}

	trailer := f.trailerRecord()
	if len(trailer) != recordLength {
		t.Fatalf("trailer length=%d, expected %d", len(trailer), recordLength)
	}
}

func TestFile__totals(t *testing.T) {
	f := testFile()
	f.Append(paymentOf(Credit, 10000))
	f.Append(paymentOf(Debit, 2500))
	f.Append(paymentOf(Credit, 499))

	if !f.Log().Empty() {
		t.Fatalf("unexpected errors: %v", f.Log().String())
	}
	if f.totalCreditAmount != 10499 || f.totalCreditCount != 2 {
		t.Errorf("credits: %d cents over %d payments", f.totalCreditAmount, f.totalCreditCount)
	}
	if f.totalDebitAmount != 2500 || f.totalDebitCount != 1 {
		t.Errorf("debits: %d cents over %d payments", f.totalDebitAmount, f.totalDebitCount)
	}

	// counts increment per payment, totals sum every segment
	sum := f.totalCreditAmount + f.totalDebitAmount
	if sum != 10000+2500+499 {
		t.Errorf("got %d", sum)
	}

	trailer := f.trailerRecord()
	if v := trailer[0:10]; v != "Z000000005" {
		t.Errorf("trailer sequence: %q", v)
	}
	if v := trailer[24:38]; v != "00000000002500" {
		t.Errorf("debit total column: %q", v)
	}
	if v := trailer[38:46]; v != "00000001" {
		t.Errorf("debit count column: %q", v)
	}
	if v := trailer[46:60]; v != "00000000010499" {
		t.Errorf("credit total column: %q", v)
	}
	if v := trailer[60:68]; v != "00000002" {
		t.Errorf("credit count column: %q", v)
	}
	if v := trailer[68:]; v != strings.Repeat("0", 1396) {
		t.Errorf("reserved region is not zero filled")
	}
}

func TestFile__recordNumbers(t *testing.T) {
	f := testFile()
	var payments []*Payment
	for i := 0; i < 5; i++ {
		p := paymentOf(Credit, 100)
		payments = append(payments, p)
		f.Append(p)
	}

	// strictly increasing from 2 with no gaps, in append order
	for i, p := range payments {
		if p.RecordNumber() != i+2 {
			t.Errorf("payment %d: record number %d", i, p.RecordNumber())
		}
		// the record number doubles as the per-record sequence field
		if p.fileCreationNumber != p.RecordNumber() {
			t.Errorf("payment %d: file creation number %d", i, p.fileCreationNumber)
		}
	}
}

func TestFile__invalidRecordType(t *testing.T) {
	f := testFile()
	f.Append(NewPayment(Header))

	if f.Log().Empty() {
		t.Fatal("expected a contract violation")
	}
	if len(f.payments) != 0 {
		t.Error("invalid payment should not be appended")
	}
	if f.currentRecordNumber != 1 {
		t.Errorf("record number allocated for refused payment: %d", f.currentRecordNumber)
	}
}

func TestFile__appendAfterRender(t *testing.T) {
	f := testFile()
	f.Append(paymentOf(Credit, 100))
	f.Render()

	f.Append(paymentOf(Credit, 100))
	if !strings.Contains(f.Log().String(), "cannot append a payment to a rendered file") {
		t.Errorf("got %q", f.Log().String())
	}
	if len(f.payments) != 1 {
		t.Errorf("got %d payments", len(f.payments))
	}
}

func TestFile__setterContracts(t *testing.T) {
	f := NewFile().SetClientNumber("abc")
	if !strings.Contains(f.Log().String(), "client number must be exactly 10 numeric digits long") {
		t.Errorf("got %q", f.Log().String())
	}

	f = NewFile().SetFileCreationNumber(12345)
	if !strings.Contains(f.Log().String(), "file creation number exceeds 4 digits") {
		t.Errorf("got %q", f.Log().String())
	}

	f = NewFile().SetCreationDate(Date{Year: 12345, Day: 1})
	if !strings.Contains(f.Log().String(), "year number exceeds 4 digits") {
		t.Errorf("got %q", f.Log().String())
	}

	f = NewFile().SetCreationDate(Date{Year: 2023, Day: 1000})
	if !strings.Contains(f.Log().String(), "day number exceeds 3 digits") {
		t.Errorf("got %q", f.Log().String())
	}
}

func TestFile__render(t *testing.T) {
	f := testFile()
	f.Append(paymentOf(Credit, 10000))
	f.Append(paymentOf(Debit, 2500))

	lines := strings.Split(f.Render(), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines", len(lines))
	}
	if len(lines[0]) != recordLength || len(lines[3]) != recordLength {
		t.Errorf("header/trailer lengths: %d / %d", len(lines[0]), len(lines[3]))
	}
	if len(lines[1]) != 24+segmentLength || len(lines[2]) != 24+segmentLength {
		t.Errorf("detail lengths: %d / %d", len(lines[1]), len(lines[2]))
	}
	if lines[1][0:1] != "C" || lines[2][0:1] != "D" {
		t.Errorf("detail types: %q %q", lines[1][0:1], lines[2][0:1])
	}
}
