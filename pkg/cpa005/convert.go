// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// rowColumns is the column count of every data row: customer number,
// customer name, institution, branch, account, amount, suspend flag,
// and two trailing columns reserved for future use.
const rowColumns = 9

// Row is one data line of a payment listing.
type Row struct {
	CustomerNumber string
	CustomerName   string
	Institution    string
	Branch         string
	Account        string
	Amount         string
	Suspend        string
}

// readRow binds a raw CSV record to a Row. The two reserved trailing
// columns are required to be present but their values are ignored.
func readRow(record []string) (Row, error) {
	if len(record) != rowColumns {
		return Row{}, fmt.Errorf("row has %d columns, expected %d", len(record), rowColumns)
	}
	return Row{
		CustomerNumber: record[0],
		CustomerName:   record[1],
		Institution:    record[2],
		Branch:         record[3],
		Account:        record[4],
		Amount:         record[5],
		Suspend:        record[6],
	}, nil
}

// skip reports whether the row is excluded from the file without an
// error: a blank customer number or a suspend flag of Y (any case).
func (r Row) skip() bool {
	if strings.TrimSpace(r.CustomerNumber) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Suspend), "Y")
}

// Convert parses a payment listing and renders it as a CPA-005 file
// of the given type: Credit for direct deposit (PDS) files, Debit for
// pre-authorized debit (PAD) files.
//
// Field and row problems are collected rather than short-circuited.
// The conversion fails atomically: when any problem was logged
// anywhere the returned error joins every one with newlines and no
// partial file text is produced.
func Convert(raw string, rt RecordType) (string, error) {
	now := time.Now()
	return convert(raw, rt, Date{Year: now.Year(), Day: now.YearDay()})
}

func convert(raw string, rt RecordType, creationDate Date) (string, error) {
	if err := rt.validatePayment(); err != nil {
		return "", err
	}

	var errs ErrorLog

	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1

	md := readMetadata(r, &errs)

	file := NewFile().
		SetClientNumber(md.ClientNumber).
		SetCurrency(md.Currency).
		SetProcessingCentre(md.ProcessingCentre).
		SetFileCreationNumber(1).
		SetCreationDate(creationDate)

	// The record after the metadata block is the column title row.
	titleSkipped := false
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs.Writef("%v", err)
			continue
		}
		if !titleSkipped {
			titleSkipped = true
			continue
		}

		row, err := readRow(record)
		if err != nil {
			errs.Add(err)
			continue
		}
		if row.skip() {
			continue
		}

		segment := NewSegment().
			SetTransactionCode(md.TransactionCode).
			SetClientName(md.ClientName).
			SetCustomerNumber(row.CustomerNumber).
			SetCustomerName(row.CustomerName).
			SetInstitutionNumber(row.Institution).
			SetBranchNumber(row.Branch).
			SetAccountNumber(row.Account).
			SetPaymentDate(md.PaymentDate).
			SetClientNumber(md.ClientNumber).
			SetClientShortName(shortName(md.ClientName))

		cents, err := ParseAmount(row.Amount)
		if err != nil {
			errs.Writef("failed to parse payment amount: %v", err)
			continue
		}
		segment.SetAmount(cents)

		payment := NewPayment(rt).
			SetClientNumber(md.ClientNumber).
			AddSegment(segment)

		errs.Merge(payment.Log())
		file.Append(payment)
	}

	errs.Merge(file.Log())

	if err := errs.Err(); err != nil {
		return "", err
	}
	return file.Render(), nil
}

// shortName truncates the client name to the 15 character short name
// field.
func shortName(clientName string) string {
	if len(clientName) > 15 {
		return clientName[:15]
	}
	return clientName
}
