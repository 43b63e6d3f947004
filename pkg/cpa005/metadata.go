// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"encoding/csv"
	"strings"
	"time"
)

// Metadata is the six line key/value preamble of every payment
// listing. It is parsed once per conversion, read-only afterward, and
// copied into every segment it affects.
type Metadata struct {
	ClientName       string
	ClientNumber     string
	ProcessingCentre ProcessingCentre
	Currency         Currency
	PaymentDate      Date
	TransactionCode  string
}

// metadataKeys is the required order of the preamble lines.
var metadataKeys = []string{
	"Client Name",
	"Client Number",
	"Processing Centre",
	"Currency Code",
	"Payment Date",
	"Transaction Code",
}

// readMetadata consumes the six preamble records from r. A missing or
// mismatched key, an unknown processing centre or currency, and an
// unparseable payment date are each logged, but parsing always
// continues with a substitute default so one pass can surface every
// header problem at once.
func readMetadata(r *csv.Reader, log *ErrorLog) Metadata {
	md := Metadata{
		ProcessingCentre: Vancouver,
		Currency:         CAD,
	}

	if v, ok := metadataValue(r, "Client Name", log); ok {
		md.ClientName = v
	}
	if v, ok := metadataValue(r, "Client Number", log); ok {
		md.ClientNumber = v
	}
	if v, ok := metadataValue(r, "Processing Centre", log); ok {
		pc, err := LookupProcessingCentre(v)
		if err != nil {
			log.Add(err)
		}
		md.ProcessingCentre = pc
	}
	if v, ok := metadataValue(r, "Currency Code", log); ok {
		currency, err := ParseCurrency(v)
		if err != nil {
			log.Add(err)
		}
		md.Currency = currency
	}
	if v, ok := metadataValue(r, "Payment Date", log); ok {
		when, err := time.Parse("2006/01/02", v)
		if err != nil {
			log.Writef("could not parse payment date %q, date should be in the form of YYYY/MM/DD", v)
		} else {
			md.PaymentDate = Date{Year: when.Year(), Day: when.YearDay()}
		}
	}
	if v, ok := metadataValue(r, "Transaction Code", log); ok {
		md.TransactionCode = v
	}

	return md
}

// metadataValue reads the next record and returns its value column
// after confirming the key column matches. Problems are logged and
// reported through ok so callers keep their defaults.
func metadataValue(r *csv.Reader, key string, log *ErrorLog) (string, bool) {
	record, err := r.Read()
	if err != nil {
		log.Writef("could not read CSV header record %s", key)
		return "", false
	}
	if got := strings.TrimSpace(record[0]); got != key {
		log.Writef("expected header %s, got %s instead", key, record[0])
		return "", false
	}
	if len(record) < 2 {
		log.Writef("expected value for header %s", key)
		return "", false
	}
	return record[1], true
}
