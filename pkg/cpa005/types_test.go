// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"testing"
)

func TestProcessingCentre(t *testing.T) {
	cases := []struct {
		code   string
		centre ProcessingCentre
	}{
		{"00330", Halifax},
		{"00310", Montreal},
		{"00320", Toronto},
		{"00278", Regina},
		{"00370", Winnipeg},
		{"00390", Calgary},
		{"00300", Vancouver},
		// short codes are zero padded before lookup
		{"330", Halifax},
		{"278", Regina},
	}
	for _, tc := range cases {
		pc, err := LookupProcessingCentre(tc.code)
		if err != nil {
			t.Errorf("LookupProcessingCentre(%q): %v", tc.code, err)
		}
		if pc != tc.centre {
			t.Errorf("LookupProcessingCentre(%q)=%v, expected %v", tc.code, pc, tc.centre)
		}
		if len(tc.code) == 5 && pc.Code() != tc.code {
			t.Errorf("%v.Code()=%s, expected %s", pc, pc.Code(), tc.code)
		}
	}
}

func TestProcessingCentre__unknown(t *testing.T) {
	pc, err := LookupProcessingCentre("99999")
	if err == nil {
		t.Error("expected error")
	}
	if pc != Vancouver {
		t.Errorf("got %v, expected the Vancouver default", pc)
	}
}

func TestCurrency(t *testing.T) {
	if c, err := ParseCurrency("cad"); err != nil || c != CAD {
		t.Errorf("got %v / %v", c, err)
	}
	if c, err := ParseCurrency("USD"); err != nil || c != USD {
		t.Errorf("got %v / %v", c, err)
	}
	if c, err := ParseCurrency("EUR"); err == nil || c != CAD {
		t.Errorf("expected error and the CAD default, got %v / %v", c, err)
	}
}

func TestRecordType(t *testing.T) {
	if err := Credit.validatePayment(); err != nil {
		t.Error(err)
	}
	if err := Debit.validatePayment(); err != nil {
		t.Error(err)
	}
	if err := Header.validatePayment(); err == nil {
		t.Error("expected error for Header")
	}
	if err := Trailer.validatePayment(); err == nil {
		t.Error("expected error for Trailer")
	}
}

func TestDate__format(t *testing.T) {
	if v := (Date{Year: 2023, Day: 15}).Format(); v != "023015" {
		t.Errorf("got %s", v)
	}
	if v := (Date{}).Format(); v != "000000" {
		t.Errorf("got %s", v)
	}
	if v := (Date{Year: 1999, Day: 365}).Format(); v != "099365" {
		t.Errorf("got %s", v)
	}
}
