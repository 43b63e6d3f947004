// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package cpa005 converts tabular payment listings into fixed-width
// CPA-005 interchange files for Canadian ACH direct deposit (PDS) and
// direct debit (PAD) processing.
//
// The package is purely computational. Callers hand Convert the raw
// CSV text and receive either the rendered file or a newline-joined
// list of every validation problem found. Nothing here touches the
// network or filesystem, and independent conversions share no state,
// so files may be converted concurrently without coordination.
package cpa005

// Version is the semantic version of this package.
var Version = "v0.2.0"
