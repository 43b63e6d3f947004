// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package server

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/moov-io/cpa005/pkg/cpa005"

	moovhttp "github.com/moov-io/base/http"

	"github.com/go-kit/kit/metrics/prometheus"
	"github.com/google/uuid"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	conversionDurations = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Name: "conversion_duration_seconds",
		Help: "Histogram representing CSV to CPA-005 conversion durations",
	}, []string{"type"})

	conversionsRejected = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "conversions_rejected",
		Help: "Count of conversions rejected with validation problems",
	}, []string{"type"})
)

// convertFile accepts a payment listing upload and responds with the
// rendered CPA-005 file, or a 400 carrying the newline joined list of
// every validation problem found. The ?type= query parameter selects
// PDS (direct deposit, credit) or PAD (pre-authorized debit) output.
func (c *Controller) convertFile(w http.ResponseWriter, r *http.Request) {
	requestID := moovhttp.GetRequestID(r)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	fileType := r.URL.Query().Get("type")
	recordType, err := recordTypeFor(fileType)
	if err != nil {
		moovhttp.Problem(w, err)
		return
	}

	raw, filename, err := readListing(r, c.cfg.Conversion.MaxFileBytes)
	if err != nil {
		moovhttp.Problem(w, err)
		return
	}

	start := time.Now()
	rendered, err := cpa005.Convert(raw, recordType)
	conversionDurations.With("type", fileType).Observe(time.Since(start).Seconds())

	if err != nil {
		conversionsRejected.With("type", fileType).Add(1)
		c.logger.Log("convert", "conversion rejected", "type", fileType, "requestID", requestID)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	c.logger.Log("convert", fmt.Sprintf("converted %s into a %s file", filename, fileType), "requestID", requestID)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outputName(filename)))
	w.Write([]byte(rendered))
}

// recordTypeFor maps the upload surface's PDS/PAD selector onto the
// detail record type.
func recordTypeFor(fileType string) (cpa005.RecordType, error) {
	switch strings.TrimSpace(fileType) {
	case "PDS":
		return cpa005.Credit, nil
	case "PAD":
		return cpa005.Debit, nil
	default:
		return "", fmt.Errorf("unknown file type %q, expected PDS or PAD", fileType)
	}
}

// readListing pulls the uploaded CSV out of a multipart "file" field
// when one is present and otherwise reads the raw request body. Reads
// are capped at maxBytes.
func readListing(r *http.Request, maxBytes int64) (string, string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", "", fmt.Errorf("problem reading multipart upload: %v", err)
		}
		defer file.Close()

		bs, err := ioutil.ReadAll(io.LimitReader(file, maxBytes))
		if err != nil {
			return "", "", fmt.Errorf("problem reading upload: %v", err)
		}
		return string(bs), header.Filename, nil
	}

	bs, err := ioutil.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return "", "", fmt.Errorf("problem reading request body: %v", err)
	}
	return string(bs), "upload.csv", nil
}

// outputName swaps the uploaded file's extension for .txt, matching
// what the desktop tooling writes to disk.
func outputName(filename string) string {
	base := filepath.Base(filename)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".txt"
}
