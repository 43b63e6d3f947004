// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/moov-io/cpa005/pkg/config"

	"github.com/stretchr/testify/require"
)

const testListing = `Client Name,Acme
Client Number,1234567890
Processing Centre,00300
Currency Code,CAD
Payment Date,2023/01/15
Transaction Code,200
Customer Number,Customer Name,Bank,Branch,Account,Amount,Suspend,,
cust1,John Doe,0001,00001,123456789012,$100.00,N,,
`

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Empty()
	return Handler(cfg)
}

func multipartListing(t *testing.T, listing string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "payroll.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(listing))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	return &body, form.FormDataContentType()
}

func TestConvertRoute(t *testing.T) {
	body, contentType := multipartListing(t, testListing)

	req := httptest.NewRequest("POST", "/files/convert?type=PDS", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	testHandler(t).ServeHTTP(w, req)
	w.Flush()

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "payroll.txt")

	lines := strings.Split(w.Body.String(), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "A", lines[0][0:1])
	require.Equal(t, "C", lines[1][0:1])
	require.Equal(t, "Z", lines[2][0:1])
}

func TestConvertRoute__debit(t *testing.T) {
	req := httptest.NewRequest("POST", "/files/convert?type=PAD", strings.NewReader(testListing))

	w := httptest.NewRecorder()
	testHandler(t).ServeHTTP(w, req)
	w.Flush()

	require.Equal(t, http.StatusOK, w.Code)

	lines := strings.Split(w.Body.String(), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "D", lines[1][0:1])
}

func TestConvertRoute__validationProblems(t *testing.T) {
	listing := strings.Replace(testListing, "1234567890", "12345", 1)
	req := httptest.NewRequest("POST", "/files/convert?type=PDS", strings.NewReader(listing))

	w := httptest.NewRecorder()
	testHandler(t).ServeHTTP(w, req)
	w.Flush()

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "client number must be exactly 10 numeric digits long")
}

func TestConvertRoute__unknownType(t *testing.T) {
	req := httptest.NewRequest("POST", "/files/convert?type=EFT", strings.NewReader(testListing))

	w := httptest.NewRecorder()
	testHandler(t).ServeHTTP(w, req)
	w.Flush()

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPingRoute(t *testing.T) {
	req := httptest.NewRequest("GET", "/ping", nil)

	w := httptest.NewRecorder()
	testHandler(t).ServeHTTP(w, req)
	w.Flush()

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "PONG", w.Body.String())
}

func TestOutputName(t *testing.T) {
	require.Equal(t, "payroll.txt", outputName("payroll.csv"))
	require.Equal(t, "payroll.txt", outputName("/tmp/uploads/payroll.csv"))
	require.Equal(t, "listing.txt", outputName("listing"))
}
