// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package cpa005

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moov-io/base"
)

// ErrorLog collects validation problems in the order they were found.
// Each builder owns a log, appends to it without aborting sibling
// validations, and parents merge child logs upward. That way a single
// conversion reports every independent problem at once instead of
// failing on the first.
type ErrorLog struct {
	list base.ErrorList
}

// Write appends one problem to the log.
func (l *ErrorLog) Write(msg string) {
	l.list.Add(errors.New(msg))
}

// Writef appends one formatted problem to the log.
func (l *ErrorLog) Writef(format string, args ...interface{}) {
	l.list.Add(fmt.Errorf(format, args...))
}

// Add appends err when it is non-nil.
func (l *ErrorLog) Add(err error) {
	if err != nil {
		l.list.Add(err)
	}
}

// Merge appends every entry of other after l's existing entries,
// preserving both insertion orders.
func (l *ErrorLog) Merge(other *ErrorLog) {
	if other == nil {
		return
	}
	for i := range other.list {
		l.list.Add(other.list[i])
	}
}

// Empty reports whether no problems have been logged.
func (l *ErrorLog) Empty() bool {
	return l.list.Empty()
}

// Err returns the log as one error whose text joins every entry with
// newlines, or nil when the log is empty.
func (l *ErrorLog) Err() error {
	if l.list.Empty() {
		return nil
	}
	return errors.New(l.String())
}

// String renders the log for user display, one problem per line.
func (l *ErrorLog) String() string {
	var out []string
	for i := range l.list {
		out = append(out, l.list[i].Error())
	}
	return strings.Join(out, "\n")
}
