/*
Copyright 2026 The Recode Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package recerrors provides the error type used across the recode
// libraries.
//
// Every error carries a Code classifying the failure. Errors created with
// New or Errorf carry the code they were created with; errors created with
// Wrap or Wrapf preserve the code of the innermost wrapped error that has
// one.
//
//	err := recerrors.Errorf(recerrors.UnsupportedCharset, "unknown charset %q", name)
//	if recerrors.CodeOf(err) == recerrors.UnsupportedCharset { ... }
//
// The package interoperates with the standard errors package: all returned
// errors implement Unwrap, so errors.Is and errors.As work through any
// chain built here.
package recerrors

import (
	"fmt"
	"io"
)

// ErrorWithCode is implemented by errors that carry a classification code.
type ErrorWithCode interface {
	ErrorCode() Code
}

// New returns an error with the supplied message and code.
func New(code Code, message string) error {
	return &fundamental{
		msg:  message,
		code: code,
	}
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error, carrying the given code.
func Errorf(code Code, format string, args ...any) error {
	return &fundamental{
		msg:  fmt.Sprintf(format, args...),
		code: code,
	}
}

// fundamental is an error that has a message and a code, but no caused-by
// chain below it.
type fundamental struct {
	msg  string
	code Code
}

func (f *fundamental) Error() string { return f.msg }

func (f *fundamental) ErrorCode() Code { return f.code }

func (f *fundamental) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%v: %s", f.code, f.msg)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, f.msg)
	case 'q':
		fmt.Fprintf(s, "%q", f.msg)
	}
}

// Wrap returns an error annotating err with a new message. If err is nil,
// Wrap returns nil. The wrapped error keeps reporting err's code.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrapping{
		cause: err,
		msg:   message,
	}
}

// Wrapf returns an error annotating err with the format specifier. If err
// is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapping{
		cause: err,
		msg:   fmt.Sprintf(format, args...),
	}
}

type wrapping struct {
	cause error
	msg   string
}

func (w *wrapping) Error() string { return w.msg + ": " + w.cause.Error() }

func (w *wrapping) Cause() error { return w.cause }

func (w *wrapping) Unwrap() error { return w.cause }

func (w *wrapping) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(s, w.Error())
	case 'q':
		fmt.Fprintf(s, "%q", w.Error())
	}
}

// CodeOf returns the code of the innermost error in err's chain that
// carries one, or Unknown if no error in the chain does.
func CodeOf(err error) Code {
	var code = Unknown
	for err != nil {
		if withCode, ok := err.(ErrorWithCode); ok {
			code = withCode.ErrorCode()
		}
		cause, ok := err.(causer)
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return code
}

type causer interface {
	Cause() error
}

// Cause returns the immediately wrapped error of err, if err was built
// with Wrap or Wrapf, and nil otherwise.
func Cause(err error) error {
	if cause, ok := err.(causer); ok {
		return cause.Cause()
	}
	return nil
}

// RootCause walks the chain of wrapped errors and returns the innermost
// one. An unwrapped error is its own root cause.
func RootCause(err error) error {
	for {
		cause, ok := err.(causer)
		if !ok {
			return err
		}
		err = cause.Cause()
	}
}
