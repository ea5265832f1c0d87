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

package recerrors

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

func TestWrapNil(t *testing.T) {
	got := Wrap(nil, "no error")
	if got != nil {
		t.Errorf("Wrap(nil, \"no error\"): got %#v, expected nil", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		err         error
		message     string
		wantMessage string
		wantCode    Code
	}{
		{io.EOF, "read error", "read error: EOF", Unknown},
		{New(InvalidAlias, "oops"), "client error", "client error: oops", InvalidAlias},
	}

	for _, tt := range tests {
		got := Wrap(tt.err, tt.message)
		if got.Error() != tt.wantMessage {
			t.Errorf("Wrap(%v, %q): got: [%v], want [%v]", tt.err, tt.message, got, tt.wantMessage)
		}
		if CodeOf(got) != tt.wantCode {
			t.Errorf("Wrap(%v, %v): got: [%v], want [%v]", tt.err, tt, CodeOf(got), tt.wantCode)
		}
	}
}

type nilError struct{}

func (nilError) Error() string { return "nil error" }

func TestRootCause(t *testing.T) {
	x := New(UnsupportedCharset, "error")
	tests := []struct {
		err  error
		want error
	}{{
		// nil error is nil
		err:  nil,
		want: nil,
	}, {
		// uncaused error is unaffected
		err:  io.EOF,
		want: io.EOF,
	}, {
		// caused error returns cause
		err:  Wrap(io.EOF, "ignored"),
		want: io.EOF,
	}, {
		err:  x,
		want: x,
	}}

	for i, tt := range tests {
		got := RootCause(tt.err)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("test %d: got %#v, want %#v", i+1, got, tt.want)
		}
	}
}

func TestCause(t *testing.T) {
	x := New(ProviderInitFailure, "error")
	tests := []struct {
		err  error
		want error
	}{{
		err:  nil,
		want: nil,
	}, {
		// uncaused error has no cause
		err:  io.EOF,
		want: nil,
	}, {
		err:  Wrap(io.EOF, "ignored"),
		want: io.EOF,
	}, {
		err:  x,
		want: nil,
	}}

	for i, tt := range tests {
		got := Cause(tt.err)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("test %d: got %#v, want %#v", i+1, got, tt.want)
		}
	}
}

func TestWrapfNil(t *testing.T) {
	got := Wrapf(nil, "no error")
	if got != nil {
		t.Errorf("Wrapf(nil, \"no error\"): got %#v, expected nil", got)
	}
}

func TestWrapf(t *testing.T) {
	tests := []struct {
		err     error
		message string
		want    string
	}{
		{io.EOF, "read error", "read error: EOF"},
		{Wrapf(io.EOF, "read error without format specifiers"), "client error", "client error: read error without format specifiers: EOF"},
		{Wrapf(io.EOF, "read error with %d format specifier", 1), "client error", "client error: read error with 1 format specifier: EOF"},
	}

	for _, tt := range tests {
		got := Wrapf(tt.err, "%s", tt.message).Error()
		if got != tt.want {
			t.Errorf("Wrapf(%v, %q): got: %v, want %v", tt.err, tt.message, got, tt.want)
		}
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(MissingArgument, "%s: no charset name given", "ToUTF8")
	if err.Error() != "ToUTF8: no charset name given" {
		t.Errorf("Errorf: got %q", err.Error())
	}
	if CodeOf(err) != MissingArgument {
		t.Errorf("CodeOf: got %v, want MissingArgument", CodeOf(err))
	}
}

func TestCodeOfDeepChain(t *testing.T) {
	inner := New(UnsupportedCharset, "unknown charset")
	err := Wrap(Wrapf(inner, "during pivot"), "conversion failed")
	if got := CodeOf(err); got != UnsupportedCharset {
		t.Errorf("CodeOf(%v): got %v, want UnsupportedCharset", err, got)
	}
	if got := CodeOf(nil); got != Unknown {
		t.Errorf("CodeOf(nil): got %v, want Unknown", got)
	}
}

func TestStdlibInterop(t *testing.T) {
	inner := New(InvalidAlias, "bad alias")
	err := Wrap(inner, "while applying aliases")
	if !errors.Is(err, inner) {
		t.Errorf("errors.Is(%v, inner) = false, want true", err)
	}
	var withCode ErrorWithCode
	if !errors.As(err, &withCode) {
		t.Fatalf("errors.As(%v, ErrorWithCode) = false, want true", err)
	}
	if withCode.ErrorCode() != InvalidAlias {
		t.Errorf("ErrorCode: got %v, want InvalidAlias", withCode.ErrorCode())
	}
}
