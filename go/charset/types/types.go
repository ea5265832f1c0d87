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

// Package types declares the interfaces between the charset dispatch core
// and the codec providers that back it. It exists as a separate leaf
// package so provider implementations do not import the core.
package types

// TableHandle is an open table-driven codec for one specific encoding.
// Table codecs convert between native bytes and UTF-16 code units; the
// dispatch layer is responsible for the second hop between UTF-16 and
// UTF-8.
type TableHandle interface {
	// DecodeToUTF16 converts native bytes into UTF-16 code units.
	DecodeToUTF16(src []byte) ([]uint16, error)

	// EncodeFromUTF16 converts UTF-16 code units into native bytes.
	// Code points with no mapping in the target encoding are an error,
	// never silently substituted.
	EncodeFromUTF16(src []uint16) ([]byte, error)
}

// TableProvider is a catalog of table-driven encodings.
type TableProvider interface {
	// Name identifies the provider in logs and errors.
	Name() string

	// KnownIDs lists every encoding identifier this provider can open,
	// including alternate spellings. The list is scanned once at
	// registry construction.
	KnownIDs() []string

	// Open returns a handle for the given identifier. Identifiers are
	// matched case-insensitively.
	Open(id string) (TableHandle, error)
}

// CJKCodec is a stateful codec bound to one CJK wire format. Both
// directions work directly against UTF-8, with no 16-bit intermediate.
type CJKCodec interface {
	DecodeToUTF8(src []byte) ([]byte, error)
	EncodeFromUTF8(src []byte) ([]byte, error)
}

// CJKProvider constructs stateful CJK codecs by sub-format name
// (sjis, euc-jp, iso-2022-jp, jis).
type CJKProvider interface {
	NewCodec(format string) (CJKCodec, error)
}
