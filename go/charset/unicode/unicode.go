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

// Package unicode implements the Unicode transformation formats the
// dispatch layer routes to: UTF-8 passthrough, UCS-2, UTF-16, UCS-4 and
// UTF-7. It also provides the UTF-16 code unit hop used by the
// table-driven encodings.
//
// Byte order: the processing-native order for UCS-2, UTF-16 and UCS-4 is
// big-endian. Decoding byte-swaps the whole input when, and only when, the
// leading code unit is the byte-swapped marker 0xFFFE (0xFFFE0000 for
// UCS-4). A native-order 0xFEFF marker is left in place and decodes to
// U+FEFF. This one-sided check is kept for compatibility with existing
// producers; it is not a general byte-order-mark guarantee.
package unicode

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Form identifies one Unicode transformation format. Charset names are
// parsed into a Form once, at resolution time; nothing below the public
// boundary branches on name strings.
type Form int8

const (
	FormUTF8 Form = iota
	FormUCS2
	FormUCS4
	FormUTF16
	FormUTF7
)

func (f Form) String() string {
	switch f {
	case FormUTF8:
		return "utf8"
	case FormUCS2:
		return "ucs2"
	case FormUCS4:
		return "ucs4"
	case FormUTF16:
		return "utf16"
	case FormUTF7:
		return "utf7"
	default:
		return "unknown"
	}
}

// ParseForm maps a charset name to its Form. Matching is
// case-insensitive.
func ParseForm(name string) (Form, bool) {
	switch strings.ToLower(name) {
	case "utf8":
		return FormUTF8, true
	case "ucs2":
		return FormUCS2, true
	case "ucs4":
		return FormUCS4, true
	case "utf16":
		return FormUTF16, true
	case "utf7":
		return FormUTF7, true
	}
	return 0, false
}

// Forms lists every supported transformation format name, in registration
// order.
func Forms() []string {
	return []string{"utf8", "ucs2", "ucs4", "utf7", "utf16"}
}

// DecodeToUTF8 interprets src under the given form and re-serializes it
// as UTF-8. FormUTF8 input passes through unchanged.
func DecodeToUTF8(f Form, src []byte) ([]byte, error) {
	switch f {
	case FormUTF8:
		return src, nil
	case FormUCS2, FormUTF16:
		units, err := unitsOf16(src, f)
		if err != nil {
			return nil, err
		}
		return UTF16ToUTF8(units), nil
	case FormUCS4:
		return decodeUCS4(src)
	case FormUTF7:
		return decodeUTF7(src)
	}
	return nil, fmt.Errorf("unknown unicode form %d", f)
}

// EncodeFromUTF8 re-serializes UTF-8 input into the given form. FormUTF8
// passes through unchanged.
func EncodeFromUTF8(f Form, src []byte) ([]byte, error) {
	switch f {
	case FormUTF8:
		return src, nil
	case FormUCS2:
		if err := ensureBMPRange(src); err != nil {
			return nil, err
		}
		return encodeUTF16BE(src)
	case FormUTF16:
		return encodeUTF16BE(src)
	case FormUCS4:
		return encodeUCS4(src)
	case FormUTF7:
		return encodeUTF7(src), nil
	}
	return nil, fmt.Errorf("unknown unicode form %d", f)
}

// UTF16ToUTF8 converts UTF-16 code units into UTF-8 bytes. Surrogate
// pairs are combined; unpaired surrogates become U+FFFD.
func UTF16ToUTF8(units []uint16) []byte {
	return []byte(string(utf16.Decode(units)))
}

// UTF8ToUTF16 converts UTF-8 bytes into UTF-16 code units. Invalid UTF-8
// sequences become U+FFFD.
func UTF8ToUTF16(src []byte) []uint16 {
	return utf16.Encode([]rune(string(src)))
}

// ensureBMPRange reports an error if src contains a code point outside
// the Basic Multilingual Plane.
func ensureBMPRange(src []byte) error {
	for _, r := range string(src) {
		if r > 0xFFFF {
			return fmt.Errorf("ucs2: code point %U outside the basic multilingual plane", r)
		}
	}
	return nil
}
