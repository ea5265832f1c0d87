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

// Package cjk provides the stateful Japanese codecs: Shift_JIS, EUC-JP
// and the escape-sequence based ISO-2022-JP/JIS family. These convert
// directly between native bytes and UTF-8, with no 16-bit intermediate,
// because the escape-sequence state does not survive a per-unit hop.
package cjk

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"

	"recode.io/recode/go/charset/types"
)

// Format identifies one Japanese wire format. Sub-format names are
// parsed once, at codec construction.
type Format int8

const (
	FormatSJIS Format = iota
	FormatEUCJP
	FormatISO2022JP
	FormatJIS
)

func (f Format) String() string {
	switch f {
	case FormatSJIS:
		return "sjis"
	case FormatEUCJP:
		return "euc-jp"
	case FormatISO2022JP:
		return "iso-2022-jp"
	case FormatJIS:
		return "jis"
	default:
		return "unknown"
	}
}

// ParseFormat maps a sub-format name to its Format. Matching is
// case-insensitive.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(name) {
	case "sjis", "shift_jis", "shift-jis":
		return FormatSJIS, true
	case "euc-jp", "eucjp":
		return FormatEUCJP, true
	case "iso-2022-jp":
		return FormatISO2022JP, true
	case "jis":
		return FormatJIS, true
	}
	return 0, false
}

// Formats lists the wire format names in registration order.
func Formats() []string {
	return []string{"sjis", "iso-2022-jp", "jis", "euc-jp"}
}

// Provider constructs codecs for the Japanese wire formats.
type Provider struct{}

// NewCodec returns the codec for the named sub-format. JIS is served by
// the ISO-2022-JP tables; the 7-bit escape-sequence encoding is the
// same on the wire.
func (Provider) NewCodec(format string) (types.CJKCodec, error) {
	f, ok := ParseFormat(format)
	if !ok {
		return nil, fmt.Errorf("cjk: unknown sub-format %q", format)
	}
	var enc encoding.Encoding
	switch f {
	case FormatSJIS:
		enc = japanese.ShiftJIS
	case FormatEUCJP:
		enc = japanese.EUCJP
	case FormatISO2022JP, FormatJIS:
		enc = japanese.ISO2022JP
	}
	return &codec{enc: enc}, nil
}

type codec struct {
	enc encoding.Encoding
}

func (c *codec) DecodeToUTF8(src []byte) ([]byte, error) {
	return c.enc.NewDecoder().Bytes(src)
}

func (c *codec) EncodeFromUTF8(src []byte) ([]byte, error) {
	return c.enc.NewEncoder().Bytes(src)
}
