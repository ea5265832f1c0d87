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

// Package eightbit is the table provider for single-byte code pages. The
// transcoding tables themselves come from golang.org/x/text; this package
// owns the catalog of names and the UTF-16 code unit boundary the
// dispatch layer expects from table-driven encodings.
package eightbit

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"recode.io/recode/go/charset/types"
)

type codePage struct {
	name    string
	enc     encoding.Encoding
	aliases []string
}

// codePages is the curated catalog. Canonical spellings follow the IANA
// preferred names; aliases cover the spellings seen in the wild.
var codePages = []codePage{
	{"iso-8859-1", charmap.ISO8859_1, []string{"latin1", "l1", "ibm819", "cp819"}},
	{"iso-8859-2", charmap.ISO8859_2, []string{"latin2", "l2"}},
	{"iso-8859-3", charmap.ISO8859_3, []string{"latin3", "l3"}},
	{"iso-8859-4", charmap.ISO8859_4, []string{"latin4", "l4"}},
	{"iso-8859-5", charmap.ISO8859_5, []string{"cyrillic"}},
	{"iso-8859-6", charmap.ISO8859_6, []string{"arabic"}},
	{"iso-8859-7", charmap.ISO8859_7, []string{"greek", "greek8"}},
	{"iso-8859-8", charmap.ISO8859_8, []string{"hebrew"}},
	{"iso-8859-9", charmap.ISO8859_9, []string{"latin5", "l5"}},
	{"iso-8859-10", charmap.ISO8859_10, []string{"latin6", "l6"}},
	{"iso-8859-13", charmap.ISO8859_13, []string{"latin7"}},
	{"iso-8859-14", charmap.ISO8859_14, []string{"latin8"}},
	{"iso-8859-15", charmap.ISO8859_15, []string{"latin9"}},
	{"iso-8859-16", charmap.ISO8859_16, []string{"latin10"}},
	{"koi8-r", charmap.KOI8R, []string{"koi8"}},
	{"koi8-u", charmap.KOI8U, nil},
	{"windows-874", charmap.Windows874, []string{"cp874"}},
	{"windows-1250", charmap.Windows1250, []string{"cp1250"}},
	{"windows-1251", charmap.Windows1251, []string{"cp1251"}},
	{"windows-1252", charmap.Windows1252, []string{"cp1252"}},
	{"windows-1253", charmap.Windows1253, []string{"cp1253"}},
	{"windows-1254", charmap.Windows1254, []string{"cp1254"}},
	{"windows-1255", charmap.Windows1255, []string{"cp1255"}},
	{"windows-1256", charmap.Windows1256, []string{"cp1256"}},
	{"windows-1257", charmap.Windows1257, []string{"cp1257"}},
	{"windows-1258", charmap.Windows1258, []string{"cp1258"}},
	{"cp037", charmap.CodePage037, []string{"ibm037", "ebcdic-cp-us"}},
	{"cp437", charmap.CodePage437, []string{"ibm437"}},
	{"cp850", charmap.CodePage850, []string{"ibm850"}},
	{"cp852", charmap.CodePage852, []string{"ibm852"}},
	{"cp855", charmap.CodePage855, []string{"ibm855"}},
	{"cp858", charmap.CodePage858, nil},
	{"cp860", charmap.CodePage860, []string{"ibm860"}},
	{"cp862", charmap.CodePage862, []string{"ibm862"}},
	{"cp863", charmap.CodePage863, []string{"ibm863"}},
	{"cp865", charmap.CodePage865, []string{"ibm865"}},
	{"cp866", charmap.CodePage866, []string{"ibm866"}},
	{"cp1047", charmap.CodePage1047, []string{"ibm1047"}},
	{"cp1140", charmap.CodePage1140, []string{"ibm1140", "ebcdic-us-37+euro"}},
	{"macintosh", charmap.Macintosh, []string{"mac", "macroman"}},
	{"mac-cyrillic", charmap.MacintoshCyrillic, []string{"x-mac-cyrillic"}},
}

var byLowerName map[string]encoding.Encoding

func init() {
	byLowerName = make(map[string]encoding.Encoding, len(codePages)*2)
	for _, cp := range codePages {
		byLowerName[strings.ToLower(cp.name)] = cp.enc
		for _, alias := range cp.aliases {
			byLowerName[strings.ToLower(alias)] = cp.enc
		}
	}
}

// Provider is the single-byte table provider.
type Provider struct{}

func (Provider) Name() string { return "eightbit" }

// KnownIDs lists all catalog spellings, canonical names and aliases
// alike, in declaration order.
func (Provider) KnownIDs() []string {
	ids := make([]string, 0, len(codePages)*2)
	for _, cp := range codePages {
		ids = append(ids, cp.name)
		ids = append(ids, cp.aliases...)
	}
	return ids
}

// Open resolves id against the catalog, falling back to the IANA index
// for spellings the catalog does not list. The fallback only accepts
// single-byte charmap tables; multi-byte encodings belong to other
// providers.
func (Provider) Open(id string) (types.TableHandle, error) {
	if enc, ok := byLowerName[strings.ToLower(id)]; ok {
		return &handle{enc: enc}, nil
	}
	if enc, err := ianaindex.IANA.Encoding(id); err == nil && enc != nil {
		if _, ok := enc.(*charmap.Charmap); ok {
			return &handle{enc: enc}, nil
		}
	}
	return nil, fmt.Errorf("eightbit: no mapping table for %q", id)
}

type handle struct {
	enc encoding.Encoding
}

func (h *handle) DecodeToUTF16(src []byte) ([]uint16, error) {
	u8, err := h.enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, err
	}
	return utf16.Encode([]rune(string(u8))), nil
}

func (h *handle) EncodeFromUTF16(src []uint16) ([]byte, error) {
	return h.enc.NewEncoder().Bytes([]byte(string(utf16.Decode(src))))
}
