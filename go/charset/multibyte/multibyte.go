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

// Package multibyte is the table provider for multi-byte CJK code pages
// (Chinese and Korean). It is a catalog independent from the single-byte
// provider but presents the same UTF-16 code unit boundary. The Japanese
// wire formats are not here: they are stateful and handled by the cjk
// package.
package multibyte

import (
	"fmt"
	"strings"
	"unicode/utf16"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"recode.io/recode/go/charset/types"
)

type table struct {
	name    string
	enc     encoding.Encoding
	aliases []string
}

var tables = []table{
	{"gbk", simplifiedchinese.GBK, []string{"gb2312", "cp936", "ms936", "windows-936"}},
	{"gb18030", simplifiedchinese.GB18030, nil},
	{"hz-gb-2312", simplifiedchinese.HZGB2312, []string{"hzgb2312"}},
	{"big5", traditionalchinese.Big5, []string{"big-5", "cp950", "csbig5"}},
	{"euc-kr", korean.EUCKR, []string{"cp949", "uhc", "cseuckr"}},
}

// family holds the encodings this provider is allowed to serve; the
// WHATWG fallback lookup in Open must not capture names that belong to
// other providers.
var family map[encoding.Encoding]bool

var byLowerName map[string]encoding.Encoding

func init() {
	family = make(map[encoding.Encoding]bool, len(tables))
	byLowerName = make(map[string]encoding.Encoding, len(tables)*2)
	for _, t := range tables {
		family[t.enc] = true
		byLowerName[strings.ToLower(t.name)] = t.enc
		for _, alias := range t.aliases {
			byLowerName[strings.ToLower(alias)] = t.enc
		}
	}
}

// Provider is the multi-byte table provider.
type Provider struct{}

func (Provider) Name() string { return "multibyte" }

func (Provider) KnownIDs() []string {
	ids := make([]string, 0, len(tables)*2)
	for _, t := range tables {
		ids = append(ids, t.name)
		ids = append(ids, t.aliases...)
	}
	return ids
}

// Open resolves id against the catalog, then through the WHATWG label
// index for spellings the catalog does not list, accepting only
// encodings of this provider's family.
func (Provider) Open(id string) (types.TableHandle, error) {
	if enc, ok := byLowerName[strings.ToLower(id)]; ok {
		return &handle{enc: enc}, nil
	}
	if enc, _ := htmlcharset.Lookup(id); enc != nil && family[enc] {
		return &handle{enc: enc}, nil
	}
	return nil, fmt.Errorf("multibyte: no mapping table for %q", id)
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
