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

package cjk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	utf8Nihongo = []byte("日本語")
	sjisNihongo = []byte{0x93, 0xFA, 0x96, 0x7B, 0x8C, 0xEA}
	jisNihongo  = []byte{0x1B, 0x24, 0x42, 0x46, 0x7C, 0x4B, 0x5C, 0x38, 0x6C, 0x1B, 0x28, 0x42}
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"sjis", FormatSJIS, true},
		{"SJIS", FormatSJIS, true},
		{"shift_jis", FormatSJIS, true},
		{"euc-jp", FormatEUCJP, true},
		{"iso-2022-jp", FormatISO2022JP, true},
		{"jis", FormatJIS, true},
		{"euc-kr", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseFormat(%q)", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseFormat(%q)", tt.in)
		}
	}
}

func TestNewCodecUnknownFormat(t *testing.T) {
	_, err := Provider{}.NewCodec("euc-kr")
	assert.Error(t, err)
}

func TestRoundTrips(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			codec, err := Provider{}.NewCodec(format)
			require.NoError(t, err)

			native, err := codec.EncodeFromUTF8(utf8Nihongo)
			require.NoError(t, err)

			back, err := codec.DecodeToUTF8(native)
			require.NoError(t, err)
			assert.Equal(t, utf8Nihongo, back)
		})
	}
}

func TestSJISBytes(t *testing.T) {
	codec, err := Provider{}.NewCodec("sjis")
	require.NoError(t, err)

	out, err := codec.EncodeFromUTF8(utf8Nihongo)
	require.NoError(t, err)
	assert.Equal(t, sjisNihongo, out)
}

func TestJISMatchesISO2022JP(t *testing.T) {
	jis, err := Provider{}.NewCodec("jis")
	require.NoError(t, err)
	iso, err := Provider{}.NewCodec("iso-2022-jp")
	require.NoError(t, err)

	a, err := jis.EncodeFromUTF8(utf8Nihongo)
	require.NoError(t, err)
	b, err := iso.EncodeFromUTF8(utf8Nihongo)
	require.NoError(t, err)

	assert.Equal(t, b, a)
	assert.Equal(t, jisNihongo, a)
}
