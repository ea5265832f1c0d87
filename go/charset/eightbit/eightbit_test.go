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

package eightbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownIDs(t *testing.T) {
	ids := Provider{}.KnownIDs()
	require.NotEmpty(t, ids)

	index := make(map[string]bool, len(ids))
	for _, id := range ids {
		assert.False(t, index[id], "catalog reports %q twice", id)
		index[id] = true
	}

	// Canonical names and aliases are both reported; the registry
	// treats each spelling as its own identifier.
	for _, id := range []string{"iso-8859-1", "latin1", "koi8-r", "cp437", "windows-1251", "macintosh"} {
		assert.True(t, index[id], "catalog should report %q", id)
	}
}

func TestOpenIsCaseInsensitive(t *testing.T) {
	for _, id := range []string{"iso-8859-1", "ISO-8859-1", "Latin1"} {
		h, err := Provider{}.Open(id)
		require.NoError(t, err, "Open(%q)", id)
		require.NotNil(t, h)
	}
}

func TestOpenUnknown(t *testing.T) {
	_, err := Provider{}.Open("no-such-codepage")
	assert.Error(t, err)
}

func TestOpenIANAFallback(t *testing.T) {
	// csISOLatin1 is an IANA-registered alias the catalog does not list;
	// the fallback resolves it to the same table as iso-8859-1.
	h, err := Provider{}.Open("csISOLatin1")
	require.NoError(t, err)

	units, err := h.DecodeToUTF16([]byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, []uint16{'c', 'a', 'f', 0xE9}, units)
}

func TestOpenIANAFallbackRejectsMultiByte(t *testing.T) {
	// The IANA index knows shift_jis, but it is not a single-byte table
	// and must not be served from here.
	_, err := Provider{}.Open("shift_jis")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		id     string
		native []byte
		units  []uint16
	}{
		{"iso-8859-1", []byte{'c', 'a', 'f', 0xE9}, []uint16{'c', 'a', 'f', 0xE9}},
		{"koi8-r", []byte{0xCD, 0xC9, 0xD2}, []uint16{0x043C, 0x0438, 0x0440}}, // мир
		{"cp437", []byte{0xE1}, []uint16{0x00DF}},                              // ß
		{"cp037", []byte{0xC8, 0x85, 0x93, 0x93, 0x96}, []uint16{'H', 'e', 'l', 'l', 'o'}},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			h, err := Provider{}.Open(tc.id)
			require.NoError(t, err)

			units, err := h.DecodeToUTF16(tc.native)
			require.NoError(t, err)
			assert.Equal(t, tc.units, units)

			native, err := h.EncodeFromUTF16(tc.units)
			require.NoError(t, err)
			assert.Equal(t, tc.native, native)
		})
	}
}

func TestEncodeUnmappable(t *testing.T) {
	h, err := Provider{}.Open("iso-8859-1")
	require.NoError(t, err)

	// U+4E2D has no latin-1 mapping; the failure propagates instead of
	// being silently substituted.
	_, err = h.EncodeFromUTF16([]uint16{0x4E2D})
	assert.Error(t, err)
}
