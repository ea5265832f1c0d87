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

package unicode

import (
	"fmt"

	xunicode "golang.org/x/text/encoding/unicode"
)

var utf16be = xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)

// swappedMarker is the byte-order marker as it appears when the producer
// wrote the opposite byte order from ours. Only this value triggers a
// byte swap; see the package comment.
const swappedMarker = 0xFFFE

// unitsOf16 parses src into 16-bit code units, normalizing byte order.
func unitsOf16(src []byte, f Form) ([]uint16, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("%v: input length %d is not a multiple of 2", f, len(src))
	}
	units := make([]uint16, len(src)/2)
	for i := range units {
		units[i] = uint16(src[2*i])<<8 | uint16(src[2*i+1])
	}
	if len(units) > 0 && units[0] == swappedMarker {
		for i, u := range units {
			units[i] = u<<8 | u>>8
		}
	}
	return units, nil
}

// encodeUTF16BE serializes UTF-8 input as big-endian UTF-16.
func encodeUTF16BE(src []byte) ([]byte, error) {
	return utf16be.NewEncoder().Bytes(src)
}
