package unicode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// UTF-7 per RFC 2152: printable ASCII passes through directly, everything
// else travels in shifted sections of modified base64 over big-endian
// UTF-16 code units. A section starts with '+' and ends at '-' (absorbed)
// or at the first character outside the base64 alphabet (kept). "+-"
// denotes a literal '+'.

func isBase64(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '+' || c == '/'
}

func decodeUTF7(src []byte) ([]byte, error) {
	var out []byte
	var buf [utf8.UTFMax]byte
	i := 0
	for i < len(src) {
		c := src[i]
		if c != '+' {
			out = append(out, c)
			i++
			continue
		}
		i++
		if i < len(src) && src[i] == '-' {
			out = append(out, '+')
			i++
			continue
		}
		start := i
		for i < len(src) && isBase64(src[i]) {
			i++
		}
		units, err := decodeShifted(src[start:i])
		if err != nil {
			return nil, err
		}
		for _, r := range utf16.Decode(units) {
			out = append(out, buf[:utf8.EncodeRune(buf[:], r)]...)
		}
		if i < len(src) && src[i] == '-' {
			i++
		}
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// shiftedB64 decodes strictly so that non-zero bits after the last code
// unit are reported instead of dropped.
var shiftedB64 = base64.RawStdEncoding.Strict()

func decodeShifted(section []byte) ([]uint16, error) {
	if len(section) == 0 {
		return nil, nil
	}
	raw := make([]byte, shiftedB64.DecodedLen(len(section)))
	n, err := shiftedB64.Decode(raw, section)
	if err != nil {
		return nil, fmt.Errorf("utf7: %v", err)
	}
	raw = raw[:n]
	if n%2 == 1 {
		// Trailing bits that do not fill a code unit must be zero.
		if raw[n-1] != 0 {
			return nil, errors.New("utf7: non-zero trailing bits in shifted section")
		}
		raw = raw[:n-1]
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}
	return units, nil
}

// isDirect reports whether r may be written without shifting. The set is
// the RFC 2152 direct characters plus space and common whitespace.
func isDirect(r rune) bool {
	if r > 0x7F {
		return false
	}
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '\'', '(', ')', ',', '-', '.', '/', ':', '?', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func encodeUTF7(src []byte) []byte {
	out := []byte{}
	var run []rune

	flush := func() {
		if len(run) == 0 {
			return
		}
		units := utf16.Encode(run)
		raw := make([]byte, len(units)*2)
		for i, u := range units {
			raw[2*i] = byte(u >> 8)
			raw[2*i+1] = byte(u)
		}
		out = append(out, '+')
		out = append(out, base64.RawStdEncoding.EncodeToString(raw)...)
		out = append(out, '-')
		run = run[:0]
	}

	for _, r := range string(src) {
		switch {
		case r == '+':
			flush()
			out = append(out, '+', '-')
		case isDirect(r):
			flush()
			out = append(out, byte(r))
		default:
			run = append(run, r)
		}
	}
	flush()
	return out
}
