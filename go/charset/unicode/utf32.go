package unicode

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode/utf32"
)

var utf32be = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)

// swappedMarker32 is the byte-swapped marker for 32-bit units.
const swappedMarker32 = 0xFFFE0000

func decodeUCS4(src []byte) ([]byte, error) {
	if len(src)%4 != 0 {
		return nil, fmt.Errorf("ucs4: input length %d is not a multiple of 4", len(src))
	}
	words := make([]uint32, len(src)/4)
	for i := range words {
		words[i] = uint32(src[4*i])<<24 | uint32(src[4*i+1])<<16 | uint32(src[4*i+2])<<8 | uint32(src[4*i+3])
	}
	if len(words) > 0 && words[0] == swappedMarker32 {
		for i, w := range words {
			words[i] = w<<24 | w<<8&0x00FF0000 | w>>8&0x0000FF00 | w>>24
		}
	}
	out := make([]byte, 0, len(words)*3)
	var buf [utf8.UTFMax]byte
	for _, w := range words {
		r := rune(w)
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		out = append(out, buf[:utf8.EncodeRune(buf[:], r)]...)
	}
	return out, nil
}

func encodeUCS4(src []byte) ([]byte, error) {
	return utf32be.NewEncoder().Bytes(src)
}
