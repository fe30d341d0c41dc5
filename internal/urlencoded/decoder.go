package urlencoded

import (
	"bytes"

	"github.com/indigo-web/tinyserve/http/status"
	"github.com/indigo-web/tinyserve/internal/hexconv"
)

// Decode decodes percent-encoded sequences of src into dst. If there's nothing to decode,
// src is returned as is and dst stays untouched.
func Decode(src, dst []byte) (decoded, buffer []byte, err error) {
	return decode(src, dst, false)
}

// ExtendedDecode is the same as Decode, but on top also decodes + as spaces, as
// application/x-www-form-urlencoded requires.
func ExtendedDecode(src, dst []byte) (decoded, buffer []byte, err error) {
	return decode(src, dst, true)
}

func decode(src, dst []byte, plusAsSpace bool) (decoded, buffer []byte, err error) {
	next := func(src []byte) int {
		if plusAsSpace {
			return bytes.IndexAny(src, "%+")
		}

		return bytes.IndexByte(src, '%')
	}

	special := next(src)
	if special == -1 {
		return src, dst, nil
	}

	head := len(dst)

	for special != -1 {
		dst = append(dst, src[:special]...)

		if src[special] == '+' {
			dst = append(dst, ' ')
			src = src[special+1:]
			special = next(src)
			continue
		}

		if special+2 >= len(src) {
			return nil, dst, status.ErrURLDecoding
		}

		a, b := hexconv.Halfbyte[src[special+1]], hexconv.Halfbyte[src[special+2]]
		if a|b > 0x0f {
			return nil, dst, status.ErrURLDecoding
		}

		dst = append(dst, a<<4|b)
		src = src[special+3:]
		special = next(src)
	}

	dst = append(dst, src...)
	return dst[head:], dst, nil
}
