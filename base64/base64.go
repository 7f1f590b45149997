package base64

import "errors"

// ErrCorrupt is returned by strict encodings when the
// Base64-encoded input is incorrect.
var ErrCorrupt = errors.New("base64: input is corrupt")

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"-_"
)

// Decode table markers. Every other entry is a 6-bit value.
const (
	ignore  = 0xff
	padding = 0xfe
)

var (
	stdDecodeMap = newDecodeMap(stdAlphabet, '=')
	urlDecodeMap = newDecodeMap(urlAlphabet, -1)
)

// newDecodeMap builds the reverse lookup table for alphabet.
//
// If padChar is negative the table has no padding character and
// '=' is noise like any other byte outside the alphabet.
func newDecodeMap(alphabet string, padChar rune) *[256]byte {
	var m [256]byte
	for i := range m {
		m[i] = ignore
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}
	if padChar >= 0 {
		m[byte(padChar)] = padding
	}
	return &m
}

// StdEncoding is the standard Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
// and '=' as padding.
var StdEncoding = &Encoding{
	decodeMap: stdDecodeMap,
}

// URLEncoding is the base64url Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    -_
//
// It has no padding character: '=', '+' and '/' are noise.
var URLEncoding = &Encoding{
	decodeMap: urlDecodeMap,
}

// Encoding is a particular Base64 alphabet.
//
// See the package docs for a comparison with encoding/base64.
type Encoding struct {
	decodeMap *[256]byte
	strict    bool
}

// Strict returns an identical Encoding that operates in "strict"
// mode.
//
// A strict Encoding decodes exactly the same bytes as its lenient
// counterpart but reports ErrCorrupt if the input contains noise
// other than ' ', '\t', '\r', and '\n', a group with a single
// character, or non-zero padding bits (see section 3.5 of
// RFC 4648).
func (e Encoding) Strict() *Encoding {
	e.strict = true
	return &e
}

// DecodedLen returns the maximum length in bytes of n bytes of
// padded Base64-encoded data.
//
// It is the same as the package-level DecodedLen.
func (e *Encoding) DecodedLen(n int) int {
	return DecodedLen(n)
}

// DecodedLen returns the size of the buffer that Decode needs for
// n bytes of padded Base64-encoded data. Specifically, it returns
// n / 4 * 3, or zero if n < 4.
//
// The result assumes that every input byte is significant, so it
// is never smaller than the decoded length of a padded encoding.
// Unpadded input with a partial final group decodes to at most
// two more bytes; see DecodeString.
func DecodedLen(n int) int {
	if n < 4 {
		return 0
	}
	return n / 4 * 3
}

// maxDecodedLen returns the largest number of bytes that n bytes
// of input can decode to, padded or not.
func maxDecodedLen(n int) int {
	return n/4*3 + n%4*3/4
}

// Decode decodes src, writing at most len(dst) bytes to dst, and
// returns the number of bytes written.
//
// Bytes outside of the encoding's alphabet are skipped. Padding
// ends the current group early, so concatenated padded encodings
// decode as a whole. A group with a single character decodes to
// nothing. Decoded bytes that do not fit in dst are dropped; size
// dst with DecodedLen.
//
// The error is always nil unless e is strict.
//
// Decode does not allocate.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	return decode(dst, src, e.decodeMap, e.strict)
}

// DecodeString decodes s.
//
// Unlike Decode, it allocates enough space for unpadded input, so
// a partial final group is never truncated. Strict encodings
// return all decoded bytes along with ErrCorrupt.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	dst := make([]byte, maxDecodedLen(len(s)))
	n, err := e.Decode(dst, []byte(s))
	return dst[:n], err
}

// StdDecode decodes standard Base64 src into dst and returns the
// number of bytes written.
//
// It is equivalent to StdEncoding.Decode.
func StdDecode(dst, src []byte) int {
	n, _ := StdEncoding.Decode(dst, src)
	return n
}

// URLDecode decodes base64url src into dst and returns the number
// of bytes written.
//
// It is equivalent to URLEncoding.Decode.
func URLDecode(dst, src []byte) int {
	n, _ := URLEncoding.Decode(dst, src)
	return n
}

func decode(dst, src []byte, m *[256]byte, strict bool) (n int, err error) {
	var (
		buf    [4]byte // current group
		nb     int     // number of characters in buf
		failed bool
	)
	for _, c := range src {
		switch v := m[c]; v {
		case ignore:
			if strict && !isSpace(c) {
				failed = true
			}
			continue
		case padding:
			if nb == 0 {
				continue
			}
		default:
			buf[nb] = v
			nb++
			if nb < 4 {
				continue
			}
		}
		if strict && !validGroup(&buf, nb) {
			failed = true
		}
		n += flush(dst[n:], &buf, nb)
		buf = [4]byte{}
		nb = 0
	}
	if nb > 0 {
		if strict && !validGroup(&buf, nb) {
			failed = true
		}
		n += flush(dst[n:], &buf, nb)
	}
	if failed {
		err = ErrCorrupt
	}
	return n, err
}

// flush packs the nb 6-bit values in buf into nb-1 bytes, copies
// as many of them as fit into dst, and returns the number copied.
//
// nb must be in [1, 4]. Unused entries in buf must be zero.
func flush(dst []byte, buf *[4]byte, nb int) int {
	out := [3]byte{
		buf[0]<<2 | buf[1]>>4,
		buf[1]<<4 | buf[2]>>2,
		buf[2]<<6 | buf[3],
	}
	return copy(dst, out[:nb-1])
}

// validGroup reports whether a group of nb characters is a
// canonical encoding.
func validGroup(buf *[4]byte, nb int) bool {
	switch nb {
	case 1:
		return false
	case 2:
		// Bits [4:0] are padding.
		return buf[1]&0x0f == 0
	case 3:
		// Bits [2:0] are padding.
		return buf[2]&0x03 == 0
	default:
		return true
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
