// Package base64 implements lenient base64 and base64url decoding
// of the alphabets specified by RFC 4648.
//
// Comparison to encoding/base64
//
// This package only decodes. It is meant for input that has been
// through mail systems, terminals, or configuration files, where
// line breaks and stray characters are common.
//
// Unlike encoding/base64, this package skips every byte that is
// not part of the alphabet instead of rejecting it. For example:
//
//    src := []byte("QUJD\r\nRA==")
//    dst := make([]byte, DecodedLen(len(src)))
//    StdDecode(dst, src) // 4: "ABCD"
//
// Unlike encoding/base64, padding is optional and may appear in
// the middle of the input. Each padding character ends the current
// 4-character group, so "QQ==QUI=" decodes to "AAB".
//
// Unlike encoding/base64, URLEncoding has no padding character:
// '=' is skipped like any other noise.
//
// Errors are only reported by strict encodings (see
// Encoding.Strict), and even then the decoded bytes are the same.
package base64
