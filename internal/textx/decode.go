// Package textx decodes instruction notes and archive entry names that come
// from mixed platforms: UTF-8 with or without BOM, UTF-16 written by Windows
// Notepad, legacy CP949 (EUC-KR) and macOS decomposed Hangul.
//
// Decoding is permissive by design of the estimator: undecodable bytes turn
// into U+FFFD and no function here returns an error.
package textx

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts raw note bytes to NFC-normalized UTF-8 text.
func Decode(b []byte) string {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return NFC(strings.ToValidUTF8(string(b[len(bomUTF8):]), string(utf8.RuneError)))
	case bytes.HasPrefix(b, bomUTF16LE), bytes.HasPrefix(b, bomUTF16BE):
		return NFC(decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), b))
	case utf8.Valid(b):
		return NFC(string(b))
	default:
		return NFC(decodeWith(korean.EUCKR, b))
	}
}

// DecodeName converts an archive entry name. Names are either valid UTF-8
// (possibly decomposed) or CP949 from archivers that do not set the UTF-8 flag.
func DecodeName(name string) string {
	if utf8.ValidString(name) {
		return NFC(name)
	}
	return NFC(decodeWith(korean.EUCKR, []byte(name)))
}

// NFC composes decomposed Hangul so "한" typed on macOS matches "한" typed on Windows.
func NFC(s string) string {
	return norm.NFC.String(s)
}

func decodeWith(enc encoding.Encoding, b []byte) string {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return strings.ToValidUTF8(string(out), string(utf8.RuneError))
}
