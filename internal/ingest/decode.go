package ingest

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText converts raw file bytes to a UTF-8 string. Valid UTF-8 passes
// through; anything else is reinterpreted as Latin-1, which accepts every
// byte sequence, so a bad export never fails the batch.
func decodeText(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// Latin-1 maps all 256 byte values; keep the raw bytes if the
		// decoder still refuses.
		return string(raw)
	}
	return string(decoded)
}
