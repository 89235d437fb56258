package strutil

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ToUTF16 encodes a UTF-8 string as little-endian UTF-16 without a BOM.
func ToUTF16(s string) ([]byte, error) {
	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("utf16 encode: %w", err)
	}
	return out, nil
}

// ToUTF8 decodes little-endian UTF-16 into a UTF-8 string.
func ToUTF8(wide []byte) (string, error) {
	if len(wide)%2 != 0 {
		return "", fmt.Errorf("utf16 decode: odd byte count %d", len(wide))
	}
	out, err := utf16le.NewDecoder().Bytes(wide)
	if err != nil {
		return "", fmt.Errorf("utf16 decode: %w", err)
	}
	return string(out), nil
}

// Normalize returns s in Unicode normalization form C.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
