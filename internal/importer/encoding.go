package importer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// namedEncodings maps the user-facing encoding names to decoders.
// Bank exports are not reliably UTF-8: KB card files ship EUC-KR, and
// older Windows exports arrive as CP1252.
var namedEncodings = map[string]encoding.Encoding{
	"utf-8":   unicode.UTF8,
	"utf8":    unicode.UTF8,
	"euc-kr":  korean.EUCKR,
	"euckr":   korean.EUCKR,
	"cp949":   korean.EUCKR,
	"cp1252":  charmap.Windows1252,
	"latin-1": charmap.ISO8859_1,
	"latin1":  charmap.ISO8859_1,
}

// DecodeContent converts raw file bytes to a UTF-8 string. An empty
// encodingName assumes UTF-8; in every case a leading byte-order mark is
// honored and stripped before the import pipeline sees the text.
func DecodeContent(data []byte, encodingName string) (string, error) {
	enc := unicode.UTF8
	if encodingName != "" {
		named, ok := namedEncodings[strings.ToLower(strings.TrimSpace(encodingName))]
		if !ok {
			return "", fmt.Errorf("unsupported encoding %q", encodingName)
		}
		enc = named
	}

	r := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(enc.NewDecoder()))
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode content as %s: %w", encodingName, err)
	}

	return strings.TrimPrefix(string(decoded), "\uFEFF"), nil
}
