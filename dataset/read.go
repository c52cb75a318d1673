package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRaw reads a source file. A missing, unreadable or blank file is
// reported as ErrFileAccess.
func ReadRaw(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileAccess, path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrFileAccess, path)
	}
	return b, nil
}

// ReadAll drains r and decodes it. Blank content is reported as ErrFileAccess.
func ReadAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return "", fmt.Errorf("%w: empty input", ErrFileAccess)
	}
	return Decode(b)
}

// Decode converts raw file content to a UTF-8 string. Exports from
// spreadsheet tools are frequently Windows-1252, so bytes that are not valid
// UTF-8 are decoded with that code page.
func Decode(b []byte) (string, error) {
	b = bytes.TrimPrefix(b, utf8BOM)
	if utf8.Valid(b) {
		return string(b), nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("%w: decode windows-1252: %w", ErrSchema, err)
	}
	return string(out), nil
}
