package validation

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
)

var textExtensions = []string{".txt", ".csv", ".prn"}

// signatures lists the accepted leading bytes per binary extension.
// It is read-only after package initialization.
var signatures = map[string][][]byte{
	".gif": {
		{0x47, 0x49, 0x46, 0x38},
	},
	".png": {
		{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
	},
	".jpeg": {
		{0xFF, 0xD8, 0xFF, 0xE0},
		{0xFF, 0xD8, 0xFF, 0xE2},
		{0xFF, 0xD8, 0xFF, 0xE3},
	},
	".jpg": {
		{0xFF, 0xD8, 0xFF, 0xE0},
		{0xFF, 0xD8, 0xFF, 0xE1},
		{0xFF, 0xD8, 0xFF, 0xE8},
	},
	".zip": {
		{0x50, 0x4B, 0x03, 0x04},
		{0x50, 0x4B, 0x4C, 0x49, 0x54, 0x45},
		{0x50, 0x4B, 0x53, 0x70, 0x58},
		{0x50, 0x4B, 0x05, 0x06},
		{0x50, 0x4B, 0x07, 0x08},
		{0x57, 0x69, 0x6E, 0x5A, 0x69, 0x70},
	},
}

// Signatures returns copies of the signatures registered for ext.
func Signatures(ext string) [][]byte {
	sigs := signatures[strings.ToLower(ext)]
	out := make([][]byte, len(sigs))
	for i, s := range sigs {
		out[i] = bytes.Clone(s)
	}
	return out
}

// Extension returns the lower-cased extension of name including the leading dot.
func Extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// ValidateFileContent reports whether data is acceptable content for fileName.
//
// Text extensions (.txt, .csv, .prn) must contain only bytes in 0..127, further
// restricted to allowedChars when any are given. Binary extensions must begin with one
// of their registered signatures. A permitted extension with no rule returns
// ErrUnknownExtension.
func ValidateFileContent(fileName string, data []byte, permitted []string, allowedChars ...byte) (bool, error) {
	if fileName == "" || len(data) == 0 {
		return false, nil
	}

	ext := Extension(fileName)
	if ext == "" || !slices.Contains(permitted, ext) {
		return false, nil
	}

	if slices.Contains(textExtensions, ext) {
		return validText(data, allowedChars), nil
	}

	sigs, ok := signatures[ext]
	if !ok {
		return false, ErrUnknownExtension
	}

	for _, sig := range sigs {
		if bytes.HasPrefix(data, sig) {
			return true, nil
		}
	}
	return false, nil
}

func validText(data, allowedChars []byte) bool {
	for _, b := range data {
		if b > 127 {
			return false
		}
		if len(allowedChars) > 0 && bytes.IndexByte(allowedChars, b) < 0 {
			return false
		}
	}
	return true
}
