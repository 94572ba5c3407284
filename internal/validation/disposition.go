package validation

import (
	"fmt"
	"html"
	"mime"
	"net/url"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Disposition is a parsed Content-Disposition header of one multipart section.
// An RFC 5987 filename* parameter is decoded into FileName when its charset is
// known. ExtendedFileName records that the parameter was present even when it
// could not be decoded.
type Disposition struct {
	Type             string
	Name             string
	FileName         string
	ExtendedFileName bool
}

// ParseDisposition parses header. An empty or unparseable header yields ErrMalformedDisposition.
func ParseDisposition(header string) (Disposition, error) {
	if strings.TrimSpace(header) == "" {
		return Disposition{}, ErrMalformedDisposition
	}

	typ, params, err := mime.ParseMediaType(header)
	if err != nil {
		return Disposition{}, fmt.Errorf("%w: %v", ErrMalformedDisposition, err)
	}

	d := Disposition{
		Type:     typ,
		Name:     params["name"],
		FileName: params["filename"],
	}

	if raw, ok := extendedParam(header, "filename*"); ok {
		d.ExtendedFileName = true
		if d.FileName == "" {
			d.FileName = decodeExtended(raw)
		}
	}

	return d, nil
}

// IsPlainFormField reports whether d is a form-data section carrying no file.
func IsPlainFormField(d Disposition) bool {
	return d.Type == "form-data" && d.FileName == "" && !d.ExtendedFileName
}

// extendedParam returns the raw value of the named parameter. mime.ParseMediaType
// drops extended values whose charset is not UTF-8 or US-ASCII.
func extendedParam(header, name string) (string, bool) {
	_, rest, _ := strings.Cut(header, ";")
	for _, p := range strings.Split(rest, ";") {
		k, v, found := strings.Cut(p, "=")
		if found && strings.EqualFold(strings.TrimSpace(k), name) {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// decodeExtended decodes charset'language'percent-encoded. It returns "" when
// the value is malformed or the charset is unknown.
func decodeExtended(v string) string {
	parts := strings.SplitN(v, "'", 3)
	if len(parts) != 3 {
		return ""
	}

	raw, err := url.PathUnescape(parts[2])
	if err != nil {
		return ""
	}

	enc, err := ianaindex.MIME.Encoding(parts[0])
	if err != nil || enc == nil {
		return ""
	}

	decoded, err := enc.NewDecoder().String(raw)
	if err != nil {
		return ""
	}
	return decoded
}

// DisplayName returns the declared filename HTML-escaped for logs.
// It is never a safe filesystem path.
func (d Disposition) DisplayName() string {
	return html.EscapeString(d.FileName)
}
