// Package validation inspects multipart upload requests: boundary extraction,
// content-disposition classification, and byte-level content checks against
// extension allow-lists and magic-byte signatures.
package validation

import "errors"

var (
	// ErrMalformedRequest rejects a request before any section is read.
	ErrMalformedRequest = errors.New("malformed multipart request")

	ErrMalformedDisposition = errors.New("malformed content-disposition header")

	// ErrUnknownExtension is returned for a permitted extension that has neither a
	// text rule nor a signature entry.
	ErrUnknownExtension = errors.New("no content rule for extension")
)

// FieldFile is the field every upload message is reported under.
const FieldFile = "File"

// Messages reported to clients under FieldFile.
const (
	MsgNotMultipart     = "Couldn't process"
	MsgMalformedSection = "The request couldn't be processed (Error 1)."
	MsgPlainField       = "The request couldn't be processed (Error 2)."
	MsgEmpty            = "The file is empty"
	MsgTooLarge         = "The file exceeds its limitation"
	MsgNotPermitted     = "The file type isn't permitted"
	MsgUploadFailed     = "The upload failed"
)

// Errors maps a field name to its messages. A nil or empty Errors is valid.
type Errors map[string][]string

// Add appends msg under field, allocating the map on first use.
func (e *Errors) Add(field, msg string) {
	if *e == nil {
		*e = make(Errors)
	}
	(*e)[field] = append((*e)[field], msg)
}

func (e Errors) Valid() bool {
	return len(e) == 0
}

// Single builds an Errors holding one message.
func Single(field, msg string) Errors {
	return Errors{field: {msg}}
}
