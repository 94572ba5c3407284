package validation

import (
	"bytes"
	"io"
)

// ReadAndValidateSection buffers r fully and validates it as the file named by d.
// r is always drained, so the caller can advance to the next section whatever the
// outcome. Content of exactly sizeLimit bytes is accepted.
func ReadAndValidateSection(r io.Reader, d Disposition, permitted []string, sizeLimit int64) ([]byte, Errors) {
	var buf bytes.Buffer

	if _, err := io.Copy(&buf, io.LimitReader(r, sizeLimit+1)); err != nil {
		io.Copy(io.Discard, r)
		return nil, Single(FieldFile, MsgUploadFailed)
	}

	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, Single(FieldFile, MsgUploadFailed)
	}

	switch {
	case buf.Len() == 0:
		return nil, Single(FieldFile, MsgEmpty)
	case int64(buf.Len()) > sizeLimit:
		return nil, Single(FieldFile, MsgTooLarge)
	}

	data := buf.Bytes()

	ok, err := ValidateFileContent(d.FileName, data, permitted)
	if err != nil {
		return nil, Single(FieldFile, MsgUploadFailed)
	}
	if !ok {
		return nil, Single(FieldFile, MsgNotPermitted)
	}

	return data, nil
}
