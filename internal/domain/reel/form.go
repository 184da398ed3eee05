package reel

import (
	"mime/multipart"
	"net/http"
)

// maxParseMemory bounds how much of the multipart body the parser keeps
// in memory; larger parts spill to temp files.
const maxParseMemory = 10 << 20

// TextValues models a multipart text field as an explicit
// absent/one/many union. Browsers may repeat a field; the pipeline keeps
// the first value and drops the rest.
type TextValues []string

// Absent reports whether the field was not submitted at all.
func (v TextValues) Absent() bool {
	return len(v) == 0
}

// First returns the first submitted value, if any.
func (v TextValues) First() (string, bool) {
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Form is a decoded multipart request body: named text fields plus named
// file attachments.
type Form struct {
	values map[string]TextValues
	files  map[string][]*multipart.FileHeader
}

// DecodeForm parses the request body as a multipart form, refusing
// bodies larger than maxBytes. A malformed, truncated, or oversized body
// yields a decode PipelineError and leaves no other trace.
func DecodeForm(r *http.Request, maxBytes int64) (*Form, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxParseMemory); err != nil {
		return nil, rejected(KindDecode, err.Error(), err)
	}

	form := &Form{
		values: make(map[string]TextValues, len(r.MultipartForm.Value)),
		files:  r.MultipartForm.File,
	}
	for name, vals := range r.MultipartForm.Value {
		form.values[name] = TextValues(vals)
	}
	return form, nil
}

// Field returns the union of text values submitted under name.
func (f *Form) Field(name string) TextValues {
	return f.values[name]
}

// File returns the first attachment submitted under name, or nil.
func (f *Form) File(name string) *multipart.FileHeader {
	headers := f.files[name]
	if len(headers) == 0 {
		return nil
	}
	return headers[0]
}
