package reel_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"samadhan-setu/services/reel-api/internal/domain/reel"
)

type formPart struct {
	field string
	value string
}

type filePart struct {
	field    string
	filename string
	content  []byte
}

func newUploadRequest(t *testing.T, parts []formPart, files []filePart) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, p := range parts {
		if err := writer.WriteField(p.field, p.value); err != nil {
			t.Fatalf("write field %s: %v", p.field, err)
		}
	}
	for _, f := range files {
		fw, err := writer.CreateFormFile(f.field, f.filename)
		if err != nil {
			t.Fatalf("create file part %s: %v", f.field, err)
		}
		if _, err := fw.Write(f.content); err != nil {
			t.Fatalf("write file part %s: %v", f.field, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/reel", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func validParts() []formPart {
	return []formPart{
		{"title", "Pothole"},
		{"description", "Large pothole on Main St"},
		{"by", "alice"},
	}
}

func videoFile(content []byte) []filePart {
	return []filePart{{field: "video", filename: "clip.mp4", content: content}}
}

func TestDecodeFormSingleValues(t *testing.T) {
	req := newUploadRequest(t, validParts(), videoFile([]byte("mp4-bytes")))

	form, err := reel.DecodeForm(req, 1<<20)
	if err != nil {
		t.Fatalf("DecodeForm: %v", err)
	}

	title, ok := form.Field("title").First()
	if !ok || title != "Pothole" {
		t.Errorf("Expected title 'Pothole', got %q (ok=%v)", title, ok)
	}
	if form.File("video") == nil {
		t.Error("Expected video attachment")
	}
	if form.File("video").Filename != "clip.mp4" {
		t.Errorf("Expected filename clip.mp4, got %s", form.File("video").Filename)
	}
}

func TestDecodeFormRepeatedFieldKeepsFirst(t *testing.T) {
	parts := append(validParts(), formPart{"title", "Second title"})
	req := newUploadRequest(t, parts, videoFile([]byte("x")))

	form, err := reel.DecodeForm(req, 1<<20)
	if err != nil {
		t.Fatalf("DecodeForm: %v", err)
	}

	values := form.Field("title")
	if len(values) != 2 {
		t.Fatalf("Expected 2 title values, got %d", len(values))
	}
	first, ok := values.First()
	if !ok || first != "Pothole" {
		t.Errorf("Expected first value 'Pothole', got %q", first)
	}
}

func TestDecodeFormAbsentField(t *testing.T) {
	req := newUploadRequest(t, validParts(), videoFile([]byte("x")))

	form, err := reel.DecodeForm(req, 1<<20)
	if err != nil {
		t.Fatalf("DecodeForm: %v", err)
	}

	values := form.Field("missing")
	if !values.Absent() {
		t.Error("Expected missing field to be absent")
	}
	if _, ok := values.First(); ok {
		t.Error("Expected First to report no value for absent field")
	}
}

func TestDecodeFormOversizedBody(t *testing.T) {
	req := newUploadRequest(t, validParts(), videoFile(bytes.Repeat([]byte("v"), 4096)))

	_, err := reel.DecodeForm(req, 128)
	if err == nil {
		t.Fatal("Expected decode error for oversized body")
	}

	var pipeErr *reel.PipelineError
	if !errors.As(err, &pipeErr) {
		t.Fatalf("Expected PipelineError, got %T", err)
	}
	if pipeErr.Kind != reel.KindDecode {
		t.Errorf("Expected decode kind, got %s", pipeErr.Kind)
	}
	if pipeErr.HTTPStatus() != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", pipeErr.HTTPStatus())
	}
}

func TestDecodeFormMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/reel", bytes.NewBufferString("not a form"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=deadbeef")

	_, err := reel.DecodeForm(req, 1<<20)
	if err == nil {
		t.Fatal("Expected decode error for malformed body")
	}

	var pipeErr *reel.PipelineError
	if !errors.As(err, &pipeErr) {
		t.Fatalf("Expected PipelineError, got %T", err)
	}
	if pipeErr.Kind != reel.KindDecode {
		t.Errorf("Expected decode kind, got %s", pipeErr.Kind)
	}
	if pipeErr.State != reel.StateRejected {
		t.Errorf("Expected rejected state, got %s", pipeErr.State)
	}
}
