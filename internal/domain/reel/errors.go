package reel

import (
	"fmt"
	"net/http"
)

// Kind categorises pipeline failures.
type Kind string

const (
	KindDecode      Kind = "decode"
	KindValidation  Kind = "validation"
	KindRecordStore Kind = "record_store"
	KindBlobStore   Kind = "blob_store"
	KindInternal    Kind = "internal"
)

// State is a position in the upload pipeline.
type State string

const (
	StateReceived      State = "received"
	StateValidated     State = "validated"
	StateRecordCreated State = "record_created"
	StateUploaded      State = "uploaded"
	StatePublished     State = "published"

	// Terminal failure states. Rejected means no store was touched;
	// Failed means a partial write may have occurred.
	StateRejected State = "rejected"
	StateFailed   State = "failed"
)

// PipelineError is the single error type crossing the orchestrator
// boundary. Public carries the caller-visible message; the wrapped cause
// stays server-side in logs.
type PipelineError struct {
	Kind   Kind
	State  State
	Public string
	Err    error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s][%s] %s: %v", e.Kind, e.State, e.Public, e.Err)
	}
	return fmt.Sprintf("[%s][%s] %s", e.Kind, e.State, e.Public)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to a response status.
func (e *PipelineError) HTTPStatus() int {
	switch e.Kind {
	case KindDecode, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func rejected(kind Kind, public string, err error) *PipelineError {
	return &PipelineError{Kind: kind, State: StateRejected, Public: public, Err: err}
}

func failed(kind Kind, public string, err error) *PipelineError {
	return &PipelineError{Kind: kind, State: StateFailed, Public: public, Err: err}
}
