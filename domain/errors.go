package domain

import (
	"errors"
	"net/http"
)

type ErrorKind string

const (
	KindInvalidRequest  ErrorKind = "InvalidRequest"
	KindSynthesisFailed ErrorKind = "SynthesisFailed"
	KindTranscodeFailed ErrorKind = "TranscodeFailed"
	KindInternal        ErrorKind = "InternalError"
)

const (
	MsgTextRequired    = "Invalid request, 'text' field is required."
	MsgInvalidFormat   = "Invalid format. Supported formats: 'wav', 'mp3'."
	MsgSynthesisFailed = "Error executing Piper command."
	MsgTranscodeFailed = "Error converting audio to MP3."
	msgInternalPrefix  = "An error occurred: "
)

// SpeechError is returned by every stage of the speech pipeline. Message is
// shown to the client; Details only for kinds that surface them.
type SpeechError struct {
	Kind    ErrorKind
	Message string
	Details string
	Err     error
}

func (e *SpeechError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *SpeechError) Unwrap() error {
	return e.Err
}

func (e *SpeechError) StatusCode() int {
	if e.Kind == KindInvalidRequest {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (e *SpeechError) Response() ErrorResponse {
	resp := ErrorResponse{Error: e.Message}
	if e.Kind == KindSynthesisFailed {
		details := e.Details
		resp.Details = &details
	}
	return resp
}

func NewInvalidRequest(msg string) *SpeechError {
	return &SpeechError{Kind: KindInvalidRequest, Message: msg}
}

func NewSynthesisFailed(stderr string, err error) *SpeechError {
	return &SpeechError{Kind: KindSynthesisFailed, Message: MsgSynthesisFailed, Details: stderr, Err: err}
}

// NewTranscodeFailed never carries the transcoder's stderr to the client.
func NewTranscodeFailed(err error) *SpeechError {
	return &SpeechError{Kind: KindTranscodeFailed, Message: MsgTranscodeFailed, Err: err}
}

func NewInternal(err error) *SpeechError {
	return &SpeechError{Kind: KindInternal, Message: msgInternalPrefix + err.Error(), Err: err}
}

// AsSpeechError classifies any error; unknown errors become InternalError.
func AsSpeechError(err error) *SpeechError {
	var se *SpeechError
	if errors.As(err, &se) {
		return se
	}
	return NewInternal(err)
}
