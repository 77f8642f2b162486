package chat

import "errors"

// ErrNoInput means neither typed text nor audio yielded anything to work on.
var ErrNoInput = errors.New("No input")

// TranscriptionError wraps a failed speech-to-text call. The upstream
// diagnostic is kept verbatim.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string { return "Whisper error: " + e.Err.Error() }
func (e *TranscriptionError) Unwrap() error { return e.Err }

// CompletionError wraps a failed text-generation call.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string { return e.Err.Error() }
func (e *CompletionError) Unwrap() error { return e.Err }

// ExtractionError means the completion came back but no valid contract could
// be extracted from it.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return e.Err.Error() }
func (e *ExtractionError) Unwrap() error { return e.Err }
