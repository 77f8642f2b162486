package speech

import (
	"context"
	"errors"
	"io"
	"unicode/utf8"
)

// MaxSynthesisChars is the hard ceiling on synthesizable text, counted in
// characters, not bytes.
const MaxSynthesisChars = 4000

var (
	ErrEmptyText   = errors.New("empty text")
	ErrTextTooLong = errors.New("too long")
)

// SynthesisError wraps an upstream text-to-speech failure after the fallback
// call has also failed.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string { return e.Err.Error() }
func (e *SynthesisError) Unwrap() error { return e.Err }

type Service struct {
	stt STTClient
	tts TTSClient
}

func NewService(stt STTClient, tts TTSClient) *Service {
	return &Service{
		stt: stt,
		tts: tts,
	}
}

func (s *Service) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	return s.stt.Transcribe(ctx, audio, filename)
}

// Synthesize enforces the 1..4000 character input window before any outbound
// call is made.
func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxSynthesisChars {
		return nil, ErrTextTooLong
	}

	audio, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		return nil, &SynthesisError{Err: err}
	}
	return audio, nil
}
