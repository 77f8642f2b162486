package chat

import (
	"context"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/twintalk/twin-talk/internal/contract"
	"github.com/twintalk/twin-talk/internal/policy"
)

// Request is the raw per-request input unit. When Audio is non-nil it takes
// precedence over Text; the typed text is ignored.
type Request struct {
	Text       string
	Audio      io.Reader
	AudioName  string
	Mode       string
	TargetLang string
	ClientIP   string
}

// Service drives the pipeline end-to-end: transcription when audio is
// present, policy selection, one contract-driven completion, extraction and
// validation. Requests are handled synchronously; the service holds no
// per-request state.
type Service struct {
	transcriber Transcriber
	completer   Completer
	events      EventSink
}

func NewService(transcriber Transcriber, completer Completer, events EventSink) *Service {
	return &Service{
		transcriber: transcriber,
		completer:   completer,
		events:      events,
	}
}

func (s *Service) Respond(ctx context.Context, req Request) (contract.Contract, error) {
	userText := strings.TrimSpace(req.Text)

	if req.Audio != nil {
		text, err := s.transcriber.Transcribe(ctx, req.Audio, req.AudioName)
		if err != nil {
			s.events.Event("WHISPER_ERR", req.ClientIP, err.Error())
			return contract.Contract{}, &TranscriptionError{Err: err}
		}
		userText = strings.TrimSpace(text)
	}

	if userText == "" {
		return contract.Contract{}, ErrNoInput
	}

	s.events.Event("INPUT", req.ClientIP, userText)

	pol := policy.Select(req.Mode)

	payload, err := json.Marshal(struct {
		Text       string `json:"text"`
		TargetLang string `json:"target_lang"`
	}{
		Text:       userText,
		TargetLang: strings.TrimSpace(req.TargetLang),
	})
	if err != nil {
		return contract.Contract{}, fmt.Errorf("marshal user payload: %w", err)
	}

	raw, err := s.completer.Complete(ctx, pol.Instruction, string(payload))
	if err != nil {
		s.events.Event("GPT_ERR", req.ClientIP, err.Error())
		return contract.Contract{}, &CompletionError{Err: err}
	}

	c, err := contract.Extract(raw)
	if err != nil {
		s.events.Event("GPT_ERR", req.ClientIP, err.Error())
		return contract.Contract{}, &ExtractionError{Err: err}
	}
	return c, nil
}
