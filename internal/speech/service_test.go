package speech

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

type fakeTTS struct {
	audio []byte
	err   error
	calls int
}

func (f *fakeTTS) Synthesize(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.audio, f.err
}

type fakeSTT struct {
	text string
	err  error
}

func (f *fakeSTT) Transcribe(_ context.Context, _ io.Reader, _ string) (string, error) {
	return f.text, f.err
}

func TestSynthesize_EmptyRejectedBeforeCall(t *testing.T) {
	tts := &fakeTTS{}
	svc := NewService(&fakeSTT{}, tts)

	if _, err := svc.Synthesize(context.Background(), ""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
	if tts.calls != 0 {
		t.Errorf("upstream called %d times for empty input", tts.calls)
	}
}

func TestSynthesize_TooLongRejectedBeforeCall(t *testing.T) {
	tts := &fakeTTS{}
	svc := NewService(&fakeSTT{}, tts)

	if _, err := svc.Synthesize(context.Background(), strings.Repeat("a", MaxSynthesisChars+1)); !errors.Is(err, ErrTextTooLong) {
		t.Fatalf("err = %v, want ErrTextTooLong", err)
	}
	if tts.calls != 0 {
		t.Errorf("upstream called %d times for over-length input", tts.calls)
	}
}

func TestSynthesize_BoundaryLengthAccepted(t *testing.T) {
	tts := &fakeTTS{audio: []byte("mp3")}
	svc := NewService(&fakeSTT{}, tts)

	// multibyte runes: the limit is characters, not bytes
	text := strings.Repeat("あ", MaxSynthesisChars)
	audio, err := svc.Synthesize(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(audio) == 0 {
		t.Error("no audio returned")
	}
}

func TestSynthesize_UpstreamFailure(t *testing.T) {
	upstream := errors.New("voice unavailable")
	svc := NewService(&fakeSTT{}, &fakeTTS{err: upstream})

	_, err := svc.Synthesize(context.Background(), "hello")
	var se *SynthesisError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want SynthesisError", err)
	}
	if !errors.Is(err, upstream) {
		t.Errorf("upstream cause lost: %v", err)
	}
}

func TestTranscribe_PassThrough(t *testing.T) {
	svc := NewService(&fakeSTT{text: "hello"}, &fakeTTS{})
	got, err := svc.Transcribe(context.Background(), strings.NewReader("x"), "a.mp3")
	if err != nil || got != "hello" {
		t.Fatalf("got %q, %v", got, err)
	}
}
