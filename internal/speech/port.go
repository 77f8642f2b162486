package speech

import (
	"context"
	"io"
)

type STTClient interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type TTSClient interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
