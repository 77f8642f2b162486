package chat

import (
	"context"
	"io"
)

type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type Completer interface {
	Complete(ctx context.Context, instruction, userPayload string) (string, error)
}

// EventSink receives the append-only diagnostic events (INPUT, WHISPER_ERR,
// GPT_ERR) emitted along the pipeline.
type EventSink interface {
	Event(action, clientIP, info string)
}
