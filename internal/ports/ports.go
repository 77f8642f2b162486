package ports

import (
	"context"

	"github.com/twintalk/twin-talk/internal/chat"
	"github.com/twintalk/twin-talk/internal/contract"
)

type ChatService interface {
	Respond(ctx context.Context, req chat.Request) (contract.Contract, error)
}

type SpeechService interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
