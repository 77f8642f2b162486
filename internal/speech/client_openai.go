package speech

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient covers both audio capabilities: Whisper transcription and
// speech synthesis. The two directions carry separate timeouts, so each gets
// its own underlying client over the same key.
type OpenAIClient struct {
	stt *openai.Client
	tts *openai.Client

	whisperModel string
	ttsModel     string
}

func NewOpenAIClient(apiKey, whisperModel, ttsModel string, sttTimeout, ttsTimeout time.Duration) *OpenAIClient {
	sttCfg := openai.DefaultConfig(apiKey)
	sttCfg.HTTPClient = &http.Client{Timeout: sttTimeout}
	ttsCfg := openai.DefaultConfig(apiKey)
	ttsCfg.HTTPClient = &http.Client{Timeout: ttsTimeout}

	return &OpenAIClient{
		stt:          openai.NewClientWithConfig(sttCfg),
		tts:          openai.NewClientWithConfig(ttsCfg),
		whisperModel: whisperModel,
		ttsModel:     ttsModel,
	}
}

// Transcribe sends the named audio blob to Whisper and returns the plain
// text. The filename is passed through so the upstream can recognize the
// container format; format errors come back as upstream errors.
func (c *OpenAIClient) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	resp, err := c.stt.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.whisperModel,
		Reader:   audio,
		FilePath: filename,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

// Synthesize renders text with the fixed voice and mp3 output. When the
// full-parameter call is rejected (older service revisions do not accept a
// response format) it falls back once to a reduced call.
func (c *OpenAIClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.ttsModel),
		Input:          text,
		Voice:          openai.VoiceAlloy,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}

	resp, err := c.tts.CreateSpeech(ctx, req)
	if err != nil {
		req.ResponseFormat = ""
		resp, err = c.tts.CreateSpeech(ctx, req)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Close()

	return io.ReadAll(resp)
}
