package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config is read once from the environment at startup and shared read-only
// afterwards. godotenv is loaded by main before Load runs.
type Config struct {
	Addr string

	OpenAIKey    string
	WhisperModel string
	GPTModel     string
	TTSModel     string

	// Each upstream capability gets its own timeout; OPENAI_TIMEOUT is the
	// shared fallback for all three.
	WhisperTimeout time.Duration
	GPTTimeout     time.Duration
	TTSTimeout     time.Duration

	EventLogPath string
	TemplateDir  string
	StaticDir    string
}

func Load() (Config, error) {
	cfg := Config{
		Addr:         ":" + envOr("PORT", "8080"),
		OpenAIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		WhisperModel: envOr("WHISPER_MODEL", "whisper-1"),
		GPTModel:     envOr("GPT_MODEL", "gpt-4o"),
		TTSModel:     envOr("TTS_MODEL", "tts-1"),
		EventLogPath: envOr("EVENT_LOG_FILE", "log/app.log"),
		TemplateDir:  envOr("TEMPLATE_DIR", "web/templates"),
		StaticDir:    envOr("STATIC_DIR", "web/static"),
	}

	if cfg.OpenAIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	base, err := durationOr("OPENAI_TIMEOUT", 60*time.Second)
	if err != nil {
		return Config{}, err
	}
	if cfg.WhisperTimeout, err = durationOr("WHISPER_TIMEOUT", base); err != nil {
		return Config{}, err
	}
	if cfg.GPTTimeout, err = durationOr("GPT_TIMEOUT", base); err != nil {
		return Config{}, err
	}
	if cfg.TTSTimeout, err = durationOr("TTS_TIMEOUT", base); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
