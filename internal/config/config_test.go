package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "OPENAI_API_KEY", "WHISPER_MODEL", "GPT_MODEL", "TTS_MODEL",
		"OPENAI_TIMEOUT", "WHISPER_TIMEOUT", "GPT_TIMEOUT", "TTS_TIMEOUT",
		"EVENT_LOG_FILE", "TEMPLATE_DIR", "STATIC_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.WhisperModel != "whisper-1" || cfg.GPTModel != "gpt-4o" || cfg.TTSModel != "tts-1" {
		t.Errorf("models = %q %q %q", cfg.WhisperModel, cfg.GPTModel, cfg.TTSModel)
	}
	for _, d := range []time.Duration{cfg.WhisperTimeout, cfg.GPTTimeout, cfg.TTSTimeout} {
		if d != 60*time.Second {
			t.Errorf("timeout = %v, want 60s default", d)
		}
	}
}

func TestLoad_MissingKey(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error without OPENAI_API_KEY")
	}
}

func TestLoad_PerCapabilityTimeouts(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_TIMEOUT", "45s")
	t.Setenv("TTS_TIMEOUT", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WhisperTimeout != 45*time.Second || cfg.GPTTimeout != 45*time.Second {
		t.Errorf("shared timeout not applied: %v %v", cfg.WhisperTimeout, cfg.GPTTimeout)
	}
	if cfg.TTSTimeout != 2*time.Minute {
		t.Errorf("tts timeout = %v", cfg.TTSTimeout)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GPT_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable duration")
	}
}
