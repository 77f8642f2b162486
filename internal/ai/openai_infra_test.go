package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"
)

func testClient(srvURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srvURL + "/v1"
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model}
}

func TestComplete_RequestShape(t *testing.T) {
	var got struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"raw reply"}}]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, "gpt-4o")
	out, err := c.Complete(context.Background(), "SYSTEM POLICY", `{"text":"hi","target_lang":""}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "raw reply" {
		t.Errorf("out = %q", out)
	}

	if got.Model != "gpt-4o" {
		t.Errorf("model = %q", got.Model)
	}
	if got.Temperature > 1e-6 {
		t.Errorf("temperature = %v, determinism not requested", got.Temperature)
	}
	if len(got.Messages) != 2 ||
		got.Messages[0].Role != "system" || got.Messages[0].Content != "SYSTEM POLICY" ||
		got.Messages[1].Role != "user" || got.Messages[1].Content != `{"text":"hi","target_lang":""}` {
		t.Errorf("messages = %+v", got.Messages)
	}
}

func TestComplete_HTTPFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status_non_2xx", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(500)
			_, _ = w.Write([]byte(`{"error":{"message":"oops"}}`))
		}},
		{"empty_choices", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			c := testClient(srv.URL, "gpt-4o")
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if _, err := c.Complete(ctx, "sys", "user"); err == nil {
				t.Fatal("expected error; got nil")
			}
		})
	}
}
