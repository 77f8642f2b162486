package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *Handler, staticDir string) {
	r.Use(httputil.RecoverMiddleware, RequestID)

	r.Get("/", h.Index)
	r.Get("/whoami", h.WhoAmI)
	r.Post("/transcribe_and_summarize", h.TranscribeAndSummarize)
	r.Post("/tts", h.TTS)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	if staticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	}
}
