package delivery

import (
	"errors"
	"net"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/twintalk/twin-talk/internal/chat"
	"github.com/twintalk/twin-talk/internal/speech"
)

const serviceName = "twin-talk"

// writeError maps a pipeline failure onto the user-facing taxonomy: a status
// code plus a single-string JSON body. Nothing beyond err.Error() reaches the
// caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, chat.ErrNoInput),
		errors.Is(err, speech.ErrEmptyText),
		errors.Is(err, speech.ErrTextTooLong):
		status = http.StatusBadRequest
	}

	var synthErr *speech.SynthesisError
	if errors.As(err, &synthErr) {
		h.events.Event("TTS_ERR", clientIP(r), err.Error())
	}

	level := "warn"
	if status >= 500 {
		level = "error"
	}
	h.log.Log(logger.LogEntry{
		Level:   level,
		Message: "request failed req=" + RequestIDFrom(r.Context()),
		Service: serviceName,
		Error:   err,
	})

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		if r.RemoteAddr == "" {
			return "unknown"
		}
		return r.RemoteAddr
	}
	return host
}
