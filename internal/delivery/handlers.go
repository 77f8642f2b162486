package delivery

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"

	"github.com/twintalk/twin-talk/internal/chat"
	"github.com/twintalk/twin-talk/internal/eventlog"
	"github.com/twintalk/twin-talk/internal/ports"
)

const maxUploadBytes = 20 << 20

type Handler struct {
	chatService   ports.ChatService
	speechService ports.SpeechService
	events        *eventlog.Log
	tmpl          *template.Template
	log           *logger.ZapLogger
}

func NewHandler(
	chatService ports.ChatService,
	speechService ports.SpeechService,
	events *eventlog.Log,
	tmpl *template.Template,
	log *logger.ZapLogger,
) *Handler {
	return &Handler{
		chatService:   chatService,
		speechService: speechService,
		events:        events,
		tmpl:          tmpl,
		log:           log,
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.events.Event("VIEW", clientIP(r), "/")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "render index", Error: err})
	}
}

func (h *Handler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"ip": clientIP(r)})
}

// TranscribeAndSummarize accepts either typed text or an uploaded audio clip
// and returns the contract JSON. When both text_input and audio_file are
// supplied, audio wins and the typed text is ignored.
func (h *Handler) TranscribeAndSummarize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form: " + err.Error()})
		return
	}

	req := chat.Request{
		Text:       r.FormValue("text_input"),
		Mode:       r.FormValue("mode"),
		TargetLang: r.FormValue("target_lang"),
		ClientIP:   clientIP(r),
	}

	if file, header, err := r.FormFile("audio_file"); err == nil && header.Filename != "" {
		defer file.Close()
		req.Audio = file
		req.AudioName = header.Filename
		h.log.Log(logger.LogEntry{
			Level:   "info",
			Message: fmt.Sprintf("audio upload %s (%s) req=%s", header.Filename, humanize.Bytes(uint64(header.Size)), RequestIDFrom(r.Context())),
			Service: serviceName,
		})
	}

	c, err := h.chatService.Respond(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) TTS(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
		return
	}

	audio, err := h.speechService.Synthesize(r.Context(), strings.TrimSpace(body.Text))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = w.Write(audio)
}
