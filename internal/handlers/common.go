package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/monsoon-labs/rainify/internal/config"
	"github.com/monsoon-labs/rainify/internal/images"
	"github.com/monsoon-labs/rainify/internal/models"
	"github.com/monsoon-labs/rainify/internal/storage"
)

// Transformer turns a source photo into a generated image.
type Transformer interface {
	Transform(ctx context.Context, src models.SourceImage) (*models.ResultImage, error)
}

type Handler struct {
	sessionStore *storage.SessionStore
	transformer  Transformer
	fetcher      *images.Fetcher
	cfg          *config.Config
}

func New(cfg *config.Config, transformer Transformer) *Handler {
	return &Handler{
		sessionStore: storage.New(),
		transformer:  transformer,
		fetcher:      images.NewFetcher(cfg.MaxUploadBytes),
		cfg:          cfg,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (*models.TransformSession, bool) {
	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// sessionPayload is what the page needs to render and download a result.
func sessionPayload(session *models.TransformSession) map[string]any {
	payload := map[string]any{
		"session_id": session.ID,
		"created_at": session.CreatedAt,
		"model":      session.Model,
	}
	if session.Result != nil {
		payload["media_type"] = session.Result.MediaType
		payload["data_uri"] = session.Result.DataURI()
		payload["caption"] = session.Result.Caption
		payload["alt"] = "Your photo reimagined as a rainy day in Dhaka"
		payload["download_name"] = models.DownloadFilename
	}
	return payload
}
