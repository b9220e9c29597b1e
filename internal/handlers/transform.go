package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/monsoon-labs/rainify/internal/models"
	"github.com/monsoon-labs/rainify/internal/utils"
)

func (h *Handler) HandleTransform(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Check if this is a JSON request with an image URL
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		h.handleURLTransform(w, r)
		return
	}

	// Handle file upload
	h.handleFileTransform(w, r)
}

func (h *Handler) handleURLTransform(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ImageURL string `json:"image_url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if request.ImageURL == "" {
		h.writeError(w, "image_url is required", http.StatusBadRequest)
		return
	}

	src, err := h.fetcher.Fetch(request.ImageURL)
	if err != nil {
		h.writeError(w, "Failed to process image URL: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.transform(w, r, *src)
}

func (h *Handler) handleFileTransform(w http.ResponseWriter, r *http.Request) {
	// Only the first file is considered if multiple are selected
	file, header, err := r.FormFile("file")
	if err != nil {
		file, header, err = r.FormFile("photo")
		if err != nil {
			h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	defer file.Close()

	fileData, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxUploadBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if int64(len(fileData)) > h.cfg.MaxUploadBytes {
		h.writeError(w, fmt.Sprintf("File too large (max %d bytes)", h.cfg.MaxUploadBytes), http.StatusBadRequest)
		return
	}
	if len(fileData) == 0 {
		h.writeError(w, "Empty file", http.StatusBadRequest)
		return
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" || !strings.HasPrefix(mediaType, "image/") {
		mediaType = http.DetectContentType(fileData)
	}

	h.transform(w, r, models.SourceImage{
		Data:      fileData,
		MediaType: mediaType,
		Filename:  header.Filename,
	})
}

// transform runs the generation call and stores the completed session.
func (h *Handler) transform(w http.ResponseWriter, r *http.Request, src models.SourceImage) {
	slog.Info("Transforming photo", "filename", src.Filename, "media_type", src.MediaType, "bytes", len(src.Data))

	result, err := h.transformer.Transform(r.Context(), src)
	if err != nil {
		h.writeError(w, "Generation failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	sessionID := fmt.Sprintf("%s_%d", utils.CalculateDataMD5(src.Data), time.Now().Unix())
	session := &models.TransformSession{
		ID:         sessionID,
		SourceName: src.Filename,
		SourceType: src.MediaType,
		Result:     result,
		Model:      h.cfg.Model,
		CreatedAt:  time.Now(),
	}
	h.sessionStore.Set(sessionID, session)

	slog.Info("Transformation complete", "session_id", sessionID, "media_type", result.MediaType, "bytes", len(result.Data))
	h.writeJSON(w, sessionPayload(session))
}
