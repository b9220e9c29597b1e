package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/monsoon-labs/rainify/internal/models"
	"github.com/monsoon-labs/rainify/internal/utils"
)

func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	filepath := strings.TrimPrefix(r.URL.Path, "/static/")

	// Extract the file path after /static/
	if filepath == "" || filepath == "/" {
		filepath = "index.html"
	}

	// Check if image URL parameter is provided
	imageURL := r.URL.Query().Get("image")
	if imageURL != "" {
		sessionID, err := h.transformFromURL(r, imageURL)
		if err != nil {
			slog.Error("Failed to transform image from URL", "url", imageURL, "error", err)
			http.Error(w, "Failed to process image URL: "+err.Error(), http.StatusBadRequest)
			return
		}

		// Redirect to the homepage with the finished session
		http.Redirect(w, r, "/?session="+sessionID, http.StatusFound)
		return
	}

	// Prevent directory traversal attacks
	if strings.Contains(filepath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	// Set appropriate content type based on file extension
	switch {
	case strings.HasSuffix(filepath, ".css"):
		w.Header().Set("Content-Type", "text/css")
	case strings.HasSuffix(filepath, ".js"):
		w.Header().Set("Content-Type", "application/javascript")
	case strings.HasSuffix(filepath, ".html"):
		w.Header().Set("Content-Type", "text/html")
	}

	// Serve files from the static directory
	fullPath := "static/" + filepath
	http.ServeFile(w, r, fullPath)
}

// transformFromURL supports sharing links like /?image=https://...
func (h *Handler) transformFromURL(r *http.Request, imageURL string) (string, error) {
	src, err := h.fetcher.Fetch(imageURL)
	if err != nil {
		return "", err
	}

	result, err := h.transformer.Transform(r.Context(), *src)
	if err != nil {
		return "", err
	}

	sessionID := fmt.Sprintf("%s_%d", utils.CalculateDataMD5(src.Data), time.Now().Unix())
	h.sessionStore.Set(sessionID, &models.TransformSession{
		ID:         sessionID,
		SourceName: src.Filename,
		SourceType: src.MediaType,
		Result:     result,
		Model:      h.cfg.Model,
		CreatedAt:  time.Now(),
	})

	slog.Info("Session created from URL", "session_id", sessionID, "url", imageURL)
	return sessionID, nil
}
