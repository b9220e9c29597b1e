package images

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 2000)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/photo.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			if _, err := w.Write(payload); err != nil {
				t.Error(err)
			}
		case "/tiny.png":
			if _, err := w.Write([]byte("x")); err != nil {
				t.Error(err)
			}
		case "/huge.png":
			w.Header().Set("Content-Type", "image/png")
			if _, err := w.Write(bytes.Repeat([]byte{1}, 5000)); err != nil {
				t.Error(err)
			}
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewFetcher(4096)

	t.Run("downloads image with declared media type", func(t *testing.T) {
		src, err := fetcher.Fetch(server.URL + "/photo.jpg")
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if src.MediaType != "image/jpeg" {
			t.Errorf("Expected image/jpeg, got %s", src.MediaType)
		}
		if len(src.Data) != len(payload) {
			t.Errorf("Expected %d bytes, got %d", len(payload), len(src.Data))
		}
		if src.Filename != "photo.jpg" {
			t.Errorf("Expected filename photo.jpg, got %s", src.Filename)
		}
	})

	t.Run("rejects placeholder-sized images", func(t *testing.T) {
		if _, err := fetcher.Fetch(server.URL + "/tiny.png"); err == nil {
			t.Error("Expected error for tiny image, got nil")
		}
	})

	t.Run("rejects oversized images", func(t *testing.T) {
		_, err := fetcher.Fetch(server.URL + "/huge.png")
		if err == nil {
			t.Fatal("Expected error for oversized image, got nil")
		}
		if !strings.Contains(err.Error(), "too large") {
			t.Errorf("Expected size error, got %v", err)
		}
	})

	t.Run("rejects non-200 responses", func(t *testing.T) {
		if _, err := fetcher.Fetch(server.URL + "/missing.png"); err == nil {
			t.Error("Expected error for 404, got nil")
		}
	})
}
