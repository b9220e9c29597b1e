package images

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/monsoon-labs/rainify/internal/models"
)

// Images smaller than this are almost certainly error pages or placeholders.
const minImageBytes = 1000

// Fetcher retrieves photos from remote URLs for the ?image= entry point
// and JSON requests.
type Fetcher struct {
	HTTPClient *http.Client
	MaxBytes   int64
}

// NewFetcher creates a fetcher that refuses images larger than maxBytes.
func NewFetcher(maxBytes int64) *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		MaxBytes: maxBytes,
	}
}

// Fetch downloads the image at imageURL and wraps it as a SourceImage.
func (f *Fetcher) Fetch(imageURL string) (*models.SourceImage, error) {
	resp, err := f.HTTPClient.Get(imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	if int64(len(data)) > f.MaxBytes {
		return nil, fmt.Errorf("image too large (max %d bytes)", f.MaxBytes)
	}
	if len(data) < minImageBytes {
		return nil, fmt.Errorf("image too small (likely placeholder), size: %d bytes", len(data))
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" || !strings.HasPrefix(mediaType, "image/") {
		mediaType = http.DetectContentType(data)
	}

	filename := path.Base(imageURL)
	if filename == "." || filename == "/" {
		filename = "image.jpg"
	}

	return &models.SourceImage{
		Data:      data,
		MediaType: mediaType,
		Filename:  filename,
	}, nil
}
