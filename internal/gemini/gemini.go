package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/monsoon-labs/rainify/internal/config"
	"github.com/monsoon-labs/rainify/internal/models"
	"google.golang.org/genai"
)

// Client wraps the Gemini API for image-to-image transformation
type Client struct {
	genaiClient *genai.Client
	model       string
	prompt      string
}

// NewClient creates a Gemini client from the loaded configuration
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}

	return &Client{
		genaiClient: genaiClient,
		model:       cfg.Model,
		prompt:      cfg.Prompt,
	}, nil
}

// Transform sends the photo with the fixed instruction to Gemini and
// returns the first generated image from the response.
func (c *Client) Transform(ctx context.Context, src models.SourceImage) (*models.ResultImage, error) {
	if len(src.Data) == 0 {
		return nil, fmt.Errorf("no image data to transform")
	}

	parts := []*genai.Part{
		genai.NewPartFromText(c.prompt),
		genai.NewPartFromBytes(src.Data, src.MediaType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := FirstImage(resp)
	if err != nil {
		return nil, err
	}

	slog.Info("Image generated", "model", c.model, "media_type", result.MediaType, "bytes", len(result.Data))
	return result, nil
}

// FirstImage scans the response's content parts in order and returns the
// first one carrying inline image data. Later image parts are ignored.
// The first text part of the same candidate becomes the caption.
func FirstImage(resp *genai.GenerateContentResponse) (*models.ResultImage, error) {
	if resp == nil {
		return nil, errors.New("empty response from model")
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}

		var result *models.ResultImage
		var caption string
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if result == nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mediaType := part.InlineData.MIMEType
				if mediaType == "" {
					mediaType = "image/png"
				}
				result = &models.ResultImage{
					Data:      part.InlineData.Data,
					MediaType: mediaType,
				}
			}
			if caption == "" && part.Text != "" {
				caption = strings.TrimSpace(part.Text)
			}
		}

		if result != nil {
			result.Caption = caption
			return result, nil
		}
	}

	return nil, errors.New("no image returned by model")
}
