package gemini

import (
	"testing"

	"google.golang.org/genai"
)

func textPart(s string) *genai.Part {
	return &genai.Part{Text: s}
}

func imagePart(mime string, data []byte) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mime, Data: data}}
}

func response(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestFirstImage(t *testing.T) {
	tests := []struct {
		name          string
		resp          *genai.GenerateContentResponse
		wantErr       bool
		wantMediaType string
		wantData      string
		wantCaption   string
	}{
		{
			name:          "image is the only part",
			resp:          response(imagePart("image/png", []byte{0, 0, 0})),
			wantMediaType: "image/png",
			wantData:      "\x00\x00\x00",
		},
		{
			name:          "image after leading text parts",
			resp:          response(textPart("Here you go."), textPart("A rainy street."), imagePart("image/jpeg", []byte("img"))),
			wantMediaType: "image/jpeg",
			wantData:      "img",
			wantCaption:   "Here you go.",
		},
		{
			name:          "first image wins over later ones",
			resp:          response(imagePart("image/png", []byte("one")), imagePart("image/webp", []byte("two"))),
			wantMediaType: "image/png",
			wantData:      "one",
		},
		{
			name:          "missing media type falls back to png",
			resp:          response(imagePart("", []byte("raw"))),
			wantMediaType: "image/png",
			wantData:      "raw",
		},
		{
			name:    "text-only response is an error",
			resp:    response(textPart("sorry, cannot do that")),
			wantErr: true,
		},
		{
			name:    "empty inline data does not count as an image",
			resp:    response(imagePart("image/png", nil), textPart("hm")),
			wantErr: true,
		},
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			wantErr: true,
		},
		{
			name:    "nil response",
			resp:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FirstImage(tt.resp)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("FirstImage failed: %v", err)
			}
			if result.MediaType != tt.wantMediaType {
				t.Errorf("Expected media type %s, got %s", tt.wantMediaType, result.MediaType)
			}
			if string(result.Data) != tt.wantData {
				t.Errorf("Expected data %q, got %q", tt.wantData, string(result.Data))
			}
			if result.Caption != tt.wantCaption {
				t.Errorf("Expected caption %q, got %q", tt.wantCaption, result.Caption)
			}
		})
	}
}

func TestFirstImageSkipsEmptyCandidates(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: nil},
			{Content: &genai.Content{Parts: []*genai.Part{imagePart("image/png", []byte("ok"))}}},
		},
	}

	result, err := FirstImage(resp)
	if err != nil {
		t.Fatalf("FirstImage failed: %v", err)
	}
	if string(result.Data) != "ok" {
		t.Errorf("Expected data from third candidate, got %q", string(result.Data))
	}
}
