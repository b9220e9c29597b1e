package models

import (
	"encoding/base64"
	"time"
)

// DownloadFilename is the fixed name the browser saves generated images under.
const DownloadFilename = "rainy-day-in-dhaka.png"

// SourceImage is the photo a user submitted for transformation.
type SourceImage struct {
	Data      []byte `json:"-"`
	MediaType string `json:"media_type"`
	Filename  string `json:"filename,omitempty"`
}

// ResultImage is one generated image returned by the model.
type ResultImage struct {
	Data      []byte `json:"-"`
	MediaType string `json:"media_type"`
	Caption   string `json:"caption,omitempty"`
}

// DataURI renders the image as a data: URI usable directly as an img source.
func (r *ResultImage) DataURI() string {
	return "data:" + r.MediaType + ";base64," + base64.StdEncoding.EncodeToString(r.Data)
}

// TransformSession records one completed transformation
type TransformSession struct {
	ID         string       `json:"id"`
	SourceName string       `json:"source_name,omitempty"`
	SourceType string       `json:"source_type,omitempty"`
	Result     *ResultImage `json:"result,omitempty"`
	Model      string       `json:"model,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
