package documents

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const defaultVisionAPIURL = "https://vision.googleapis.com/v1/images:annotate"

// VisionClient calls the Google Vision image annotation endpoint for
// document text detection. The credential is an API key supplied via
// configuration; without one the client reports itself unconfigured.
type VisionClient struct {
	apiKey  string
	baseURL string
	http    *resty.Client
}

// NewVisionClient constructs a Vision OCR client. baseURL may be empty to
// use the public endpoint; tests point it at a local server.
func NewVisionClient(apiKey, baseURL string) *VisionClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultVisionAPIURL
	}
	return &VisionClient{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: baseURL,
		http:    resty.New().SetTimeout(30 * time.Second),
	}
}

// Configured reports whether an API key is present.
func (v *VisionClient) Configured() bool {
	return v != nil && v.apiKey != ""
}

type visionFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type visionImage struct {
	Content string `json:"content"`
}

type visionRequest struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionPayload struct {
	Requests []visionRequest `json:"requests"`
}

// DetectText runs document text detection over image bytes. It prefers the
// full text annotation and falls back to the first text annotation's
// description when that is absent.
func (v *VisionClient) DetectText(ctx context.Context, image []byte) (string, error) {
	payload := visionPayload{
		Requests: []visionRequest{
			{
				Image:    visionImage{Content: base64.StdEncoding.EncodeToString(image)},
				Features: []visionFeature{{Type: "DOCUMENT_TEXT_DETECTION", MaxResults: 1}},
			},
		},
	}

	resp, err := v.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", v.apiKey).
		SetBody(payload).
		Post(v.baseURL)
	if err != nil {
		return "", fmt.Errorf("vision request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("vision status %d", resp.StatusCode())
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("vision response not valid JSON")
	}
	if full := gjson.GetBytes(body, "responses.0.fullTextAnnotation.text"); full.Exists() && full.String() != "" {
		return full.String(), nil
	}
	if first := gjson.GetBytes(body, "responses.0.textAnnotations.0.description"); first.Exists() {
		return first.String(), nil
	}
	return "", nil
}
