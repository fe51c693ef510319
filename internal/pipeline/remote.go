package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"resume-checker/internal/analysis"
)

// ParseResult mirrors the document-parsing service response body.
type ParseResult struct {
	Text    string `json:"text"`
	Scanned bool   `json:"scanned"`
	Message string `json:"message"`
}

// RemoteParser is the remote document-parsing collaborator.
type RemoteParser interface {
	Parse(ctx context.Context, fileName string, data []byte) (ParseResult, error)
}

// RemoteEvaluator is the remote evaluation collaborator.
type RemoteEvaluator interface {
	Evaluate(ctx context.Context, resume, jobDescription string) (analysis.Result, error)
}

// Client talks to a resume-checker API over HTTP. Timeouts are governed by
// the caller's context, not a client-wide setting, so each pipeline stage
// can bound its own attempt.
type Client struct {
	base string
	http *resty.Client
}

// NewClient constructs a Client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: resty.New(),
	}
}

type analyzePayload struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

// Evaluate posts to /api/analyze. Any non-2xx status or undecodable body
// is an error; the orchestrator treats those as fallback triggers.
func (c *Client) Evaluate(ctx context.Context, resume, jobDescription string) (analysis.Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(analyzePayload{Resume: resume, JobDescription: jobDescription}).
		Post(c.base + "/api/analyze")
	if err != nil {
		return analysis.Result{}, fmt.Errorf("analyze request: %w", err)
	}
	if resp.IsError() {
		return analysis.Result{}, fmt.Errorf("analyze status %d", resp.StatusCode())
	}

	var out analysis.Result
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return analysis.Result{}, fmt.Errorf("analyze response decode: %w", err)
	}
	return out, nil
}

// Parse posts the file to /api/parse-file as a multipart upload under the
// "file" field.
func (c *Client) Parse(ctx context.Context, fileName string, data []byte) (ParseResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", fileName, bytes.NewReader(data)).
		Post(c.base + "/api/parse-file")
	if err != nil {
		return ParseResult{}, fmt.Errorf("parse request: %w", err)
	}
	if resp.IsError() {
		return ParseResult{}, fmt.Errorf("parse status %d", resp.StatusCode())
	}

	var out ParseResult
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return ParseResult{}, fmt.Errorf("parse response decode: %w", err)
	}
	return out, nil
}

var (
	_ RemoteParser    = (*Client)(nil)
	_ RemoteEvaluator = (*Client)(nil)
)
