package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"resume-checker/internal/analysis"
)

func TestClientEvaluate(t *testing.T) {
	expected := analysis.Evaluate("resume with go", "go engineer")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analyze" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req struct {
			Resume         string `json:"resume"`
			JobDescription string `json:"jobDescription"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Resume != "resume with go" || req.JobDescription != "go engineer" {
			t.Errorf("unexpected request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(analysis.Evaluate(req.Resume, req.JobDescription))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	got, err := client.Evaluate(context.Background(), "resume with go", "go engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %+v, got %+v", expected, got)
	}
}

func TestClientEvaluateNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"nope"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Evaluate(context.Background(), "r", "j"); err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
}

func TestClientEvaluateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{broken"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Evaluate(context.Background(), "r", "j"); err == nil {
		t.Fatalf("expected error for malformed body")
	}
}

func TestClientParseMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/parse-file" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("expected multipart field 'file': %v", err)
			http.Error(w, "bad", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "cv.pdf" {
			t.Errorf("expected filename cv.pdf, got %q", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "pdf-bytes" {
			t.Errorf("unexpected file content %q", data)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"extracted"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	got, err := client.Parse(context.Background(), "cv.pdf", []byte("pdf-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "extracted" || got.Scanned {
		t.Fatalf("unexpected parse result: %+v", got)
	}
}

func TestClientParseScannedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"","scanned":true,"message":"PDF appears to be scanned"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	got, err := client.Parse(context.Background(), "scan.pdf", []byte("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Scanned || got.Text != "" {
		t.Fatalf("expected scanned result, got %+v", got)
	}
}
