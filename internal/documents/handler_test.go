package documents_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/documents"
)

func newTestRouter(ing *documents.Ingester) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	documents.NewHandler(ing).RegisterRoutes(api)
	return r
}

func multipartUpload(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestParseFileTxt(t *testing.T) {
	router := newTestRouter(&documents.Ingester{})

	body, contentType := multipartUpload(t, "resume.txt", []byte("hello resume"))
	req := httptest.NewRequest(http.MethodPost, "/api/parse-file", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if parsed.Text != "hello resume" {
		t.Fatalf("expected extracted text, got %q", parsed.Text)
	}
}

func TestParseFileMissingFile(t *testing.T) {
	router := newTestRouter(&documents.Ingester{})

	req := httptest.NewRequest(http.MethodPost, "/api/parse-file", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if errBody.Error != "No file uploaded" {
		t.Fatalf("expected no-file message, got %q", errBody.Error)
	}
}

func TestParseFileUnsupportedExtension(t *testing.T) {
	router := newTestRouter(&documents.Ingester{})

	body, contentType := multipartUpload(t, "data.csv", []byte("a,b,c"))
	req := httptest.NewRequest(http.MethodPost, "/api/parse-file", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if errBody.Error != "Unsupported file type" {
		t.Fatalf("expected unsupported-type message, got %q", errBody.Error)
	}
}

func TestParseFileImageWithoutOCRKey(t *testing.T) {
	router := newTestRouter(&documents.Ingester{OCR: documents.NewVisionClient("", "")})

	body, contentType := multipartUpload(t, "scan.png", []byte{0x89, 0x50, 0x4e, 0x47})
	req := httptest.NewRequest(http.MethodPost, "/api/parse-file", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if errBody.Error == "" || !bytes.Contains([]byte(errBody.Error), []byte("GOOGLE_API_KEY")) {
		t.Fatalf("expected credential message, got %q", errBody.Error)
	}
}

func TestParseFileImageWithOCR(t *testing.T) {
	vision := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responses":[{"fullTextAnnotation":{"text":"ocr extracted resume"}}]}`))
	}))
	defer vision.Close()

	router := newTestRouter(&documents.Ingester{OCR: documents.NewVisionClient("key", vision.URL)})

	body, contentType := multipartUpload(t, "scan.jpg", []byte{0xff, 0xd8, 0xff})
	req := httptest.NewRequest(http.MethodPost, "/api/parse-file", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if parsed.Text != "ocr extracted resume" {
		t.Fatalf("expected ocr text, got %q", parsed.Text)
	}
}

func TestParseFileOCRFailure(t *testing.T) {
	vision := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer vision.Close()

	router := newTestRouter(&documents.Ingester{OCR: documents.NewVisionClient("key", vision.URL)})

	body, contentType := multipartUpload(t, "scan.jpeg", []byte{0xff, 0xd8, 0xff})
	req := httptest.NewRequest(http.MethodPost, "/api/parse-file", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if errBody.Error != "Vision OCR failed" {
		t.Fatalf("expected ocr-failed message, got %q", errBody.Error)
	}
}
