package documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/shared/metrics"
	"resume-checker/internal/shared/server/respond"
	"resume-checker/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// User-facing messages for ingestion failures.
const (
	msgNoFile           = "No file uploaded"
	msgUnsupported      = "Unsupported file type"
	msgOCRNotConfigured = "GOOGLE_API_KEY not configured on server. Set in .env to enable OCR for images."
	msgOCRFailed        = "Vision OCR failed"
	msgParseFailed      = "Failed to parse file"
)

// Handler serves the file parsing endpoint.
type Handler struct {
	Ingester *Ingester
}

// NewHandler constructs a Handler.
func NewHandler(ing *Ingester) *Handler {
	return &Handler{Ingester: ing}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse-file", h.parseFile)
}

type parseResponse struct {
	Text    string `json:"text"`
	Scanned bool   `json:"scanned,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) parseFile(c *gin.Context) {
	metrics.IncParseRequests()
	start := metrics.NowMillis()
	defer func() {
		metrics.ObserveParseDurationMs(metrics.NowMillis() - start)
	}()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", msgNoFile)
		return
	}
	if name, err := util.SanitizeFileName(fileHeader.Filename); err == nil {
		c.Set("fileName", name)
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", msgNoFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file")
		return
	}

	doc, err := h.Ingester.Ingest(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, "unsupported_format", msgUnsupported)
		case errors.Is(err, ErrOCRUnavailable):
			respond.Error(c, http.StatusBadRequest, "ocr_unavailable", msgOCRNotConfigured)
		case errors.Is(err, ErrOCRFailed):
			metrics.IncParseFailed()
			respond.Error(c, http.StatusInternalServerError, "ocr_failed", msgOCRFailed)
		default:
			metrics.IncParseFailed()
			respond.Error(c, http.StatusInternalServerError, "parse_failed", msgParseFailed)
		}
		return
	}

	if doc.Scanned {
		metrics.IncScannedPDF()
		respond.JSON(c, http.StatusOK, parseResponse{Scanned: true, Message: doc.Message})
		return
	}

	respond.JSON(c, http.StatusOK, parseResponse{Text: doc.Text})
}
