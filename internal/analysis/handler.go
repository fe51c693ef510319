package analysis

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/shared/metrics"
	"resume-checker/internal/shared/server/respond"
)

const maxAnalyzeBody = 2 << 20 // 2MB

// Handler serves the evaluation endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

type analyzeRequest struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) analyze(c *gin.Context) {
	metrics.IncAnalyzeRequests()
	start := metrics.NowMillis()
	defer func() {
		metrics.ObserveAnalyzeDurationMs(metrics.NowMillis() - start)
	}()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAnalyzeBody)

	// Absent fields and an absent body are empty strings; evaluation
	// degrades gracefully instead of rejecting them.
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	respond.OK(c, Evaluate(req.Resume, req.JobDescription))
}
