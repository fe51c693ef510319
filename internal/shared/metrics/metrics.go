package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	analyzeRequestsTotal  atomic.Uint64
	parseRequestsTotal    atomic.Uint64
	parseFailedTotal      atomic.Uint64
	scannedPDFTotal       atomic.Uint64
	parseFallbackTotal    atomic.Uint64
	evaluateFallbackTotal atomic.Uint64

	analyzeDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500})
	parseDuration   = newHistogram([]float64{25, 50, 100, 250, 500, 1000, 2500, 6000, 10000})
)

// IncAnalyzeRequests increments the analyze request counter.
func IncAnalyzeRequests() {
	analyzeRequestsTotal.Add(1)
}

// IncParseRequests increments the parse-file request counter.
func IncParseRequests() {
	parseRequestsTotal.Add(1)
}

// IncParseFailed increments the failed-parse counter.
func IncParseFailed() {
	parseFailedTotal.Add(1)
}

// IncScannedPDF increments the scanned-PDF soft-fail counter.
func IncScannedPDF() {
	scannedPDFTotal.Add(1)
}

// IncParseFallback counts pipeline runs that substituted placeholder text.
func IncParseFallback() {
	parseFallbackTotal.Add(1)
}

// IncEvaluateFallback counts pipeline runs that evaluated locally.
func IncEvaluateFallback() {
	evaluateFallbackTotal.Add(1)
}

// ObserveAnalyzeDurationMs records an analyze duration in milliseconds.
func ObserveAnalyzeDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analyzeDuration.Observe(value)
}

// ObserveParseDurationMs records a parse duration in milliseconds.
func ObserveParseDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	parseDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analyze_requests_total", "Total analyze requests", analyzeRequestsTotal.Load())
	writeCounter(&buf, "parse_requests_total", "Total parse-file requests", parseRequestsTotal.Load())
	writeCounter(&buf, "parse_failed_total", "Total failed file parses", parseFailedTotal.Load())
	writeCounter(&buf, "scanned_pdf_total", "Total scanned-PDF soft fails", scannedPDFTotal.Load())
	writeCounter(&buf, "parse_fallback_total", "Total pipeline parse fallbacks", parseFallbackTotal.Load())
	writeCounter(&buf, "evaluate_fallback_total", "Total pipeline local evaluations", evaluateFallbackTotal.Load())
	writeHistogram(&buf, "analyze_duration_ms", "Analyze duration in milliseconds", analyzeDuration.Snapshot())
	writeHistogram(&buf, "parse_duration_ms", "Parse duration in milliseconds", parseDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	// Observe increments every bucket a value fits in, so counts are
	// already cumulative.
	for i, bound := range snap.buckets {
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), snap.counts[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
