package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/analysis"
	"resume-checker/internal/documents"
	"resume-checker/internal/shared/config"
	"resume-checker/internal/shared/metrics"
	"resume-checker/internal/shared/server/middleware"
	"resume-checker/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	ocr := documents.NewVisionClient(cfg.GoogleAPIKey, cfg.VisionAPIURL)
	docHandler := documents.NewHandler(&documents.Ingester{OCR: ocr})
	analysisHandler := analysis.NewHandler()

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.NewRateLimiter(nil), middleware.RateLimitRule{Rate: 5, Burst: 20}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	analysisHandler.RegisterRoutes(api)
	docHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
