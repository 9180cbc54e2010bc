package webview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"TumorNetViz/internal/config"
	"TumorNetViz/internal/domain"
	"TumorNetViz/internal/ports"
)

// Server exposes the rendered visualizations and the latest run report over
// HTTP, replacing manual file:// navigation to the output directory.
type Server struct {
	engine *gin.Engine
	addr   string
}

// New builds the router. The repository is optional; without it the report
// endpoint falls back to the report.json the pipeline writes next to the
// rendered pages.
func New(cfg config.ViewerConfig, outputDir string, reports ports.SummaryRepository, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), corsMiddleware())

	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/report", reportHandler(outputDir, reports, log))
	router.Static("/view", outputDir)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/view/")
	})

	return &Server{engine: router, addr: cfg.Addr}
}

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	return s.engine.Run(s.addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Next()
	}
}

func reportHandler(outputDir string, reports ports.SummaryRepository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if reports != nil {
			report, err := reports.LatestReport(c.Request.Context())
			if err == nil {
				c.JSON(http.StatusOK, report)
				return
			}
			if log != nil {
				log.Warn("run history unavailable, falling back to report file", "error", err)
			}
		}

		raw, err := os.ReadFile(filepath.Join(outputDir, "report.json"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no run report available"})
			return
		}

		var report domain.RunReport
		if err := json.Unmarshal(raw, &report); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, report)
	}
}
