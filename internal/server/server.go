package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"PriceProphet/internal/config"
	"PriceProphet/internal/forecast"
	"PriceProphet/internal/report"
)

// Server exposes the forecast pipeline over HTTP.
type Server struct {
	engine   *gin.Engine
	pipeline *forecast.Pipeline
	cfg      *config.Config
}

// NewServer builds the gin engine and routes.
func NewServer(p *forecast.Pipeline, cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		engine:   gin.Default(),
		pipeline: p,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.POST("/api/predict", s.predict)
	s.engine.GET("/api/health", s.health)
}

// Run starts the HTTP listener and blocks.
func (s *Server) Run(addr string) error {
	log.Printf("[INFO] HTTP server listening on %s", addr)
	return s.engine.Run(addr)
}

type predictRequest struct {
	Company      string `json:"company" binding:"required"`
	NumPaths     int    `json:"num_paths"`
	ForecastDays int    `json:"forecast_days"`
}

// predict runs the full pipeline for one company name. Requested path and
// horizon counts may shrink the run but never exceed the configured defaults.
func (s *Server) predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	numPaths := s.cfg.Simulation.NumPaths
	if req.NumPaths > 0 && req.NumPaths < numPaths {
		numPaths = req.NumPaths
	}
	forecastDays := s.cfg.Simulation.ForecastDays
	if req.ForecastDays > 0 && req.ForecastDays < forecastDays {
		forecastDays = req.ForecastDays
	}

	rep, err := s.pipeline.RunWith(req.Company, numPaths, forecastDays)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"ticker":  rep.Ticker,
		"mu":      rep.Params.Mu,
		"sigma":   rep.Params.Sigma,
		"results": rep.Summary,
		"shape":   rep.Shape,
		"bands":   rep.Bands,
		"summary": rep.History,
		"explanations": gin.H{
			"paths":        report.FormatPaths(rep),
			"confidence":   report.FormatConfidence(rep),
			"distribution": report.FormatDistribution(rep),
			"history":      report.FormatHistory(rep),
		},
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
