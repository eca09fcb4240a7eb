package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/clover/internal/model"
	"github.com/tinytelemetry/clover/internal/report"
)

// Server exposes one finished analysis report over HTTP. The report is
// immutable for the lifetime of the server; there is no ingestion path.
type Server struct {
	addr      string
	rep       model.Report
	source    string
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates an HTTP server for a finished report.
func NewServer(addr string, rep model.Report, source string) *Server {
	if addr == "" {
		addr = "127.0.0.1:3000"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		rep:    rep,
		source: source,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/report", s.handleReport)
	r.GET("/api/report/text", s.handleReportText)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.routes(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime":         time.Since(s.startTime).String(),
		"source":         s.source,
		"total_requests": s.rep.TotalRequests,
	})
}

func (s *Server) handleReport(c *gin.Context) {
	c.JSON(http.StatusOK, report.NewDocument(s.rep))
}

func (s *Server) handleReportText(c *gin.Context) {
	c.String(http.StatusOK, report.Text(s.rep, s.source))
}
