// Package httpserver exposes a local status and control API for one
// running display.
package httpserver

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/signboard/internal/model"
	"github.com/tinytelemetry/signboard/internal/playlog"
)

// ImpressionStore is the play log contract required by the API.
type ImpressionStore interface {
	model.ImpressionQuerier
	TopItems(limit int) ([]playlog.ItemCount, error)
}

// Remote injects navigation into the display loop. Calls must not block
// on the loop itself.
type Remote interface {
	Next()
	Prev()
	Retry()
}

// Server serves the display status API.
type Server struct {
	addr        string
	status      model.StatusReader
	impressions ImpressionStore // nil when the play log is disabled
	remote      Remote
	server      *http.Server
	ctx         context.Context
	cancel      context.CancelFunc
	startTime   time.Time
}

// NewServer creates a status API server. impressions may be nil.
func NewServer(addr string, status model.StatusReader, impressions ImpressionStore, remote Remote) *Server {
	if addr == "" {
		addr = model.DefaultStatusAPIAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:        addr,
		status:      status,
		impressions: impressions,
		remote:      remote,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/api/health", s.handleHealth)
	r.GET("/api/state", s.handleState)
	r.GET("/api/impressions", s.handleImpressions)
	r.POST("/api/next", s.handleNext)
	r.POST("/api/prev", s.handlePrev)
	r.POST("/api/retry", s.handleRetry)
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	s.routes(r)

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.addr = listener.Addr().String()
	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Addr is the bound listen address once started.
func (s *Server) Addr() string { return s.addr }

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	st := s.status.Status()
	body := gin.H{
		"status":     "ok",
		"uptime":     time.Since(s.startTime).String(),
		"session_id": st.SessionID,
		"ready":      st.Ready,
	}
	if s.impressions != nil {
		total, err := s.impressions.TotalImpressions()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read play log"})
			return
		}
		body["impressions"] = total
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.status.Status())
}

func (s *Server) handleImpressions(c *gin.Context) {
	if s.impressions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "play log disabled"})
		return
	}
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	sections, err := s.impressions.SectionCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read section counts"})
		return
	}
	top, err := s.impressions.TopItems(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read top items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sections":  sections,
		"top_items": top,
	})
}

func (s *Server) handleNext(c *gin.Context) {
	if !s.launched(c) {
		return
	}
	s.remote.Next()
	c.JSON(http.StatusAccepted, gin.H{"command": "next"})
}

func (s *Server) handlePrev(c *gin.Context) {
	if !s.launched(c) {
		return
	}
	s.remote.Prev()
	c.JSON(http.StatusAccepted, gin.H{"command": "prev"})
}

func (s *Server) handleRetry(c *gin.Context) {
	s.remote.Retry()
	c.JSON(http.StatusAccepted, gin.H{"command": "retry"})
}

// launched rejects navigation while the readiness gate is closed.
func (s *Server) launched(c *gin.Context) bool {
	if st := s.status.Status(); st.Page != "board" {
		c.JSON(http.StatusConflict, gin.H{"error": "display not launched", "message": st.Message})
		return false
	}
	return true
}
