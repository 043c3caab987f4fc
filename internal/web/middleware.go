package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/metrics"
)

const requestIDKey = "request_id"

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		switch status := c.Writer.Status(); {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		log.LogAttrs(c.Request.Context(), level, "http.request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("request_id", c.GetString(requestIDKey)),
		)
	}
}

var untrackedPrefixes = []string{
	"/static/",
	"/admin",
	"/metrics",
	"/healthz",
	"/favicon",
	"/privacy",
	"/fragments/",
}

// shouldTrack reports whether a request counts as a page view.
func shouldTrack(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	// Do Not Track is honoured; HTMX swaps are interactions, not views.
	if r.Header.Get("DNT") == "1" || r.Header.Get("HX-Request") == "true" {
		return false
	}
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(r.URL.Path, p) {
			return false
		}
	}
	return true
}

func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldTrack(c.Request) {
			s.track(c.ClientIP(), c.Request.UserAgent(), c.Request.URL.Path)
		}
		c.Next()
	}
}

// trackAsync writes the visit in the background so page rendering never
// waits on SQLite.
func (s *Server) trackAsync(ip, userAgent, path string) {
	s.tracking.Add(1)
	go func() {
		defer s.tracking.Done()
		s.trackVisit(ip, userAgent, path)
	}()
}

// WaitTracking blocks until every background visit write has finished.
// Call it after the HTTP server has stopped and before closing the store.
func (s *Server) WaitTracking() {
	s.tracking.Wait()
}

func (s *Server) trackVisit(ip, userAgent, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.Track(ctx, ip, userAgent, path); err != nil {
		s.log.Warn("analytics.track", "error", err)
		return
	}
	metrics.VisitsTracked.Inc()
}
