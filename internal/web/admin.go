package web

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// adminAuth accepts the token as a bearer header or the admin cookie.
func (s *Server) adminAuth() gin.HandlerFunc {
	want := []byte(s.cfg.AdminToken)
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			token, _ = c.Cookie(adminCookie)
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(token), want) != 1 {
			s.log.Warn("admin.unauthorized", "client", s.store.HashIP(c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("admin.stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("admin.export", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		s.log.Info("admin.export", "client", s.store.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.Cleanup(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	})
}

// Cleanup purges visits older than the configured retention.
func (s *Server) Cleanup(ctx context.Context) (int64, error) {
	if s.store == nil {
		return 0, nil
	}
	n, err := s.store.Cleanup(ctx, s.cfg.AnalyticsRetention)
	if err != nil {
		s.log.Error("analytics.cleanup", "error", err)
		return 0, err
	}
	if n > 0 {
		s.log.Info("analytics.cleanup", "deleted", n, "retention", s.cfg.AnalyticsRetention.String())
	}
	return n, nil
}

// RunCleanup purges once immediately and then every interval until ctx
// is done.
func (s *Server) RunCleanup(ctx context.Context, interval time.Duration) {
	if s.store == nil {
		return
	}
	_, _ = s.Cleanup(ctx)

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_, _ = s.Cleanup(ctx)
		}
	}
}
