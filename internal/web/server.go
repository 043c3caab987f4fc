// Package web serves the portfolio page, its HTMX fragments and the
// admin/ops endpoints on a gin engine.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
)

// Deps are the collaborators New wires into a Server.
type Deps struct {
	Config  *config.Config
	Content *content.Content
	// Store may be nil, which disables visitor tracking and the admin stats.
	Store  *analytics.Store
	Logger *slog.Logger
}

// Server holds the gin engine and the state its handlers share.
type Server struct {
	cfg     *config.Config
	content *content.Content
	store   *analytics.Store
	log     *slog.Logger

	contact *contact.Simulator
	limiter *contact.Limiter

	projectCats []string
	skillCats   []string

	// track records a visit; replaced in tests to run synchronously.
	track func(ip, userAgent, path string)

	// tracking counts visit writes still in flight.
	tracking sync.WaitGroup

	engine *gin.Engine
}

// New builds the engine, parses the embedded templates and registers every
// route.
func New(d Deps) (*Server, error) {
	if d.Config == nil || d.Content == nil {
		return nil, errors.New("web: config and content are required")
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	gin.SetMode(d.Config.GinMode)

	s := &Server{
		cfg:         d.Config,
		content:     d.Content,
		store:       d.Store,
		log:         d.Logger,
		contact:     contact.NewSimulator(d.Config.ContactDelay, d.Logger),
		limiter:     contact.NewLimiter(d.Config.ContactEvery, d.Config.ContactBurst),
		projectCats: content.ProjectCategories(d.Content.Projects),
		skillCats:   content.SkillCategories(d.Content.Skills),
	}
	s.track = s.trackAsync

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(s.log))
	if s.store != nil {
		r.Use(s.visitorTracking())
	}

	s.routes(r)
	s.engine = r
	return s, nil
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(r *gin.Engine) {
	r.StaticFS("/static", http.FS(staticFiles()))

	r.GET("/", s.handleHome)
	r.GET("/projects", s.handleProjects)
	r.GET("/skills", s.handleSkills)
	r.GET("/fragments/role", s.handleRole)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)
	r.GET("/privacy", s.handlePrivacy)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if s.store != nil && s.cfg.AdminToken != "" {
		s.adminRoutes(r)
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Profile": s.content.Profile})
	})
}
