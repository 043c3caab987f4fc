package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/motion"
)

type navItem struct {
	ID    string
	Label string
}

var nav = []navItem{
	{"home", "Home"},
	{"about", "About"},
	{"projects", "Projects"},
	{"skills", "Skills"},
	{"achievements", "Achievements"},
	{"contact", "Contact"},
}

// pageData is shared by the page and every fragment so that fragments can
// be rendered on their own.
type pageData struct {
	Profile      content.Profile
	Achievements []content.AchievementGroup
	Social       []content.SocialLink
	FooterNote   string
	Nav          []navItem

	Role      string
	RoleIndex int
	RotateMS  int64

	Projects          []content.Project
	ProjectCategories []string
	ProjectFilter     string

	Skills          []content.Skill
	SkillCategories []string
	SkillFilter     string

	Form *contact.Form

	BackToTop    int
	NavbarSolid  int
	IconFallback string
}

func (s *Server) page(projectFilter, skillFilter string) *pageData {
	d := &pageData{
		Profile:      s.content.Profile,
		Achievements: s.content.Achievements,
		Social:       s.content.Social,
		FooterNote:   s.content.FooterNote,
		Nav:          nav,

		RotateMS: s.cfg.RotateInterval.Milliseconds(),

		Projects:          content.FilterProjects(s.content.Projects, projectFilter),
		ProjectCategories: s.projectCats,
		ProjectFilter:     projectFilter,

		Skills:          content.FilterSkills(s.content.Skills, skillFilter),
		SkillCategories: s.skillCats,
		SkillFilter:     skillFilter,

		Form: &contact.Form{},

		BackToTop:    motion.BackToTop.Offset,
		NavbarSolid:  motion.NavbarSolid.Offset,
		IconFallback: content.DefaultIcon,
	}
	if roles := s.content.Profile.Roles; len(roles) > 0 {
		d.Role = roles[0]
	}
	return d
}

// category normalises a filter query value. Unknown categories are kept
// as-is so they filter to an empty list, matching plain equality.
func category(c *gin.Context) string {
	v := c.Query("category")
	if v == "" {
		return content.AllCategory
	}
	return v
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func (s *Server) handleHome(c *gin.Context) {
	metrics.PageViews.WithLabelValues("home").Inc()
	c.HTML(http.StatusOK, "index.html", s.page(content.AllCategory, content.AllCategory))
}

func (s *Server) handleProjects(c *gin.Context) {
	cat := category(c)
	s.countFilter("projects", cat, s.projectCats)

	if isHTMX(c) {
		c.HTML(http.StatusOK, "projects-grid.html", s.page(cat, content.AllCategory))
		return
	}
	metrics.PageViews.WithLabelValues("projects").Inc()
	c.HTML(http.StatusOK, "index.html", s.page(cat, content.AllCategory))
}

func (s *Server) handleSkills(c *gin.Context) {
	cat := category(c)
	s.countFilter("skills", cat, s.skillCats)

	if isHTMX(c) {
		c.HTML(http.StatusOK, "skills-grid.html", s.page(content.AllCategory, cat))
		return
	}
	metrics.PageViews.WithLabelValues("skills").Inc()
	c.HTML(http.StatusOK, "index.html", s.page(content.AllCategory, cat))
}

func (s *Server) countFilter(list, cat string, known []string) {
	if !content.IsCategory(known, cat) {
		cat = "unknown"
	}
	metrics.FilterRequests.WithLabelValues(list, cat).Inc()
}

// handleRole serves the role after ?after=N. The fragment re-polls itself
// after the rotate interval, so the cycle runs without client script.
func (s *Server) handleRole(c *gin.Context) {
	d := s.page(content.AllCategory, content.AllCategory)
	roles := s.content.Profile.Roles

	after, err := strconv.Atoi(c.Query("after"))
	if err != nil {
		after = -1
	}
	if len(roles) > 0 {
		d.RoleIndex = motion.NextIndex(after, len(roles))
		d.Role = roles[d.RoleIndex]
	}
	c.HTML(http.StatusOK, "role.html", d)
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", s.page(content.AllCategory, content.AllCategory))
}

// handleContact validates the form, waits out the simulated submission and
// answers with a cleared form. Problems are rendered into the form with
// status 200 so HTMX swaps them in.
func (s *Server) handleContact(c *gin.Context) {
	d := s.page(content.AllCategory, content.AllCategory)
	form := d.Form

	var sub contact.Submission
	bindErr := c.ShouldBind(&sub)
	form.Values = sub.Trim()
	if bindErr == nil {
		// Whitespace-only fields pass "required" until trimmed.
		bindErr = binding.Validator.ValidateStruct(form.Values)
	}

	if bindErr != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		form.Errors = contact.FieldErrors(bindErr)
		c.HTML(http.StatusOK, contactTemplate(c), d)
		return
	}

	// Only valid submissions spend a rate limit token.
	if !s.limiter.Allow(c.ClientIP()) {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeLimited).Inc()
		form.Failure = "You've sent a few messages already. Please try again in a little while."
		c.HTML(http.StatusOK, contactTemplate(c), d)
		return
	}

	receipt, err := s.contact.Submit(c.Request.Context(), form.Values)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeCancelled).Inc()
			s.log.Info("contact.cancelled", "request_id", c.GetString(requestIDKey))
			c.Status(499)
			return
		}
		s.log.Error("contact.failed", "error", err)
		form.Failure = "Sorry, there was an error sending your message. Please try again later."
		c.HTML(http.StatusOK, contactTemplate(c), d)
		return
	}

	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeSent).Inc()
	s.log.Info("contact.received", "receipt", receipt.ID, "request_id", c.GetString(requestIDKey))

	form.Success = "Thank you for your message! I'll get back to you soon."
	form.Reset()
	c.HTML(http.StatusOK, contactTemplate(c), d)
}

// contactTemplate picks the fragment for HTMX posts and the whole page for
// plain form posts.
func contactTemplate(c *gin.Context) string {
	if isHTMX(c) {
		return "contact-form.html"
	}
	return "index.html"
}

func (s *Server) handlePrivacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"Profile":   s.content.Profile,
		"Retention": int(s.cfg.AnalyticsRetention.Hours() / 24),
		"Tracking":  s.store != nil,
	})
}
