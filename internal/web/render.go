package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/motion"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var funcs = template.FuncMap{
	"markdown":   content.Markdown,
	"icon":       content.IconURL,
	"platform":   content.PlatformLabel,
	"reveal":     reveal,
	"revealItem": revealItem,
	"join":       joinTech,
	"query":      url.QueryEscape,
	"year":       func() int { return time.Now().Year() },
}

func parseTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// reveal renders the attributes that play one timeline step once the
// enclosing section's `shown` flag flips.
func reveal(section, target string) template.HTMLAttr {
	step, ok := motion.TimelineFor(section).Step(target)
	if !ok {
		return ""
	}
	return stepAttrs(step)
}

// revealItem is reveal for the i-th card of a grid, delayed by its
// position.
func revealItem(section, target string, i int) template.HTMLAttr {
	if i < 0 {
		i = 0
	}
	steps := motion.TimelineFor(section).Items(target, i+1, motion.ItemStagger)
	if len(steps) == 0 {
		return ""
	}
	return stepAttrs(steps[i])
}

func stepAttrs(s motion.Step) template.HTMLAttr {
	return template.HTMLAttr(fmt.Sprintf(
		`class="reveal reveal-%s" :class="{ 'is-visible': shown }" style="transition-delay: %dms; transition-duration: %dms"`,
		s.Effect, s.DelayMS(), s.DurationMS(),
	))
}

func joinTech(items []string) string {
	return strings.Join(items, " · ")
}
