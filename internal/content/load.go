package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the content bundled with the binary.
func Default() (*Content, error) {
	return Parse(defaultYAML)
}

// Load reads a content file. An empty path loads the bundled default.
func Load(path string) (*Content, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML content.
func Parse(b []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every problem at once rather than stopping at the first.
func (c *Content) Validate() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(c.Profile.Name) == "" {
		addf("profile.name is required")
	}
	for i, r := range c.Profile.Roles {
		if strings.TrimSpace(r) == "" {
			addf("profile.roles[%d] is empty", i)
		}
	}

	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		switch {
		case p.ID == "":
			addf("projects[%d].id is required", i)
		case seen[p.ID]:
			addf("projects[%d].id %q is duplicated", i, p.ID)
		}
		seen[p.ID] = true

		if strings.TrimSpace(p.Category) == "" {
			addf("projects[%d].category is required", i)
		}
		if p.Category == AllCategory {
			addf("projects[%d].category %q is reserved", i, AllCategory)
		}
		for field, u := range map[string]string{"repo_url": p.RepoURL, "demo_url": p.DemoURL} {
			if u != "" && !isWebURL(u) {
				addf("projects[%d].%s %q is not an http(s) URL", i, field, u)
			}
		}
	}

	for i, s := range c.Skills {
		if strings.TrimSpace(s.Name) == "" {
			addf("skills[%d].name is required", i)
		}
		if strings.TrimSpace(s.Category) == "" {
			addf("skills[%d].category is required", i)
		}
		if s.Category == AllCategory {
			addf("skills[%d].category %q is reserved", i, AllCategory)
		}
		if s.Proficiency < 0 || s.Proficiency > 100 {
			addf("skills[%d].proficiency %d outside 0..100", i, s.Proficiency)
		}
	}

	for i, l := range c.Social {
		if !isWebURL(l.URL) {
			addf("social[%d].url %q is not an http(s) URL", i, l.URL)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func isWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
