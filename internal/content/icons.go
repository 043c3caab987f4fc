package content

import "strings"

// DefaultIcon is served when a name has no entry or the remote image fails.
const DefaultIcon = "/static/img/default-icon.svg"

const deviconBase = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

var icons = map[string]string{
	"go":         deviconBase + "go/go-original-wordmark.svg",
	"python":     deviconBase + "python/python-original.svg",
	"javascript": deviconBase + "javascript/javascript-original.svg",
	"typescript": deviconBase + "typescript/typescript-original.svg",
	"html":       deviconBase + "html5/html5-original.svg",
	"css":        deviconBase + "css3/css3-original.svg",
	"tailwind":   deviconBase + "tailwindcss/tailwindcss-original.svg",
	"sqlite":     deviconBase + "sqlite/sqlite-original.svg",
	"postgres":   deviconBase + "postgresql/postgresql-original.svg",
	"docker":     deviconBase + "docker/docker-original.svg",
	"git":        deviconBase + "git/git-original.svg",
	"linux":      deviconBase + "linux/linux-original.svg",
	"react":      deviconBase + "react/react-original.svg",
	"github":     deviconBase + "github/github-original.svg",
	"linkedin":   deviconBase + "linkedin/linkedin-original.svg",
}

var socialLabels = map[string]string{
	"github":   "GitHub",
	"linkedin": "LinkedIn",
	"twitter":  "Twitter",
	"x":        "X",
	"email":    "Email",
}

// IconURL resolves an icon name. Names are matched case-insensitively;
// absolute URLs pass through unchanged.
func IconURL(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "/") {
		return name
	}
	if u, ok := icons[strings.ToLower(name)]; ok {
		return u
	}
	return DefaultIcon
}

// PlatformLabel returns a display label for a social platform key.
func PlatformLabel(platform string) string {
	if l, ok := socialLabels[strings.ToLower(platform)]; ok {
		return l
	}
	return platform
}
