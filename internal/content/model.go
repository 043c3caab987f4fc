package content

// Profile is the hero/about record.
type Profile struct {
	Name     string   `yaml:"name"`
	Headline string   `yaml:"headline"`
	Bio      string   `yaml:"bio"` // markdown
	Roles    []string `yaml:"roles"`
	Avatar   string   `yaml:"avatar"`
	Resume   string   `yaml:"resume"`
	Location string   `yaml:"location"`
	Email    string   `yaml:"email"`
}

// Project represents a portfolio project
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"` // markdown
	Category    string   `yaml:"category"`
	Tech        []string `yaml:"tech"`
	Image       string   `yaml:"image"`
	RepoURL     string   `yaml:"repo_url"`
	DemoURL     string   `yaml:"demo_url"`
	Featured    bool     `yaml:"featured"`
}

// Skill is a named proficiency score between 0 and 100.
type Skill struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Proficiency int    `yaml:"proficiency"`
	Icon        string `yaml:"icon"`
}

// Skill level tiers, from the proficiency score.
const (
	LevelExpert       = "Expert"
	LevelAdvanced     = "Advanced"
	LevelIntermediate = "Intermediate"
	LevelBeginner     = "Beginner"
)

// Level names the tier a proficiency score falls into.
func (s Skill) Level() string {
	switch {
	case s.Proficiency >= 90:
		return LevelExpert
	case s.Proficiency >= 80:
		return LevelAdvanced
	case s.Proficiency >= 70:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// AchievementGroup is a titled list of achievements.
type AchievementGroup struct {
	Title string   `yaml:"title"`
	Icon  string   `yaml:"icon"`
	Items []string `yaml:"items"`
}

// SocialLink is a profile on another site, shown in contact and footer.
type SocialLink struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
	Handle   string `yaml:"handle"`
}

// Content is everything the page renders. It is loaded once at startup
// and treated as read-only afterwards.
type Content struct {
	Profile      Profile            `yaml:"profile"`
	Projects     []Project          `yaml:"projects"`
	Skills       []Skill            `yaml:"skills"`
	Achievements []AchievementGroup `yaml:"achievements"`
	Social       []SocialLink       `yaml:"social"`
	FooterNote   string             `yaml:"footer_note"`
}

// ProjectByID returns the project with the given id.
func (c *Content) ProjectByID(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Featured returns the featured projects in declaration order.
func (c *Content) Featured() []Project {
	var out []Project
	for _, p := range c.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
