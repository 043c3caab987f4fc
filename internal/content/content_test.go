package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContentIsValid(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Profile.Name)
	assert.NotEmpty(t, c.Profile.Roles)
	assert.NotEmpty(t, c.Projects)
	assert.NotEmpty(t, c.Skills)

	p, ok := c.ProjectByID("portfolio")
	require.True(t, ok)
	assert.Equal(t, "Web", p.Category)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("  ")
	require.NoError(t, err)
	d, err := Default()
	require.NoError(t, err)
	assert.Equal(t, d, c)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "content.yaml")
	body := `
profile:
  name: Ada
  roles: [Engineer]
projects:
  - {id: a, title: A, category: Web}
skills:
  - {name: Go, category: Languages, proficiency: 100}
social:
  - {platform: github, url: "https://github.com/ada"}
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.Profile.Name)
	assert.Len(t, c.Projects, 1)
	assert.Equal(t, 100, c.Skills[0].Proficiency)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("profile: [unclosed"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidContent))
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	c := &Content{
		Projects: []Project{
			{ID: "x", Category: "Web"},
			{ID: "x", Category: "", RepoURL: "ftp://nope"},
		},
		Skills: []Skill{
			{Name: "Go", Category: "Languages", Proficiency: 101},
			{Name: "", Category: AllCategory, Proficiency: -1},
		},
		Social: []SocialLink{{Platform: "github", URL: "github.com/x"}},
	}

	err := c.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, errors.Is(err, ErrInvalidContent))

	msg := err.Error()
	for _, want := range []string{
		"profile.name is required",
		`projects[1].id "x" is duplicated`,
		"projects[1].category is required",
		"projects[1].repo_url",
		"skills[0].proficiency 101 outside 0..100",
		"skills[1].name is required",
		`skills[1].category "All" is reserved`,
		"skills[1].proficiency -1",
		"social[0].url",
	} {
		assert.True(t, strings.Contains(msg, want), "missing %q in %s", want, msg)
	}
}

func TestFeatured(t *testing.T) {
	c := &Content{Projects: []Project{
		{ID: "a", Featured: true},
		{ID: "b"},
		{ID: "c", Featured: true},
	}}
	got := c.Featured()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestSkillLevel(t *testing.T) {
	tests := []struct {
		proficiency int
		want        string
	}{
		{0, LevelBeginner},
		{69, LevelBeginner},
		{70, LevelIntermediate},
		{79, LevelIntermediate},
		{80, LevelAdvanced},
		{89, LevelAdvanced},
		{90, LevelExpert},
		{100, LevelExpert},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Skill{Proficiency: tt.proficiency}.Level(), "proficiency %d", tt.proficiency)
	}
}
