package content

// AllCategory selects every entry.
const AllCategory = "All"

// FilterProjects returns the projects whose category equals category.
// AllCategory or an empty category returns the full list.
func FilterProjects(projects []Project, category string) []Project {
	if category == "" || category == AllCategory {
		return projects
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FilterSkills is FilterProjects for skills.
func FilterSkills(skills []Skill, category string) []Skill {
	if category == "" || category == AllCategory {
		return skills
	}
	out := make([]Skill, 0, len(skills))
	for _, s := range skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// ProjectCategories returns AllCategory followed by each distinct project
// category in first-seen order.
func ProjectCategories(projects []Project) []string {
	cats := make([]string, len(projects))
	for i, p := range projects {
		cats[i] = p.Category
	}
	return categories(cats)
}

// SkillCategories is ProjectCategories for skills.
func SkillCategories(skills []Skill) []string {
	cats := make([]string, len(skills))
	for i, s := range skills {
		cats[i] = s.Category
	}
	return categories(cats)
}

func categories(in []string) []string {
	out := []string{AllCategory}
	seen := map[string]bool{AllCategory: true}
	for _, c := range in {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// IsCategory reports whether category is one of cats.
func IsCategory(cats []string, category string) bool {
	for _, c := range cats {
		if c == category {
			return true
		}
	}
	return false
}
