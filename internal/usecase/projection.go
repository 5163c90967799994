package usecase

import (
	"profile-engine/internal/model"
)

// Projections are pure: they read a profile snapshot and produce view
// values, never touching the store. Both views omit a section entirely
// when its collection is empty, and both use the same fixed section
// order. Rendering never fails on missing data; blanks fall back to
// placeholders at the field level.

// NamePlaceholder is rendered in place of a blank full name.
const NamePlaceholder = "YOUR NAME"

// Section ids in the fixed display order. The order is a content
// decision: strongest signal first.
var SectionOrder = []string{
	SectionObjective,
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionEducation,
	SectionCertifications,
	SectionAchievements,
}

const (
	SectionAbout          = "about"
	SectionObjective      = "objective"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
	SectionContact        = "contact"
)

type ResumeView struct {
	Name          string
	PersonalInfo  model.PersonalInfo
	Customization model.Customization

	Objective      string
	Skills         []model.Skill
	Experience     []model.Experience
	Projects       []model.Project
	Education      []model.Education
	Certifications []model.Certification
	Achievements   []model.Achievement

	// Sections lists the rendered section ids in display order; an
	// empty collection contributes no entry.
	Sections []string
}

type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type PortfolioView struct {
	Name         string
	PersonalInfo model.PersonalInfo
	Theme        model.Theme

	Objective      string
	Skills         []model.Skill
	Experience     []model.Experience
	Projects       []model.Project
	Education      []model.Education
	Certifications []model.Certification
	Achievements   []model.Achievement

	Sections []string
	// Nav is the navigation index: about, the non-empty sections in
	// fixed order, then contact. The active anchor is a presentation
	// concern; the engine only guarantees the id set.
	Nav []NavItem
}

func displayName(pi model.PersonalInfo) string {
	if pi.FullName == "" {
		return NamePlaceholder
	}
	return pi.FullName
}

func presentSections(p model.Profile) []string {
	out := []string{}
	for _, id := range SectionOrder {
		switch id {
		case SectionObjective:
			if p.PersonalInfo.Objective != "" {
				out = append(out, id)
			}
		case SectionSkills:
			if len(p.Skills) > 0 {
				out = append(out, id)
			}
		case SectionExperience:
			if len(p.Experience) > 0 {
				out = append(out, id)
			}
		case SectionProjects:
			if len(p.Projects) > 0 {
				out = append(out, id)
			}
		case SectionEducation:
			if len(p.Education) > 0 {
				out = append(out, id)
			}
		case SectionCertifications:
			if len(p.Certifications) > 0 {
				out = append(out, id)
			}
		case SectionAchievements:
			if len(p.Achievements) > 0 {
				out = append(out, id)
			}
		}
	}
	return out
}

// BuildResumeView maps a profile plus resume customization into the
// single-page resume projection.
func BuildResumeView(p model.Profile, cust model.Customization) ResumeView {
	return ResumeView{
		Name:           displayName(p.PersonalInfo),
		PersonalInfo:   p.PersonalInfo,
		Customization:  cust.WithDefaults(),
		Objective:      p.PersonalInfo.Objective,
		Skills:         p.Skills,
		Experience:     p.Experience,
		Projects:       p.Projects,
		Education:      p.Education,
		Certifications: p.Certifications,
		Achievements:   p.Achievements,
		Sections:       presentSections(p),
	}
}

var sectionLabels = map[string]string{
	SectionAbout:          "About",
	SectionObjective:      "About",
	SectionSkills:         "Skills",
	SectionExperience:     "Experience",
	SectionProjects:       "Projects",
	SectionEducation:      "Education",
	SectionCertifications: "Certifications",
	SectionAchievements:   "Achievements",
	SectionContact:        "Contact",
}

// BuildPortfolioView maps a profile plus theme into the scrollable
// portfolio projection. A zero-value theme gets the default colors.
func BuildPortfolioView(p model.Profile, theme model.Theme) PortfolioView {
	sections := presentSections(p)
	nav := []NavItem{{ID: SectionAbout, Label: sectionLabels[SectionAbout]}}
	for _, id := range sections {
		if id == SectionObjective {
			// the objective renders inside the about hero
			continue
		}
		nav = append(nav, NavItem{ID: id, Label: sectionLabels[id]})
	}
	nav = append(nav, NavItem{ID: SectionContact, Label: sectionLabels[SectionContact]})

	return PortfolioView{
		Name:           displayName(p.PersonalInfo),
		PersonalInfo:   p.PersonalInfo,
		Theme:          theme.WithDefaults(),
		Objective:      p.PersonalInfo.Objective,
		Skills:         p.Skills,
		Experience:     p.Experience,
		Projects:       p.Projects,
		Education:      p.Education,
		Certifications: p.Certifications,
		Achievements:   p.Achievements,
		Sections:       sections,
		Nav:            nav,
	}
}

// Has reports whether the view renders the given section.
func (v ResumeView) Has(section string) bool { return containsSection(v.Sections, section) }

func (v PortfolioView) Has(section string) bool { return containsSection(v.Sections, section) }

func containsSection(sections []string, id string) bool {
	for _, s := range sections {
		if s == id {
			return true
		}
	}
	return false
}
