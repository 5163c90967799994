package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-engine/internal/model"
)

func TestResumeHTMLOmitsEmptySections(t *testing.T) {
	r := NewHTMLRenderer("../../templates")

	p := model.EmptyProfile()
	p.PersonalInfo.FullName = "Jane Doe"
	p.Experience = []model.Experience{{
		ID: "x1", Title: "Engineer", Company: "Acme", Duration: "2020-2022",
		Responsibilities: []string{"Built X"},
	}}

	html, err := r.ResumeHTML(BuildResumeView(p, model.Customization{}))
	require.NoError(t, err)

	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, `id="experience"`)
	assert.Contains(t, html, "Built X")
	for _, absent := range []string{`id="education"`, `id="projects"`, `id="skills"`, `id="certifications"`, `id="achievements"`} {
		assert.NotContains(t, html, absent)
	}
	// stylesheet is inlined into head
	assert.Contains(t, html, "<style>")
}

func TestResumeHTMLPlaceholderName(t *testing.T) {
	r := NewHTMLRenderer("../../templates")
	html, err := r.ResumeHTML(BuildResumeView(model.EmptyProfile(), model.Customization{}))
	require.NoError(t, err)
	assert.Contains(t, html, NamePlaceholder)
}

func TestPortfolioHTMLNavAndContact(t *testing.T) {
	r := NewHTMLRenderer("../../templates")

	p := model.EmptyProfile()
	p.PersonalInfo.FullName = "Jane Doe"
	p.PersonalInfo.Email = "jane@example.com"
	p.Skills = []model.Skill{{ID: "s1", Category: "Languages", Items: []string{"Go"}}}

	html, err := r.PortfolioHTML(BuildPortfolioView(p, model.Theme{}))
	require.NoError(t, err)

	assert.Contains(t, html, `href="#skills"`)
	assert.NotContains(t, html, `href="#projects"`)
	assert.Contains(t, html, `id="contact"`)
	assert.Contains(t, html, "mailto:jane@example.com")
	assert.True(t, strings.Contains(html, model.DefaultAccentColor))
}
