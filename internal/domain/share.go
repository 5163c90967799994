package domain

import (
	"fmt"
	"strings"
	"time"

	"profile-engine/internal/model"
)

// ShareRecord is an immutable published snapshot of a profile plus its
// portfolio theme, retrievable anonymously by slug. Only the theme may
// change after publish; records are never deleted.
type ShareRecord struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	PersonalInfo model.PersonalInfo `json:"personalInfo"`
	ResumeData   model.Profile      `json:"resumeData"`
	Theme        model.Theme        `json:"theme"`
	IsPublic     bool               `json:"isPublic"`
	Slug         string             `json:"slug"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// Slugify derives the public lookup key from a full name: lowercased,
// runs of non-alphanumerics collapsed to single hyphens, trimmed, with
// "portfolio" as the fallback for names that reduce to nothing.
func Slugify(fullName string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(fullName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "portfolio"
	}
	return s
}

// DisambiguateSlug appends -2, -3, ... until the slug is not taken.
// The first publisher of a name keeps the bare slug.
func DisambiguateSlug(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		s := fmt.Sprintf("%s-%d", base, i)
		if !taken(s) {
			return s
		}
	}
}
