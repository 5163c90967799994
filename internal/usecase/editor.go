package usecase

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"profile-engine/internal/domain"
	"profile-engine/internal/model"
)

// Collection names accepted by the editor. Skills carry generated ids
// like every other collection, so one id-based contract covers all six.
const (
	ColEducation      = "education"
	ColExperience     = "experience"
	ColSkills         = "skills"
	ColProjects       = "projects"
	ColCertifications = "certifications"
	ColAchievements   = "achievements"
)

// Editor turns single store updates into add/update/remove semantics
// for the repeated collections. Every operation runs inside
// Store.Mutate, so the read-modify-write of a collection is atomic and
// concurrent edits never overwrite each other. UpdateField and Remove
// report a missing id as domain.ErrNotFound and leave the collection
// unchanged; a removed id is never resurrected.
type Editor struct {
	store *Store
	log   *zap.Logger
}

func NewEditor(store *Store, log *zap.Logger) *Editor {
	return &Editor{store: store, log: log.Named("editor")}
}

func newID() string { return uuid.NewString() }

// updateByID replaces the field mutation result for the entity with the
// matching id and leaves every other entity untouched.
func updateByID[T any](items []T, id string, getID func(T) string, mutate func(*T) error) ([]T, error) {
	for i, it := range items {
		if getID(it) == id {
			out := append([]T(nil), items...)
			if err := mutate(&out[i]); err != nil {
				return items, err
			}
			return out, nil
		}
	}
	return items, domain.ErrNotFound
}

func removeByID[T any](items []T, id string, getID func(T) string) ([]T, error) {
	for i, it := range items {
		if getID(it) == id {
			out := append([]T(nil), items[:i]...)
			return append(out, items[i+1:]...), nil
		}
	}
	return items, domain.ErrNotFound
}

// Add appends an empty entity with a fresh id and returns the id.
func (e *Editor) Add(sessionID, collection string) (string, error) {
	id := newID()
	err := e.store.Mutate(sessionID, func(p *model.Profile) error {
		switch collection {
		case ColEducation:
			p.Education = append(p.Education, model.Education{ID: id})
		case ColExperience:
			// a new experience starts with one blank responsibility line
			p.Experience = append(p.Experience, model.Experience{ID: id, Responsibilities: []string{""}})
		case ColSkills:
			p.Skills = append(p.Skills, model.Skill{ID: id, Items: []string{}})
		case ColProjects:
			p.Projects = append(p.Projects, model.Project{ID: id})
		case ColCertifications:
			p.Certifications = append(p.Certifications, model.Certification{ID: id})
		case ColAchievements:
			p.Achievements = append(p.Achievements, model.Achievement{ID: id})
		default:
			return domain.ErrUnknownCollection
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	e.log.Debug("entity added", zap.String("collection", collection), zap.String("id", id))
	return id, nil
}

// UpdateField replaces one named field of the entity with the matching id.
func (e *Editor) UpdateField(sessionID, collection, id, field, value string) error {
	return e.store.Mutate(sessionID, func(p *model.Profile) error {
		var err error
		switch collection {
		case ColEducation:
			p.Education, err = updateByID(p.Education, id, func(x model.Education) string { return x.ID }, func(x *model.Education) error {
				return setEducationField(x, field, value)
			})
		case ColExperience:
			p.Experience, err = updateByID(p.Experience, id, func(x model.Experience) string { return x.ID }, func(x *model.Experience) error {
				return setExperienceField(x, field, value)
			})
		case ColSkills:
			p.Skills, err = updateByID(p.Skills, id, func(x model.Skill) string { return x.ID }, func(x *model.Skill) error {
				return setSkillField(x, field, value)
			})
		case ColProjects:
			p.Projects, err = updateByID(p.Projects, id, func(x model.Project) string { return x.ID }, func(x *model.Project) error {
				return setProjectField(x, field, value)
			})
		case ColCertifications:
			p.Certifications, err = updateByID(p.Certifications, id, func(x model.Certification) string { return x.ID }, func(x *model.Certification) error {
				return setCertificationField(x, field, value)
			})
		case ColAchievements:
			p.Achievements, err = updateByID(p.Achievements, id, func(x model.Achievement) string { return x.ID }, func(x *model.Achievement) error {
				return setAchievementField(x, field, value)
			})
		default:
			return domain.ErrUnknownCollection
		}
		return err
	})
}

// Remove excludes the entity with the matching id.
func (e *Editor) Remove(sessionID, collection, id string) error {
	return e.store.Mutate(sessionID, func(p *model.Profile) error {
		var err error
		switch collection {
		case ColEducation:
			p.Education, err = removeByID(p.Education, id, func(x model.Education) string { return x.ID })
		case ColExperience:
			p.Experience, err = removeByID(p.Experience, id, func(x model.Experience) string { return x.ID })
		case ColSkills:
			p.Skills, err = removeByID(p.Skills, id, func(x model.Skill) string { return x.ID })
		case ColProjects:
			p.Projects, err = removeByID(p.Projects, id, func(x model.Project) string { return x.ID })
		case ColCertifications:
			p.Certifications, err = removeByID(p.Certifications, id, func(x model.Certification) string { return x.ID })
		case ColAchievements:
			p.Achievements, err = removeByID(p.Achievements, id, func(x model.Achievement) string { return x.ID })
		default:
			return domain.ErrUnknownCollection
		}
		return err
	})
}

// AddResponsibility appends one empty line to an experience entry.
func (e *Editor) AddResponsibility(sessionID, expID string) error {
	return e.mutateExperience(sessionID, expID, func(x *model.Experience) error {
		x.Responsibilities = append(append([]string(nil), x.Responsibilities...), "")
		return nil
	})
}

func (e *Editor) UpdateResponsibility(sessionID, expID string, index int, value string) error {
	return e.mutateExperience(sessionID, expID, func(x *model.Experience) error {
		if index < 0 || index >= len(x.Responsibilities) {
			return domain.ErrNotFound
		}
		out := append([]string(nil), x.Responsibilities...)
		out[index] = value
		x.Responsibilities = out
		return nil
	})
}

// RemoveResponsibility removes the line at index, refusing to empty the
// list: an experience entry always keeps at least one responsibility.
func (e *Editor) RemoveResponsibility(sessionID, expID string, index int) error {
	return e.mutateExperience(sessionID, expID, func(x *model.Experience) error {
		if index < 0 || index >= len(x.Responsibilities) {
			return domain.ErrNotFound
		}
		if len(x.Responsibilities) <= 1 {
			return domain.ErrLastResponsibility
		}
		out := append([]string(nil), x.Responsibilities[:index]...)
		x.Responsibilities = append(out, x.Responsibilities[index+1:]...)
		return nil
	})
}

func (e *Editor) mutateExperience(sessionID, expID string, fn func(*model.Experience) error) error {
	return e.store.Mutate(sessionID, func(p *model.Profile) error {
		var err error
		p.Experience, err = updateByID(p.Experience, expID, func(x model.Experience) string { return x.ID }, fn)
		return err
	})
}

func setEducationField(x *model.Education, field, value string) error {
	switch field {
	case "degree":
		x.Degree = value
	case "institution":
		x.Institution = value
	case "duration":
		x.Duration = value
	case "description":
		x.Description = value
	default:
		return domain.ErrUnknownField
	}
	return nil
}

func setExperienceField(x *model.Experience, field, value string) error {
	switch field {
	case "title":
		x.Title = value
	case "company":
		x.Company = value
	case "duration":
		x.Duration = value
	default:
		// responsibilities are edited through the dedicated operations
		return domain.ErrUnknownField
	}
	return nil
}

func setSkillField(x *model.Skill, field, value string) error {
	switch field {
	case "category":
		x.Category = value
	case "items":
		x.Items = ParseSkillItems(value)
	default:
		return domain.ErrUnknownField
	}
	return nil
}

func setProjectField(x *model.Project, field, value string) error {
	switch field {
	case "title":
		x.Title = value
	case "description":
		x.Description = value
	case "technologies":
		x.Technologies = value
	case "link":
		x.Link = value
	default:
		return domain.ErrUnknownField
	}
	return nil
}

func setCertificationField(x *model.Certification, field, value string) error {
	switch field {
	case "name":
		x.Name = value
	case "issuer":
		x.Issuer = value
	case "date":
		x.Date = value
	default:
		return domain.ErrUnknownField
	}
	return nil
}

func setAchievementField(x *model.Achievement, field, value string) error {
	switch field {
	case "title":
		x.Title = value
	case "description":
		x.Description = value
	default:
		return domain.ErrUnknownField
	}
	return nil
}

// ParseSkillItems splits a comma-separated display string into items:
// split on ",", trim each piece, drop empties. Items containing literal
// commas do not round-trip; there is no escaping.
func ParseSkillItems(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinSkillItems is the reverse transform for display.
func JoinSkillItems(items []string) string {
	return strings.Join(items, ", ")
}
