package usecase

import (
	"sync"

	"profile-engine/internal/model"
)

// PartialProfile is a top-level partial update. A non-nil field fully
// replaces the corresponding profile field; there is no deep merge.
// Callers editing a nested collection read the current value, build the
// whole new sequence and pass it back.
type PartialProfile struct {
	PersonalInfo   *model.PersonalInfo    `json:"personalInfo,omitempty"`
	Education      *[]model.Education     `json:"education,omitempty"`
	Experience     *[]model.Experience    `json:"experience,omitempty"`
	Skills         *[]model.Skill         `json:"skills,omitempty"`
	Projects       *[]model.Project       `json:"projects,omitempty"`
	Certifications *[]model.Certification `json:"certifications,omitempty"`
	Achievements   *[]model.Achievement   `json:"achievements,omitempty"`
}

// Store holds one editable profile per session. Profiles live for the
// session only; the sole durable artifacts are published ShareRecords.
// The store accepts whatever shape it is given and never fails; shape
// checks happen at the HTTP boundary.
//
// The original engine relied on a single-threaded event loop for edit
// atomicity; here every operation runs under the mutex instead.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*model.Profile
}

func NewStore() *Store {
	return &Store{sessions: map[string]*model.Profile{}}
}

func (s *Store) get(sessionID string) *model.Profile {
	p, ok := s.sessions[sessionID]
	if !ok {
		fresh := model.EmptyProfile()
		p = &fresh
		s.sessions[sessionID] = p
	}
	return p
}

// Profile returns a deep-copied snapshot of the session's profile.
func (s *Store) Profile(sessionID string) model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(sessionID).Clone()
}

// Update applies a top-level shallow merge.
func (s *Store) Update(sessionID string, partial PartialProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.get(sessionID)
	if partial.PersonalInfo != nil {
		p.PersonalInfo = *partial.PersonalInfo
	}
	if partial.Education != nil {
		p.Education = *partial.Education
	}
	if partial.Experience != nil {
		p.Experience = *partial.Experience
	}
	if partial.Skills != nil {
		p.Skills = *partial.Skills
	}
	if partial.Projects != nil {
		p.Projects = *partial.Projects
	}
	if partial.Certifications != nil {
		p.Certifications = *partial.Certifications
	}
	if partial.Achievements != nil {
		p.Achievements = *partial.Achievements
	}
}

// Mutate runs fn against the session's profile while holding the lock,
// so a read-modify-write edit is one atomic transition. fn works on a
// copy; the result is committed only when fn returns nil, leaving the
// profile untouched on error.
func (s *Store) Mutate(sessionID string, fn func(p *model.Profile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.get(sessionID)
	work := p.Clone()
	if err := fn(&work); err != nil {
		return err
	}
	*p = work
	return nil
}

// Reset restores the session to the empty initial profile.
func (s *Store) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh := model.EmptyProfile()
	s.sessions[sessionID] = &fresh
}
