package model

// Go models for the profile aggregate edited through the collection
// operations and rendered by the projections.

type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedIn"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
	Objective string `json:"objective"`
}

type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

type Experience struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// Skill carries a generated id like every other collection so that
// update and remove address entries by identity rather than position.
type Skill struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link,omitempty"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Profile is the root aggregate. Collections keep insertion order; that
// order is display order, there is no separate sort key.
type Profile struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
}

// Theme holds the portfolio accent colors. Independently mutable from
// the profile it decorates.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
}

const (
	DefaultPrimaryColor   = "#64748b"
	DefaultSecondaryColor = "#0ea5e9"
	DefaultAccentColor    = "#10b981"
)

// DefaultTheme returns the documented default color triple.
func DefaultTheme() Theme {
	return Theme{
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
		AccentColor:    DefaultAccentColor,
	}
}

// WithDefaults fills any blank color from the default triple.
func (t Theme) WithDefaults() Theme {
	d := DefaultTheme()
	if t.PrimaryColor == "" {
		t.PrimaryColor = d.PrimaryColor
	}
	if t.SecondaryColor == "" {
		t.SecondaryColor = d.SecondaryColor
	}
	if t.AccentColor == "" {
		t.AccentColor = d.AccentColor
	}
	return t
}

// Customization covers the resume-only presentation knobs.
type Customization struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontSize       string `json:"fontSize"`
	FontFamily     string `json:"fontFamily"`
}

func (c Customization) WithDefaults() Customization {
	if c.PrimaryColor == "" {
		c.PrimaryColor = DefaultPrimaryColor
	}
	if c.SecondaryColor == "" {
		c.SecondaryColor = DefaultSecondaryColor
	}
	if c.FontSize == "" {
		c.FontSize = "14px"
	}
	if c.FontFamily == "" {
		c.FontFamily = "Inter"
	}
	return c
}

// EmptyProfile is the initial state of a session: blank personal info,
// no entries in any collection.
func EmptyProfile() Profile {
	return Profile{
		Education:      []Education{},
		Experience:     []Experience{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Achievements:   []Achievement{},
	}
}

// Clone returns a deep copy so callers can hand out snapshots without
// sharing slice backing arrays with the live profile.
func (p Profile) Clone() Profile {
	out := p
	out.Education = append([]Education(nil), p.Education...)
	out.Experience = make([]Experience, len(p.Experience))
	for i, e := range p.Experience {
		e.Responsibilities = append([]string(nil), e.Responsibilities...)
		out.Experience[i] = e
	}
	out.Skills = make([]Skill, len(p.Skills))
	for i, s := range p.Skills {
		s.Items = append([]string(nil), s.Items...)
		out.Skills[i] = s
	}
	out.Projects = append([]Project(nil), p.Projects...)
	out.Certifications = append([]Certification(nil), p.Certifications...)
	out.Achievements = append([]Achievement(nil), p.Achievements...)
	return out
}
