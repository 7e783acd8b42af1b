// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// Document is the full resume: eight independent slices edited through the builder.
type Document struct {
	Header       Header            `json:"header"`
	Summary      Summary           `json:"summary"`
	Skills       Skills            `json:"skills"`
	Experience   []ExperienceItem  `json:"experience"`
	Education    []EducationItem   `json:"education"`
	Publications []PublicationItem `json:"publications"`
	Projects     []ProjectItem     `json:"projects"`
	Awards       []AwardItem       `json:"awards"`
}

// Header holds contact information
type Header struct {
	FullName          string `json:"full_name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone"`
	LinkedIn          string `json:"linkedin"`
	GitHub            string `json:"github"`
	Website           string `json:"website" validate:"omitempty,url"`
	Location          string `json:"location"`
	WorkAuthorization string `json:"work_authorization"`
}

// Summary holds the professional summary paragraph and its supporting lists
type Summary struct {
	Content         string   `json:"content" validate:"required"`
	YearsExperience string   `json:"years_experience"`
	FocusAreas      []string `json:"focus_areas"`
	Achievements    []string `json:"achievements"`
}

// ExperienceItem represents a single position. EndDate is kept when Current is set but never rendered.
type ExperienceItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title" validate:"required"`
	Company   string   `json:"company" validate:"required"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Current   bool     `json:"current"`
	Bullets   []string `json:"bullets"`
}

// EducationItem represents a degree
type EducationItem struct {
	ID                string `json:"id"`
	Degree            string `json:"degree" validate:"required"`
	Field             string `json:"field" validate:"required"`
	Institution       string `json:"institution" validate:"required"`
	Location          string `json:"location"`
	Year              string `json:"year"`
	DissertationTitle string `json:"dissertation_title,omitempty"`
	GPA               string `json:"gpa,omitempty"`
}

// PublicationItem represents a paper
type PublicationItem struct {
	ID            string `json:"id"`
	Title         string `json:"title" validate:"required"`
	Authors       string `json:"authors" validate:"required"`
	Venue         string `json:"venue" validate:"required"`
	Year          string `json:"year" validate:"required"`
	Citations     string `json:"citations,omitempty"`
	Link          string `json:"link,omitempty" validate:"omitempty,url"`
	IsFirstAuthor bool   `json:"is_first_author"`
}

// ProjectItem represents a project or open source contribution
type ProjectItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty" validate:"omitempty,url"`
	Impact       string   `json:"impact,omitempty"`
}

// AwardItem represents an award or recognition
type AwardItem struct {
	ID           string `json:"id"`
	Title        string `json:"title" validate:"required"`
	Organization string `json:"organization" validate:"required"`
	Year         string `json:"year" validate:"required"`
	Description  string `json:"description,omitempty"`
}

// ItemID implements editor.Item
func (e ExperienceItem) ItemID() string { return e.ID }

// ItemID implements editor.Item
func (e EducationItem) ItemID() string { return e.ID }

// ItemID implements editor.Item
func (p PublicationItem) ItemID() string { return p.ID }

// ItemID implements editor.Item
func (p ProjectItem) ItemID() string { return p.ID }

// ItemID implements editor.Item
func (a AwardItem) ItemID() string { return a.ID }

// DefaultDocument returns the document every session starts from: default skills, everything else empty.
func DefaultDocument() Document {
	return Document{
		Summary: Summary{
			FocusAreas:   []string{},
			Achievements: []string{},
		},
		Skills:       DefaultSkills(),
		Experience:   []ExperienceItem{},
		Education:    []EducationItem{},
		Publications: []PublicationItem{},
		Projects:     []ProjectItem{},
		Awards:       []AwardItem{},
	}
}

// Clone returns a deep copy of the document. Nil lists stay nil.
func (d Document) Clone() Document {
	out := d
	out.Summary = d.Summary.Clone()
	out.Skills = d.Skills.Clone()

	out.Experience = cloneItems(d.Experience, func(e ExperienceItem) ExperienceItem {
		e.Bullets = slices.Clone(e.Bullets)
		return e
	})
	out.Education = slices.Clone(d.Education)
	out.Publications = slices.Clone(d.Publications)
	out.Projects = cloneItems(d.Projects, func(p ProjectItem) ProjectItem {
		p.Technologies = slices.Clone(p.Technologies)
		return p
	})
	out.Awards = slices.Clone(d.Awards)
	return out
}

// Clone returns a copy of the summary with fresh lists
func (s Summary) Clone() Summary {
	s.FocusAreas = slices.Clone(s.FocusAreas)
	s.Achievements = slices.Clone(s.Achievements)
	return s
}

func cloneItems[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}
