// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Section names one top-level slice of the Document
type Section int

const (
	SectionHeader Section = iota
	SectionSummary
	SectionSkills
	SectionExperience
	SectionEducation
	SectionPublications
	SectionProjects
	SectionAwards
)

// Sections lists every section in display order
var Sections = []Section{
	SectionHeader,
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionPublications,
	SectionProjects,
	SectionAwards,
}

var sectionNames = map[Section]string{
	SectionHeader:       "header",
	SectionSummary:      "summary",
	SectionSkills:       "skills",
	SectionExperience:   "experience",
	SectionEducation:    "education",
	SectionPublications: "publications",
	SectionProjects:     "projects",
	SectionAwards:       "awards",
}

var sectionTitles = map[Section]string{
	SectionHeader:       "Header",
	SectionSummary:      "Summary",
	SectionSkills:       "Skills",
	SectionExperience:   "Experience",
	SectionEducation:    "Education",
	SectionPublications: "Publications",
	SectionProjects:     "Projects",
	SectionAwards:       "Awards",
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// Title returns the menu label of the section
func (s Section) Title() string {
	return sectionTitles[s]
}

// ParseSection resolves a section from its lowercase name
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if sectionNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", name)
}
