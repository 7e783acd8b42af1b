// Package builder holds the resume document and is the only place it changes.
package builder

import "github.com/jonathan/resume-builder/internal/types"

// Replacement is a whole new value for exactly one section of the document.
// The set of implementations is closed; build one with the Replace* functions.
type Replacement interface {
	Section() types.Section
	apply(doc types.Document) types.Document
}

type headerReplacement struct{ value types.Header }

func (r headerReplacement) Section() types.Section { return types.SectionHeader }
func (r headerReplacement) apply(doc types.Document) types.Document {
	doc.Header = r.value
	return doc
}

type summaryReplacement struct{ value types.Summary }

func (r summaryReplacement) Section() types.Section { return types.SectionSummary }
func (r summaryReplacement) apply(doc types.Document) types.Document {
	doc.Summary = r.value
	return doc
}

type skillsReplacement struct{ value types.Skills }

func (r skillsReplacement) Section() types.Section { return types.SectionSkills }
func (r skillsReplacement) apply(doc types.Document) types.Document {
	doc.Skills = r.value
	return doc
}

type experienceReplacement struct{ value []types.ExperienceItem }

func (r experienceReplacement) Section() types.Section { return types.SectionExperience }
func (r experienceReplacement) apply(doc types.Document) types.Document {
	doc.Experience = r.value
	return doc
}

type educationReplacement struct{ value []types.EducationItem }

func (r educationReplacement) Section() types.Section { return types.SectionEducation }
func (r educationReplacement) apply(doc types.Document) types.Document {
	doc.Education = r.value
	return doc
}

type publicationsReplacement struct{ value []types.PublicationItem }

func (r publicationsReplacement) Section() types.Section { return types.SectionPublications }
func (r publicationsReplacement) apply(doc types.Document) types.Document {
	doc.Publications = r.value
	return doc
}

type projectsReplacement struct{ value []types.ProjectItem }

func (r projectsReplacement) Section() types.Section { return types.SectionProjects }
func (r projectsReplacement) apply(doc types.Document) types.Document {
	doc.Projects = r.value
	return doc
}

type awardsReplacement struct{ value []types.AwardItem }

func (r awardsReplacement) Section() types.Section { return types.SectionAwards }
func (r awardsReplacement) apply(doc types.Document) types.Document {
	doc.Awards = r.value
	return doc
}

// ReplaceHeader builds a replacement for the header section
func ReplaceHeader(v types.Header) Replacement { return headerReplacement{v} }

// ReplaceSummary builds a replacement for the summary section
func ReplaceSummary(v types.Summary) Replacement { return summaryReplacement{v} }

// ReplaceSkills builds a replacement for the skills section
func ReplaceSkills(v types.Skills) Replacement { return skillsReplacement{v} }

// ReplaceExperience builds a replacement for the experience list
func ReplaceExperience(v []types.ExperienceItem) Replacement { return experienceReplacement{v} }

// ReplaceEducation builds a replacement for the education list
func ReplaceEducation(v []types.EducationItem) Replacement { return educationReplacement{v} }

// ReplacePublications builds a replacement for the publications list
func ReplacePublications(v []types.PublicationItem) Replacement { return publicationsReplacement{v} }

// ReplaceProjects builds a replacement for the projects list
func ReplaceProjects(v []types.ProjectItem) Replacement { return projectsReplacement{v} }

// ReplaceAwards builds a replacement for the awards list
func ReplaceAwards(v []types.AwardItem) Replacement { return awardsReplacement{v} }
