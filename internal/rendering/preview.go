// Package rendering turns a resume document into its preview and its plain-text export.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section headings as they appear in the rendered resume
const (
	TitleSummary      = "PROFESSIONAL SUMMARY"
	TitleSkills       = "TECHNICAL SKILLS"
	TitleExperience   = "PROFESSIONAL EXPERIENCE"
	TitleEducation    = "EDUCATION"
	TitlePublications = "PUBLICATIONS & RESEARCH"
	TitleProjects     = "PROJECTS & OPEN SOURCE"
	TitleAwards       = "AWARDS & RECOGNITION"
)

// presentLabel replaces the end date of a current position
const presentLabel = "Present"

// bulletPrefix starts every experience bullet line
const bulletPrefix = "• "

// Preview is the structured view of a document. The text export and the
// terminal preview are both written from it, so they always include the same
// sections and lines.
type Preview struct {
	Header   HeaderView
	Sections []SectionView
}

// HeaderView holds the name and contact lines
type HeaderView struct {
	Name  string
	Lines []string
}

// SectionView is one rendered section
type SectionView struct {
	Section types.Section
	Title   string
	// Spaced is set for item lists, whose entries are separated by a blank line
	Spaced  bool
	Entries []Entry
}

// Entry is one item (or one block) of a section
type Entry struct {
	Lines []string
}

// BuildPreview computes the structured view of doc. It is a pure function.
func BuildPreview(doc types.Document) Preview {
	p := Preview{Header: buildHeader(doc.Header)}

	if !isBlank(doc.Summary.Content) {
		p.Sections = append(p.Sections, SectionView{
			Section: types.SectionSummary,
			Title:   TitleSummary,
			Entries: []Entry{{Lines: []string{doc.Summary.Content}}},
		})
	}

	// Skills always renders, even with every category empty.
	p.Sections = append(p.Sections, buildSkills(doc.Skills))

	if len(doc.Experience) > 0 {
		p.Sections = append(p.Sections, listSection(types.SectionExperience, TitleExperience, doc.Experience, experienceLines))
	}
	if len(doc.Education) > 0 {
		p.Sections = append(p.Sections, listSection(types.SectionEducation, TitleEducation, doc.Education, educationLines))
	}
	if len(doc.Publications) > 0 {
		p.Sections = append(p.Sections, listSection(types.SectionPublications, TitlePublications, doc.Publications, publicationLines))
	}
	if len(doc.Projects) > 0 {
		p.Sections = append(p.Sections, listSection(types.SectionProjects, TitleProjects, doc.Projects, projectLines))
	}
	if len(doc.Awards) > 0 {
		p.Sections = append(p.Sections, listSection(types.SectionAwards, TitleAwards, doc.Awards, awardLines))
	}

	return p
}

// Has reports whether the preview contains the given section
func (p Preview) Has(s types.Section) bool {
	for _, sec := range p.Sections {
		if sec.Section == s {
			return true
		}
	}
	return false
}

func buildHeader(h types.Header) HeaderView {
	view := HeaderView{Name: h.FullName}

	if contact := joinNonBlank(" | ", h.Email, h.Phone); contact != "" {
		view.Lines = append(view.Lines, contact)
	}
	if !isBlank(h.Location) {
		view.Lines = append(view.Lines, h.Location)
	}
	view.Lines = appendLabeled(view.Lines, "LinkedIn", h.LinkedIn)
	view.Lines = appendLabeled(view.Lines, "GitHub", h.GitHub)
	view.Lines = appendLabeled(view.Lines, "Website", h.Website)
	view.Lines = appendLabeled(view.Lines, "Work Authorization", h.WorkAuthorization)

	return view
}

func buildSkills(s types.Skills) SectionView {
	section := SectionView{Section: types.SectionSkills, Title: TitleSkills}
	var lines []string
	for _, c := range types.SkillCategories {
		entries := nonBlank(s.Get(c))
		if len(entries) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", c.ExportLabel(), strings.Join(entries, ", ")))
	}
	if len(lines) > 0 {
		section.Entries = []Entry{{Lines: lines}}
	}
	return section
}

func listSection[T any](s types.Section, title string, items []T, lines func(T) []string) SectionView {
	section := SectionView{Section: s, Title: title, Spaced: true}
	for _, item := range items {
		section.Entries = append(section.Entries, Entry{Lines: lines(item)})
	}
	return section
}

func experienceLines(e types.ExperienceItem) []string {
	end := e.EndDate
	if e.Current {
		end = presentLabel
	}
	lines := []string{
		fmt.Sprintf("%s | %s", e.Title, e.Company),
		fmt.Sprintf("%s | %s - %s", e.Location, e.StartDate, end),
	}
	for _, b := range nonBlank(e.Bullets) {
		lines = append(lines, bulletPrefix+b)
	}
	return lines
}

func educationLines(e types.EducationItem) []string {
	lines := []string{
		fmt.Sprintf("%s in %s", e.Degree, e.Field),
		fmt.Sprintf("%s, %s | %s", e.Institution, e.Location, e.Year),
	}
	lines = appendLabeled(lines, "Dissertation", e.DissertationTitle)
	lines = appendLabeled(lines, "GPA", e.GPA)
	return lines
}

func publicationLines(p types.PublicationItem) []string {
	venue := fmt.Sprintf("%s %s", p.Venue, p.Year)
	if !isBlank(p.Citations) {
		venue += fmt.Sprintf(" | %s citations", p.Citations)
	}
	if p.IsFirstAuthor {
		venue += " | First Author"
	}
	lines := []string{
		`"` + p.Title + `"`,
		p.Authors,
		venue,
	}
	if !isBlank(p.Link) {
		lines = append(lines, p.Link)
	}
	return lines
}

func projectLines(p types.ProjectItem) []string {
	lines := []string{p.Title, p.Description}
	if techs := nonBlank(p.Technologies); len(techs) > 0 {
		lines = append(lines, "Technologies: "+strings.Join(techs, ", "))
	}
	lines = appendLabeled(lines, "Impact", p.Impact)
	if !isBlank(p.Link) {
		lines = append(lines, p.Link)
	}
	return lines
}

func awardLines(a types.AwardItem) []string {
	lines := []string{fmt.Sprintf("%s | %s | %s", a.Title, a.Organization, a.Year)}
	if !isBlank(a.Description) {
		lines = append(lines, a.Description)
	}
	return lines
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func nonBlank(list []string) []string {
	var out []string
	for _, v := range list {
		if !isBlank(v) {
			out = append(out, v)
		}
	}
	return out
}

func joinNonBlank(sep string, values ...string) string {
	return strings.Join(nonBlank(values), sep)
}

func appendLabeled(lines []string, label, value string) []string {
	if isBlank(value) {
		return lines
	}
	return append(lines, fmt.Sprintf("%s: %s", label, value))
}
