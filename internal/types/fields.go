// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// HeaderField names one string field of Header
type HeaderField int

const (
	HeaderFullName HeaderField = iota
	HeaderEmail
	HeaderPhone
	HeaderLinkedIn
	HeaderGitHub
	HeaderWebsite
	HeaderLocation
	HeaderWorkAuthorization
)

// HeaderFields lists every header field in form order
var HeaderFields = []HeaderField{
	HeaderFullName, HeaderEmail, HeaderPhone, HeaderLinkedIn,
	HeaderGitHub, HeaderWebsite, HeaderLocation, HeaderWorkAuthorization,
}

// Get returns the value of one field
func (h Header) Get(f HeaderField) string {
	switch f {
	case HeaderFullName:
		return h.FullName
	case HeaderEmail:
		return h.Email
	case HeaderPhone:
		return h.Phone
	case HeaderLinkedIn:
		return h.LinkedIn
	case HeaderGitHub:
		return h.GitHub
	case HeaderWebsite:
		return h.Website
	case HeaderLocation:
		return h.Location
	case HeaderWorkAuthorization:
		return h.WorkAuthorization
	}
	return ""
}

// With returns a copy of h with one field set
func (h Header) With(f HeaderField, value string) Header {
	switch f {
	case HeaderFullName:
		h.FullName = value
	case HeaderEmail:
		h.Email = value
	case HeaderPhone:
		h.Phone = value
	case HeaderLinkedIn:
		h.LinkedIn = value
	case HeaderGitHub:
		h.GitHub = value
	case HeaderWebsite:
		h.Website = value
	case HeaderLocation:
		h.Location = value
	case HeaderWorkAuthorization:
		h.WorkAuthorization = value
	}
	return h
}

// SummaryField names one string field of Summary
type SummaryField int

const (
	SummaryContent SummaryField = iota
	SummaryYearsExperience
)

// Get returns the value of one field
func (s Summary) Get(f SummaryField) string {
	switch f {
	case SummaryContent:
		return s.Content
	case SummaryYearsExperience:
		return s.YearsExperience
	}
	return ""
}

// With returns a copy of s with one field set. Lists are shared with s.
func (s Summary) With(f SummaryField, value string) Summary {
	switch f {
	case SummaryContent:
		s.Content = value
	case SummaryYearsExperience:
		s.YearsExperience = value
	}
	return s
}

// ExperienceField names one string field of ExperienceItem
type ExperienceField int

const (
	ExperienceTitle ExperienceField = iota
	ExperienceCompany
	ExperienceLocation
	ExperienceStartDate
	ExperienceEndDate
)

// ExperienceFields lists every string field in form order
var ExperienceFields = []ExperienceField{
	ExperienceTitle, ExperienceCompany, ExperienceLocation, ExperienceStartDate, ExperienceEndDate,
}

// Get returns the value of one field
func (e ExperienceItem) Get(f ExperienceField) string {
	switch f {
	case ExperienceTitle:
		return e.Title
	case ExperienceCompany:
		return e.Company
	case ExperienceLocation:
		return e.Location
	case ExperienceStartDate:
		return e.StartDate
	case ExperienceEndDate:
		return e.EndDate
	}
	return ""
}

// With returns a copy of e with one field set
func (e ExperienceItem) With(f ExperienceField, value string) ExperienceItem {
	switch f {
	case ExperienceTitle:
		e.Title = value
	case ExperienceCompany:
		e.Company = value
	case ExperienceLocation:
		e.Location = value
	case ExperienceStartDate:
		e.StartDate = value
	case ExperienceEndDate:
		e.EndDate = value
	}
	return e
}

// EducationField names one string field of EducationItem
type EducationField int

const (
	EducationDegree EducationField = iota
	EducationFieldOfStudy
	EducationInstitution
	EducationLocation
	EducationYear
	EducationDissertationTitle
	EducationGPA
)

// EducationFields lists every string field in form order
var EducationFields = []EducationField{
	EducationDegree, EducationFieldOfStudy, EducationInstitution, EducationLocation,
	EducationYear, EducationGPA, EducationDissertationTitle,
}

// Get returns the value of one field
func (e EducationItem) Get(f EducationField) string {
	switch f {
	case EducationDegree:
		return e.Degree
	case EducationFieldOfStudy:
		return e.Field
	case EducationInstitution:
		return e.Institution
	case EducationLocation:
		return e.Location
	case EducationYear:
		return e.Year
	case EducationDissertationTitle:
		return e.DissertationTitle
	case EducationGPA:
		return e.GPA
	}
	return ""
}

// With returns a copy of e with one field set
func (e EducationItem) With(f EducationField, value string) EducationItem {
	switch f {
	case EducationDegree:
		e.Degree = value
	case EducationFieldOfStudy:
		e.Field = value
	case EducationInstitution:
		e.Institution = value
	case EducationLocation:
		e.Location = value
	case EducationYear:
		e.Year = value
	case EducationDissertationTitle:
		e.DissertationTitle = value
	case EducationGPA:
		e.GPA = value
	}
	return e
}

// PublicationField names one string field of PublicationItem
type PublicationField int

const (
	PublicationTitle PublicationField = iota
	PublicationAuthors
	PublicationVenue
	PublicationYear
	PublicationCitations
	PublicationLink
)

// PublicationFields lists every string field in form order
var PublicationFields = []PublicationField{
	PublicationTitle, PublicationAuthors, PublicationVenue,
	PublicationYear, PublicationCitations, PublicationLink,
}

// Get returns the value of one field
func (p PublicationItem) Get(f PublicationField) string {
	switch f {
	case PublicationTitle:
		return p.Title
	case PublicationAuthors:
		return p.Authors
	case PublicationVenue:
		return p.Venue
	case PublicationYear:
		return p.Year
	case PublicationCitations:
		return p.Citations
	case PublicationLink:
		return p.Link
	}
	return ""
}

// With returns a copy of p with one field set
func (p PublicationItem) With(f PublicationField, value string) PublicationItem {
	switch f {
	case PublicationTitle:
		p.Title = value
	case PublicationAuthors:
		p.Authors = value
	case PublicationVenue:
		p.Venue = value
	case PublicationYear:
		p.Year = value
	case PublicationCitations:
		p.Citations = value
	case PublicationLink:
		p.Link = value
	}
	return p
}

// ProjectField names one string field of ProjectItem
type ProjectField int

const (
	ProjectTitle ProjectField = iota
	ProjectDescription
	ProjectLink
	ProjectImpact
)

// ProjectFields lists every string field in form order
var ProjectFields = []ProjectField{ProjectTitle, ProjectLink, ProjectDescription, ProjectImpact}

// Get returns the value of one field
func (p ProjectItem) Get(f ProjectField) string {
	switch f {
	case ProjectTitle:
		return p.Title
	case ProjectDescription:
		return p.Description
	case ProjectLink:
		return p.Link
	case ProjectImpact:
		return p.Impact
	}
	return ""
}

// With returns a copy of p with one field set
func (p ProjectItem) With(f ProjectField, value string) ProjectItem {
	switch f {
	case ProjectTitle:
		p.Title = value
	case ProjectDescription:
		p.Description = value
	case ProjectLink:
		p.Link = value
	case ProjectImpact:
		p.Impact = value
	}
	return p
}

// AwardField names one string field of AwardItem
type AwardField int

const (
	AwardTitle AwardField = iota
	AwardOrganization
	AwardYear
	AwardDescription
)

// AwardFields lists every string field in form order
var AwardFields = []AwardField{AwardTitle, AwardOrganization, AwardYear, AwardDescription}

// Get returns the value of one field
func (a AwardItem) Get(f AwardField) string {
	switch f {
	case AwardTitle:
		return a.Title
	case AwardOrganization:
		return a.Organization
	case AwardYear:
		return a.Year
	case AwardDescription:
		return a.Description
	}
	return ""
}

// With returns a copy of a with one field set
func (a AwardItem) With(f AwardField, value string) AwardItem {
	switch f {
	case AwardTitle:
		a.Title = value
	case AwardOrganization:
		a.Organization = value
	case AwardYear:
		a.Year = value
	case AwardDescription:
		a.Description = value
	}
	return a
}
