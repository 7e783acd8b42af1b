// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// fieldText is the prompt label of a field and an example value shown as help
type fieldText struct {
	label   string
	example string
}

var headerText = map[HeaderField]fieldText{
	HeaderFullName:          {"Full Name", "Dr. John Smith"},
	HeaderEmail:             {"Email", "john.smith@university.edu"},
	HeaderPhone:             {"Phone", "+1 (555) 123-4567"},
	HeaderLinkedIn:          {"LinkedIn", "linkedin.com/in/johnsmith"},
	HeaderGitHub:            {"GitHub", "github.com/johnsmith"},
	HeaderWebsite:           {"Personal Website", "www.johnsmith.ai"},
	HeaderLocation:          {"Location", "San Francisco, CA"},
	HeaderWorkAuthorization: {"Work Authorization", "U.S. Citizen / H1B / OPT"},
}

var summaryText = map[SummaryField]fieldText{
	SummaryContent:         {"Professional Summary", "AI Research Scientist with X+ years of experience..."},
	SummaryYearsExperience: {"Years of Experience", "6+"},
}

var experienceText = map[ExperienceField]fieldText{
	ExperienceTitle:     {"Job Title", "Senior Research Scientist"},
	ExperienceCompany:   {"Company", "Meta AI Research"},
	ExperienceLocation:  {"Location", "Menlo Park, CA"},
	ExperienceStartDate: {"Start Date", "Jan 2020"},
	ExperienceEndDate:   {"End Date", "Present"},
}

var educationText = map[EducationField]fieldText{
	EducationDegree:            {"Degree", "Ph.D."},
	EducationFieldOfStudy:      {"Field of Study", "Computer Science"},
	EducationInstitution:       {"Institution", "Stanford University"},
	EducationLocation:          {"Location", "Stanford, CA"},
	EducationYear:              {"Year", "2020"},
	EducationDissertationTitle: {"Dissertation Title", "Neural Architectures for Large-Scale Information Retrieval"},
	EducationGPA:               {"GPA", "3.9/4.0"},
}

var publicationText = map[PublicationField]fieldText{
	PublicationTitle:     {"Paper Title", "Retrieval-Augmented Generation for Knowledge-Intensive NLP Tasks"},
	PublicationAuthors:   {"Authors", "J. Smith, A. Johnson, et al."},
	PublicationVenue:     {"Venue", "NeurIPS"},
	PublicationYear:      {"Year", "2023"},
	PublicationCitations: {"Citations", "150+"},
	PublicationLink:      {"Link/DOI", "https://arxiv.org/abs/..."},
}

var projectText = map[ProjectField]fieldText{
	ProjectTitle:       {"Project Title", "Multi-Modal RAG Framework"},
	ProjectDescription: {"Description", "Developed an open-source RAG framework that combines dense and sparse retrieval..."},
	ProjectLink:        {"Link/Repository", "https://github.com/username/project"},
	ProjectImpact:      {"Impact/Metrics", "1000+ GitHub stars, used by 50+ organizations"},
}

var awardText = map[AwardField]fieldText{
	AwardTitle:        {"Award Title", "Best Paper Award"},
	AwardOrganization: {"Organization/Venue", "NeurIPS 2023"},
	AwardYear:         {"Year", "2023"},
	AwardDescription:  {"Description", "Recognition for outstanding contribution to retrieval-augmented generation research"},
}

// Label returns the prompt label of the field
func (f HeaderField) Label() string { return headerText[f].label }

// Example returns a sample value for the field
func (f HeaderField) Example() string { return headerText[f].example }

// Label returns the prompt label of the field
func (f SummaryField) Label() string { return summaryText[f].label }

// Example returns a sample value for the field
func (f SummaryField) Example() string { return summaryText[f].example }

// Label returns the prompt label of the field
func (f ExperienceField) Label() string { return experienceText[f].label }

// Example returns a sample value for the field
func (f ExperienceField) Example() string { return experienceText[f].example }

// Label returns the prompt label of the field
func (f EducationField) Label() string { return educationText[f].label }

// Example returns a sample value for the field
func (f EducationField) Example() string { return educationText[f].example }

// Label returns the prompt label of the field
func (f PublicationField) Label() string { return publicationText[f].label }

// Example returns a sample value for the field
func (f PublicationField) Example() string { return publicationText[f].example }

// Label returns the prompt label of the field
func (f ProjectField) Label() string { return projectText[f].label }

// Example returns a sample value for the field
func (f ProjectField) Example() string { return projectText[f].example }

// Label returns the prompt label of the field
func (f AwardField) Label() string { return awardText[f].label }

// Example returns a sample value for the field
func (f AwardField) Example() string { return awardText[f].example }
