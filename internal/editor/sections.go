package editor

import (
	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/types"
)

// ExperienceEditor edits the professional experience list
type ExperienceEditor struct {
	listEditor[types.ExperienceItem]
}

// NewExperienceEditor creates an ExperienceEditor drawing new item ids from g
func NewExperienceEditor(current func() []types.ExperienceItem, emit func([]types.ExperienceItem), g ids.Generator) *ExperienceEditor {
	return &ExperienceEditor{listEditor[types.ExperienceItem]{current: current, emit: emit, ids: g}}
}

// Add appends an empty position with one blank bullet and returns its id
func (e *ExperienceEditor) Add() string {
	return e.add(func(id string) types.ExperienceItem {
		return types.ExperienceItem{ID: id, Bullets: []string{""}}
	})
}

// Set replaces one string field of the item with the given id
func (e *ExperienceEditor) Set(id string, field types.ExperienceField, value string) {
	e.update(id, func(it types.ExperienceItem) types.ExperienceItem { return it.With(field, value) })
}

// SetCurrent marks the position as ongoing. The stored end date is kept.
func (e *ExperienceEditor) SetCurrent(id string, current bool) {
	e.update(id, func(it types.ExperienceItem) types.ExperienceItem {
		it.Current = current
		return it
	})
}

// AddBullet appends a bullet to the item
func (e *ExperienceEditor) AddBullet(id, value string) {
	e.withBullets(id, func(l []string) []string { return AppendString(l, value) })
}

// SetBullet replaces the bullet at index
func (e *ExperienceEditor) SetBullet(id string, index int, value string) {
	e.withBullets(id, func(l []string) []string { return SetString(l, index, value) })
}

// RemoveBullet deletes the bullet at index
func (e *ExperienceEditor) RemoveBullet(id string, index int) {
	e.withBullets(id, func(l []string) []string { return RemoveString(l, index) })
}

func (e *ExperienceEditor) withBullets(id string, fn func([]string) []string) {
	e.update(id, func(it types.ExperienceItem) types.ExperienceItem {
		it.Bullets = fn(it.Bullets)
		return it
	})
}

// EducationEditor edits the education list
type EducationEditor struct {
	listEditor[types.EducationItem]
}

// NewEducationEditor creates an EducationEditor
func NewEducationEditor(current func() []types.EducationItem, emit func([]types.EducationItem), g ids.Generator) *EducationEditor {
	return &EducationEditor{listEditor[types.EducationItem]{current: current, emit: emit, ids: g}}
}

// Add appends an empty degree and returns its id
func (e *EducationEditor) Add() string {
	return e.add(func(id string) types.EducationItem {
		return types.EducationItem{ID: id}
	})
}

// Set replaces one string field of the item with the given id
func (e *EducationEditor) Set(id string, field types.EducationField, value string) {
	e.update(id, func(it types.EducationItem) types.EducationItem { return it.With(field, value) })
}

// PublicationsEditor edits the publications list
type PublicationsEditor struct {
	listEditor[types.PublicationItem]
}

// NewPublicationsEditor creates a PublicationsEditor
func NewPublicationsEditor(current func() []types.PublicationItem, emit func([]types.PublicationItem), g ids.Generator) *PublicationsEditor {
	return &PublicationsEditor{listEditor[types.PublicationItem]{current: current, emit: emit, ids: g}}
}

// Add appends an empty publication and returns its id
func (e *PublicationsEditor) Add() string {
	return e.add(func(id string) types.PublicationItem {
		return types.PublicationItem{ID: id}
	})
}

// Set replaces one string field of the item with the given id
func (e *PublicationsEditor) Set(id string, field types.PublicationField, value string) {
	e.update(id, func(it types.PublicationItem) types.PublicationItem { return it.With(field, value) })
}

// SetFirstAuthor sets the first-author flag
func (e *PublicationsEditor) SetFirstAuthor(id string, first bool) {
	e.update(id, func(it types.PublicationItem) types.PublicationItem {
		it.IsFirstAuthor = first
		return it
	})
}

// ProjectsEditor edits the projects list
type ProjectsEditor struct {
	listEditor[types.ProjectItem]
}

// NewProjectsEditor creates a ProjectsEditor
func NewProjectsEditor(current func() []types.ProjectItem, emit func([]types.ProjectItem), g ids.Generator) *ProjectsEditor {
	return &ProjectsEditor{listEditor[types.ProjectItem]{current: current, emit: emit, ids: g}}
}

// Add appends an empty project and returns its id
func (e *ProjectsEditor) Add() string {
	return e.add(func(id string) types.ProjectItem {
		return types.ProjectItem{ID: id, Technologies: []string{}}
	})
}

// Set replaces one string field of the item with the given id
func (e *ProjectsEditor) Set(id string, field types.ProjectField, value string) {
	e.update(id, func(it types.ProjectItem) types.ProjectItem { return it.With(field, value) })
}

// AddTechnology appends a technology to the project
func (e *ProjectsEditor) AddTechnology(id, value string) {
	e.withTechnologies(id, func(l []string) []string { return AppendString(l, value) })
}

// SetTechnology replaces the technology at index
func (e *ProjectsEditor) SetTechnology(id string, index int, value string) {
	e.withTechnologies(id, func(l []string) []string { return SetString(l, index, value) })
}

// RemoveTechnology deletes the technology at index
func (e *ProjectsEditor) RemoveTechnology(id string, index int) {
	e.withTechnologies(id, func(l []string) []string { return RemoveString(l, index) })
}

func (e *ProjectsEditor) withTechnologies(id string, fn func([]string) []string) {
	e.update(id, func(it types.ProjectItem) types.ProjectItem {
		it.Technologies = fn(it.Technologies)
		return it
	})
}

// AwardsEditor edits the awards list
type AwardsEditor struct {
	listEditor[types.AwardItem]
}

// NewAwardsEditor creates an AwardsEditor
func NewAwardsEditor(current func() []types.AwardItem, emit func([]types.AwardItem), g ids.Generator) *AwardsEditor {
	return &AwardsEditor{listEditor[types.AwardItem]{current: current, emit: emit, ids: g}}
}

// Add appends an empty award and returns its id
func (e *AwardsEditor) Add() string {
	return e.add(func(id string) types.AwardItem {
		return types.AwardItem{ID: id}
	})
}

// Set replaces one string field of the item with the given id
func (e *AwardsEditor) Set(id string, field types.AwardField, value string) {
	e.update(id, func(it types.AwardItem) types.AwardItem { return it.With(field, value) })
}
