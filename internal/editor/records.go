package editor

import (
	"github.com/jonathan/resume-builder/internal/samples"
	"github.com/jonathan/resume-builder/internal/types"
)

// HeaderEditor edits the contact header
type HeaderEditor struct {
	current func() types.Header
	emit    func(types.Header)
}

// NewHeaderEditor creates a HeaderEditor reading from current and emitting replacements to emit
func NewHeaderEditor(current func() types.Header, emit func(types.Header)) *HeaderEditor {
	return &HeaderEditor{current: current, emit: emit}
}

// Value returns the current header
func (e *HeaderEditor) Value() types.Header {
	return e.current()
}

// Set replaces one header field
func (e *HeaderEditor) Set(field types.HeaderField, value string) {
	e.emit(e.current().With(field, value))
}

// SummaryEditor edits the professional summary and its focus area / achievement lists
type SummaryEditor struct {
	current func() types.Summary
	emit    func(types.Summary)
}

// NewSummaryEditor creates a SummaryEditor
func NewSummaryEditor(current func() types.Summary, emit func(types.Summary)) *SummaryEditor {
	return &SummaryEditor{current: current, emit: emit}
}

// Value returns the current summary
func (e *SummaryEditor) Value() types.Summary {
	return e.current()
}

// Set replaces one string field
func (e *SummaryEditor) Set(field types.SummaryField, value string) {
	e.emit(e.current().With(field, value))
}

// GenerateSample replaces the content with the sample paragraph for the current years of experience
func (e *SummaryEditor) GenerateSample() {
	s := e.current()
	e.emit(s.With(types.SummaryContent, samples.Summary(s.YearsExperience)))
}

// AddFocusArea appends a focus area
func (e *SummaryEditor) AddFocusArea(value string) {
	e.withFocusAreas(func(l []string) []string { return AppendString(l, value) })
}

// SetFocusArea replaces the focus area at index
func (e *SummaryEditor) SetFocusArea(index int, value string) {
	e.withFocusAreas(func(l []string) []string { return SetString(l, index, value) })
}

// RemoveFocusArea deletes the focus area at index
func (e *SummaryEditor) RemoveFocusArea(index int) {
	e.withFocusAreas(func(l []string) []string { return RemoveString(l, index) })
}

// AddAchievement appends an achievement
func (e *SummaryEditor) AddAchievement(value string) {
	e.withAchievements(func(l []string) []string { return AppendString(l, value) })
}

// SetAchievement replaces the achievement at index
func (e *SummaryEditor) SetAchievement(index int, value string) {
	e.withAchievements(func(l []string) []string { return SetString(l, index, value) })
}

// RemoveAchievement deletes the achievement at index
func (e *SummaryEditor) RemoveAchievement(index int) {
	e.withAchievements(func(l []string) []string { return RemoveString(l, index) })
}

func (e *SummaryEditor) withFocusAreas(fn func([]string) []string) {
	s := e.current()
	s.FocusAreas = fn(s.FocusAreas)
	e.emit(s)
}

func (e *SummaryEditor) withAchievements(fn func([]string) []string) {
	s := e.current()
	s.Achievements = fn(s.Achievements)
	e.emit(s)
}

// SkillsEditor edits the six skill categories
type SkillsEditor struct {
	current func() types.Skills
	emit    func(types.Skills)
}

// NewSkillsEditor creates a SkillsEditor
func NewSkillsEditor(current func() types.Skills, emit func(types.Skills)) *SkillsEditor {
	return &SkillsEditor{current: current, emit: emit}
}

// Value returns the current skills
func (e *SkillsEditor) Value() types.Skills {
	return e.current()
}

// Set replaces a whole category list
func (e *SkillsEditor) Set(category types.SkillCategory, list []string) {
	e.emit(e.current().With(category, append([]string{}, list...)))
}

// AddSkill appends an entry to a category
func (e *SkillsEditor) AddSkill(category types.SkillCategory, value string) {
	e.withCategory(category, func(l []string) []string { return AppendString(l, value) })
}

// SetSkill replaces the entry at index in a category
func (e *SkillsEditor) SetSkill(category types.SkillCategory, index int, value string) {
	e.withCategory(category, func(l []string) []string { return SetString(l, index, value) })
}

// RemoveSkill deletes the entry at index in a category
func (e *SkillsEditor) RemoveSkill(category types.SkillCategory, index int) {
	e.withCategory(category, func(l []string) []string { return RemoveString(l, index) })
}

func (e *SkillsEditor) withCategory(category types.SkillCategory, fn func([]string) []string) {
	s := e.current()
	e.emit(s.With(category, fn(s.Get(category))))
}
