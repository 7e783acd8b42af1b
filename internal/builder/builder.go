package builder

import (
	"github.com/rs/zerolog"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/types"
)

// Subscriber is notified with the new document after every replacement
type Subscriber func(doc types.Document)

// Builder owns the resume document and the currently selected section.
// ReplaceSlice is the only way the document changes; the editors returned by
// Header, Summary, ... Awards are wired to it. Builder is not safe for
// concurrent use.
type Builder struct {
	doc         types.Document
	selected    types.Section
	ids         ids.Generator
	subscribers []Subscriber
	log         zerolog.Logger
}

// Option configures a Builder
type Option func(*Builder)

// WithDocument starts the builder from doc instead of types.DefaultDocument()
func WithDocument(doc types.Document) Option {
	return func(b *Builder) {
		b.doc = doc.Clone()
	}
}

// WithIDs sets the generator used for new list items
func WithIDs(g ids.Generator) Option {
	return func(b *Builder) {
		b.ids = g
	}
}

// WithLogger sets the logger for replacement events
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) {
		b.log = l
	}
}

// New creates a Builder holding the default document
func New(opts ...Option) *Builder {
	b := &Builder{
		doc:      types.DefaultDocument(),
		selected: types.SectionHeader,
		ids:      ids.UUID{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Document returns a deep copy of the current document
func (b *Builder) Document() types.Document {
	return b.doc.Clone()
}

// ReplaceSlice swaps one section for a new value, leaving every other section
// untouched, then notifies subscribers in the order they subscribed.
func (b *Builder) ReplaceSlice(r Replacement) {
	b.doc = r.apply(b.doc).Clone()

	b.log.Debug().
		Str("section", r.Section().String()).
		Int("subscribers", len(b.subscribers)).
		Msg("section replaced")

	if len(b.subscribers) == 0 {
		return
	}
	snapshot := b.doc.Clone()
	for _, fn := range b.subscribers {
		fn(snapshot)
	}
}

// Subscribe registers fn to receive the document after every replacement
func (b *Builder) Subscribe(fn Subscriber) {
	b.subscribers = append(b.subscribers, fn)
}

// Select changes the selected section. It does not touch the document.
func (b *Builder) Select(s types.Section) {
	b.selected = s
	b.log.Debug().Str("section", s.String()).Msg("section selected")
}

// Selected returns the selected section
func (b *Builder) Selected() types.Section {
	return b.selected
}

// Header returns an editor for the header section
func (b *Builder) Header() *editor.HeaderEditor {
	return editor.NewHeaderEditor(
		func() types.Header { return b.doc.Header },
		func(v types.Header) { b.ReplaceSlice(ReplaceHeader(v)) },
	)
}

// Summary returns an editor for the summary section
func (b *Builder) Summary() *editor.SummaryEditor {
	return editor.NewSummaryEditor(
		func() types.Summary { return b.doc.Summary },
		func(v types.Summary) { b.ReplaceSlice(ReplaceSummary(v)) },
	)
}

// Skills returns an editor for the skills section
func (b *Builder) Skills() *editor.SkillsEditor {
	return editor.NewSkillsEditor(
		func() types.Skills { return b.doc.Skills },
		func(v types.Skills) { b.ReplaceSlice(ReplaceSkills(v)) },
	)
}

// Experience returns an editor for the experience list
func (b *Builder) Experience() *editor.ExperienceEditor {
	return editor.NewExperienceEditor(
		func() []types.ExperienceItem { return b.doc.Experience },
		func(v []types.ExperienceItem) { b.ReplaceSlice(ReplaceExperience(v)) },
		b.ids,
	)
}

// Education returns an editor for the education list
func (b *Builder) Education() *editor.EducationEditor {
	return editor.NewEducationEditor(
		func() []types.EducationItem { return b.doc.Education },
		func(v []types.EducationItem) { b.ReplaceSlice(ReplaceEducation(v)) },
		b.ids,
	)
}

// Publications returns an editor for the publications list
func (b *Builder) Publications() *editor.PublicationsEditor {
	return editor.NewPublicationsEditor(
		func() []types.PublicationItem { return b.doc.Publications },
		func(v []types.PublicationItem) { b.ReplaceSlice(ReplacePublications(v)) },
		b.ids,
	)
}

// Projects returns an editor for the projects list
func (b *Builder) Projects() *editor.ProjectsEditor {
	return editor.NewProjectsEditor(
		func() []types.ProjectItem { return b.doc.Projects },
		func(v []types.ProjectItem) { b.ReplaceSlice(ReplaceProjects(v)) },
		b.ids,
	)
}

// Awards returns an editor for the awards list
func (b *Builder) Awards() *editor.AwardsEditor {
	return editor.NewAwardsEditor(
		func() []types.AwardItem { return b.doc.Awards },
		func(v []types.AwardItem) { b.ReplaceSlice(ReplaceAwards(v)) },
		b.ids,
	)
}
