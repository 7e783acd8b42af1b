// Package session runs the interactive editing loop: a section menu over a
// builder.Builder, per-section prompts, a live preview after every change and
// export on request.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-builder/internal/builder"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// Menu entries shared by several prompts
const (
	optBack   = "Back"
	optAdd    = "Add new"
	optRemove = "Remove"
	optEdit   = "Edit"
	optExport = "Export"
	optFinish = "Finish"
)

// Session drives one interactive editing run
type Session struct {
	builder *builder.Builder
	driver  PromptDriver
	printer *observability.Printer
	log     zerolog.Logger

	exportSuffix string
	outputDir    string
	verbose      bool

	exported []string
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithExportSuffix sets the suffix used in export file names
func WithExportSuffix(suffix string) Option {
	return func(s *Session) { s.exportSuffix = suffix }
}

// WithOutputDir sets the directory exports are written to
func WithOutputDir(dir string) Option {
	return func(s *Session) { s.outputDir = dir }
}

// WithVerbose prints the completeness check after every preview
func WithVerbose(verbose bool) Option {
	return func(s *Session) { s.verbose = verbose }
}

// New creates a Session editing b. Previews and reports are written to out.
// The session subscribes to b, so every change made through b is previewed.
func New(b *builder.Builder, driver PromptDriver, out io.Writer, opts ...Option) *Session {
	s := &Session{
		builder:      b,
		driver:       driver,
		printer:      observability.NewPrinter(out),
		log:          zerolog.Nop(),
		exportSuffix: rendering.DefaultExportSuffix,
		outputDir:    ".",
	}
	for _, opt := range opts {
		opt(s)
	}
	b.Subscribe(s.render)
	return s
}

// Exported returns the paths written by Export, oldest first
func (s *Session) Exported() []string {
	return append([]string(nil), s.exported...)
}

func (s *Session) render(doc types.Document) {
	s.printer.PrintPreview(rendering.BuildPreview(doc))
	if s.verbose {
		s.printer.PrintViolations(validation.Check(doc))
	}
}

// Run shows the section menu until the user picks Finish. It returns
// ErrAborted when the user interrupts a prompt.
func (s *Session) Run(ctx context.Context) error {
	s.render(s.builder.Document())

	for {
		options := make([]string, 0, len(types.Sections)+2)
		for _, sec := range types.Sections {
			options = append(options, s.sectionLabel(sec))
		}
		options = append(options, optExport, optFinish)

		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      "Choose a section",
			Options:      options,
			DefaultIndex: int(s.builder.Selected()),
		})
		if err != nil {
			return err
		}

		switch {
		case idx >= 0 && idx < len(types.Sections):
			sec := types.Sections[idx]
			s.builder.Select(sec)
			if err := s.editSection(ctx, sec); err != nil {
				return err
			}
		case idx == len(types.Sections):
			if _, err := s.Export(); err != nil {
				return err
			}
		default:
			s.log.Debug().Int("exports", len(s.exported)).Msg("session finished")
			return nil
		}
	}
}

// Export writes the current document to the output directory and reports the path.
// Completeness problems are shown but never block the export.
func (s *Session) Export() (string, error) {
	doc := s.builder.Document()

	if violations := validation.Check(doc); violations.Count() > 0 {
		s.printer.PrintViolations(violations)
	}

	path, err := rendering.WriteExport(s.outputDir, rendering.ExportDocument(doc, s.exportSuffix))
	if err != nil {
		return "", fmt.Errorf("failed to export resume: %w", err)
	}

	s.exported = append(s.exported, path)
	s.log.Info().Str("path", path).Msg("export written")
	s.printer.PrintExported(path)
	return path, nil
}

func (s *Session) sectionLabel(sec types.Section) string {
	if sec == s.builder.Selected() {
		return "▸ " + sec.Title()
	}
	return "  " + sec.Title()
}

func (s *Session) editSection(ctx context.Context, sec types.Section) error {
	switch sec {
	case types.SectionHeader:
		return s.editHeader(ctx)
	case types.SectionSummary:
		return s.editSummary(ctx)
	case types.SectionSkills:
		return s.editSkills(ctx)
	case types.SectionExperience:
		return s.editItems(ctx, s.experienceForm())
	case types.SectionEducation:
		return s.editItems(ctx, s.educationForm())
	case types.SectionPublications:
		return s.editItems(ctx, s.publicationsForm())
	case types.SectionProjects:
		return s.editItems(ctx, s.projectsForm())
	case types.SectionAwards:
		return s.editItems(ctx, s.awardsForm())
	}
	return nil
}

func (s *Session) editHeader(ctx context.Context) error {
	for {
		header := s.builder.Header().Value()
		options := make([]string, 0, len(types.HeaderFields)+1)
		for _, f := range types.HeaderFields {
			options = append(options, fieldOption(f.Label(), header.Get(f)))
		}
		options = append(options, optBack)

		idx, err := s.driver.Select(ctx, SelectConfig{Message: "Header", Options: options})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(types.HeaderFields) {
			return nil
		}

		f := types.HeaderFields[idx]
		value, err := s.driver.Input(ctx, InputConfig{Message: f.Label(), Default: header.Get(f), Help: "e.g. " + f.Example()})
		if err != nil {
			return err
		}
		s.builder.Header().Set(f, value)
	}
}

func (s *Session) editSummary(ctx context.Context) error {
	const (
		content = iota
		years
		generate
		focus
		achievements
	)

	for {
		summary := s.builder.Summary().Value()
		options := []string{
			fieldOption(types.SummaryContent.Label(), summary.Content),
			fieldOption(types.SummaryYearsExperience.Label(), summary.YearsExperience),
			"Generate Sample",
			fmt.Sprintf("Key Focus Areas (%d)", len(summary.FocusAreas)),
			fmt.Sprintf("Key Achievements (%d)", len(summary.Achievements)),
			optBack,
		}

		idx, err := s.driver.Select(ctx, SelectConfig{Message: "Summary", Options: options})
		if err != nil {
			return err
		}

		switch idx {
		case content:
			value, err := s.driver.TextArea(ctx, TextAreaConfig{
				Message: types.SummaryContent.Label(),
				Default: summary.Content,
				Help:    "3-5 lines",
			})
			if err != nil {
				return err
			}
			s.builder.Summary().Set(types.SummaryContent, value)
		case years:
			value, err := s.driver.Input(ctx, InputConfig{
				Message: types.SummaryYearsExperience.Label(),
				Default: summary.YearsExperience,
				Help:    "e.g. " + types.SummaryYearsExperience.Example(),
			})
			if err != nil {
				return err
			}
			s.builder.Summary().Set(types.SummaryYearsExperience, value)
		case generate:
			s.builder.Summary().GenerateSample()
		case focus:
			ed := s.builder.Summary()
			if err := s.editStrings(ctx, stringList{
				title:  "Key Focus Areas",
				help:   "e.g. Retrieval-Augmented Generation",
				items:  func() []string { return s.builder.Summary().Value().FocusAreas },
				add:    ed.AddFocusArea,
				set:    ed.SetFocusArea,
				remove: ed.RemoveFocusArea,
			}); err != nil {
				return err
			}
		case achievements:
			ed := s.builder.Summary()
			if err := s.editStrings(ctx, stringList{
				title:  "Key Achievements",
				help:   "e.g. First-author at ACL, ICLR, and NeurIPS",
				items:  func() []string { return s.builder.Summary().Value().Achievements },
				add:    ed.AddAchievement,
				set:    ed.SetAchievement,
				remove: ed.RemoveAchievement,
			}); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *Session) editSkills(ctx context.Context) error {
	for {
		skills := s.builder.Skills().Value()
		options := make([]string, 0, len(types.SkillCategories)+1)
		for _, c := range types.SkillCategories {
			options = append(options, fmt.Sprintf("%s (%d)", c.Label(), len(skills.Get(c))))
		}
		options = append(options, optBack)

		idx, err := s.driver.Select(ctx, SelectConfig{Message: "Skills", Options: options})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(types.SkillCategories) {
			return nil
		}

		c := types.SkillCategories[idx]
		ed := s.builder.Skills()
		if err := s.editStrings(ctx, stringList{
			title:  c.Label(),
			items:  func() []string { return s.builder.Skills().Value().Get(c) },
			add:    func(v string) { ed.AddSkill(c, v) },
			set:    func(i int, v string) { ed.SetSkill(c, i, v) },
			remove: func(i int) { ed.RemoveSkill(c, i) },
		}); err != nil {
			return err
		}
	}
}

// stringList binds a list of strings to its editor operations
type stringList struct {
	title  string
	help   string
	items  func() []string
	add    func(string)
	set    func(int, string)
	remove func(int)
}

func (s *Session) editStrings(ctx context.Context, list stringList) error {
	for {
		items := list.items()
		options := make([]string, 0, len(items)+2)
		for i, item := range items {
			options = append(options, fmt.Sprintf("%d. %s", i+1, placeholder(item, "(empty)")))
		}
		options = append(options, optAdd, optBack)

		idx, err := s.driver.Select(ctx, SelectConfig{Message: list.title, Options: options})
		if err != nil {
			return err
		}

		switch {
		case idx >= 0 && idx < len(items):
			action, err := s.driver.Select(ctx, SelectConfig{
				Message: fmt.Sprintf("%s #%d", list.title, idx+1),
				Options: []string{optEdit, optRemove, optBack},
			})
			if err != nil {
				return err
			}
			switch action {
			case 0:
				value, err := s.driver.Input(ctx, InputConfig{Message: list.title, Default: items[idx], Help: list.help})
				if err != nil {
					return err
				}
				list.set(idx, value)
			case 1:
				list.remove(idx)
			}
		case idx == len(items):
			value, err := s.driver.Input(ctx, InputConfig{Message: list.title, Help: list.help})
			if err != nil {
				return err
			}
			list.add(value)
		default:
			return nil
		}
	}
}

func fieldOption(label, value string) string {
	return fmt.Sprintf("%s: %s", label, placeholder(value, "-"))
}

func placeholder(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
