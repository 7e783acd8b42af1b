package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/samples"
	"github.com/jonathan/resume-builder/internal/types"
)

// itemForm binds one list section to prompts: the items to choose from, the
// string fields of an item and any extra per-item actions.
type itemForm struct {
	title  string
	noun   string
	items  func() []itemChoice
	add    func() string
	remove func(id string)
	fields []formField
	extras []itemAction
}

type itemChoice struct {
	id    string
	label string
}

type formField struct {
	label   string
	example string
	get     func(id string) string
	set     func(id, value string)
}

type itemAction struct {
	label func(id string) string
	run   func(ctx context.Context, id string) error
}

func (s *Session) editItems(ctx context.Context, form itemForm) error {
	for {
		items := form.items()
		options := make([]string, 0, len(items)+2)
		for i, item := range items {
			options = append(options, fmt.Sprintf("%d. %s", i+1, item.label))
		}
		options = append(options, optAdd, optBack)

		idx, err := s.driver.Select(ctx, SelectConfig{Message: form.title, Options: options})
		if err != nil {
			return err
		}

		switch {
		case idx >= 0 && idx < len(items):
			if err := s.editItem(ctx, form, items[idx].id); err != nil {
				return err
			}
		case idx == len(items):
			id := form.add()
			s.log.Debug().Str("section", form.title).Str("id", id).Msg("item added")
			if err := s.editItem(ctx, form, id); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *Session) editItem(ctx context.Context, form itemForm, id string) error {
	for {
		options := make([]string, 0, len(form.fields)+len(form.extras)+2)
		for _, f := range form.fields {
			options = append(options, fieldOption(f.label, f.get(id)))
		}
		for _, a := range form.extras {
			options = append(options, a.label(id))
		}
		options = append(options, optRemove, optBack)

		idx, err := s.driver.Select(ctx, SelectConfig{Message: form.noun, Options: options})
		if err != nil {
			return err
		}

		switch {
		case idx >= 0 && idx < len(form.fields):
			f := form.fields[idx]
			value, err := s.driver.Input(ctx, InputConfig{Message: f.label, Default: f.get(id), Help: "e.g. " + f.example})
			if err != nil {
				return err
			}
			f.set(id, value)
		case idx >= len(form.fields) && idx < len(form.fields)+len(form.extras):
			if err := form.extras[idx-len(form.fields)].run(ctx, id); err != nil {
				return err
			}
		case idx == len(form.fields)+len(form.extras):
			form.remove(id)
			s.log.Debug().Str("section", form.title).Str("id", id).Msg("item removed")
			return nil
		default:
			return nil
		}
	}
}

func (s *Session) confirmFlag(ctx context.Context, message string, current bool, set func(bool)) error {
	value, err := s.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: current})
	if err != nil {
		return err
	}
	set(value)
	return nil
}

func (s *Session) experienceForm() itemForm {
	ed := s.builder.Experience()
	get := func(id string) types.ExperienceItem {
		it, _ := s.builder.Experience().Item(id)
		return it
	}

	form := itemForm{
		title: types.SectionExperience.Title(),
		noun:  "Position",
		items: func() []itemChoice {
			var out []itemChoice
			for _, it := range s.builder.Experience().Items() {
				out = append(out, itemChoice{id: it.ID, label: pairLabel(it.Title, it.Company, "(new position)")})
			}
			return out
		},
		add:    ed.Add,
		remove: ed.Remove,
	}
	for _, f := range types.ExperienceFields {
		form.fields = append(form.fields, formField{
			label:   f.Label(),
			example: f.Example(),
			get:     func(id string) string { return get(id).Get(f) },
			set:     func(id, v string) { ed.Set(id, f, v) },
		})
	}
	form.extras = []itemAction{
		{
			label: func(id string) string { return checkLabel("Current Position", get(id).Current) },
			run: func(ctx context.Context, id string) error {
				return s.confirmFlag(ctx, "Current Position?", get(id).Current, func(v bool) { ed.SetCurrent(id, v) })
			},
		},
		{
			label: func(id string) string { return fmt.Sprintf("Key Achievements (%d)", len(get(id).Bullets)) },
			run: func(ctx context.Context, id string) error {
				return s.editStrings(ctx, stringList{
					title:  "Key Achievements",
					help:   "e.g. " + samples.ExperienceBullets[0],
					items:  func() []string { return get(id).Bullets },
					add:    func(v string) { ed.AddBullet(id, v) },
					set:    func(i int, v string) { ed.SetBullet(id, i, v) },
					remove: func(i int) { ed.RemoveBullet(id, i) },
				})
			},
		},
		{
			label: func(string) string { return "Show Sample Bullets" },
			run: func(context.Context, string) error {
				s.printer.PrintSampleBullets(samples.ExperienceBullets)
				return nil
			},
		},
	}
	return form
}

func (s *Session) educationForm() itemForm {
	ed := s.builder.Education()
	get := func(id string) types.EducationItem {
		it, _ := s.builder.Education().Item(id)
		return it
	}

	form := itemForm{
		title: types.SectionEducation.Title(),
		noun:  "Degree",
		items: func() []itemChoice {
			var out []itemChoice
			for _, it := range s.builder.Education().Items() {
				out = append(out, itemChoice{id: it.ID, label: pairLabel(it.Degree, it.Institution, "(new degree)")})
			}
			return out
		},
		add:    ed.Add,
		remove: ed.Remove,
	}
	for _, f := range types.EducationFields {
		form.fields = append(form.fields, formField{
			label:   f.Label(),
			example: f.Example(),
			get:     func(id string) string { return get(id).Get(f) },
			set:     func(id, v string) { ed.Set(id, f, v) },
		})
	}
	return form
}

func (s *Session) publicationsForm() itemForm {
	ed := s.builder.Publications()
	get := func(id string) types.PublicationItem {
		it, _ := s.builder.Publications().Item(id)
		return it
	}

	form := itemForm{
		title: types.SectionPublications.Title(),
		noun:  "Publication",
		items: func() []itemChoice {
			var out []itemChoice
			for _, it := range s.builder.Publications().Items() {
				out = append(out, itemChoice{id: it.ID, label: pairLabel(it.Title, it.Venue, "(new publication)")})
			}
			return out
		},
		add:    ed.Add,
		remove: ed.Remove,
	}
	for _, f := range types.PublicationFields {
		form.fields = append(form.fields, formField{
			label:   f.Label(),
			example: f.Example(),
			get:     func(id string) string { return get(id).Get(f) },
			set:     func(id, v string) { ed.Set(id, f, v) },
		})
	}
	form.extras = []itemAction{{
		label: func(id string) string { return checkLabel("First Author", get(id).IsFirstAuthor) },
		run: func(ctx context.Context, id string) error {
			return s.confirmFlag(ctx, "First Author?", get(id).IsFirstAuthor, func(v bool) { ed.SetFirstAuthor(id, v) })
		},
	}}
	return form
}

func (s *Session) projectsForm() itemForm {
	ed := s.builder.Projects()
	get := func(id string) types.ProjectItem {
		it, _ := s.builder.Projects().Item(id)
		return it
	}

	form := itemForm{
		title: types.SectionProjects.Title(),
		noun:  "Project",
		items: func() []itemChoice {
			var out []itemChoice
			for _, it := range s.builder.Projects().Items() {
				out = append(out, itemChoice{id: it.ID, label: placeholder(it.Title, "(new project)")})
			}
			return out
		},
		add:    ed.Add,
		remove: ed.Remove,
	}
	for _, f := range types.ProjectFields {
		form.fields = append(form.fields, formField{
			label:   f.Label(),
			example: f.Example(),
			get:     func(id string) string { return get(id).Get(f) },
			set:     func(id, v string) { ed.Set(id, f, v) },
		})
	}
	form.extras = []itemAction{{
		label: func(id string) string { return fmt.Sprintf("Technologies Used (%d)", len(get(id).Technologies)) },
		run: func(ctx context.Context, id string) error {
			return s.editStrings(ctx, stringList{
				title:  "Technologies Used",
				help:   "e.g. PyTorch",
				items:  func() []string { return get(id).Technologies },
				add:    func(v string) { ed.AddTechnology(id, v) },
				set:    func(i int, v string) { ed.SetTechnology(id, i, v) },
				remove: func(i int) { ed.RemoveTechnology(id, i) },
			})
		},
	}}
	return form
}

func (s *Session) awardsForm() itemForm {
	ed := s.builder.Awards()
	get := func(id string) types.AwardItem {
		it, _ := s.builder.Awards().Item(id)
		return it
	}

	form := itemForm{
		title: types.SectionAwards.Title(),
		noun:  "Award",
		items: func() []itemChoice {
			var out []itemChoice
			for _, it := range s.builder.Awards().Items() {
				out = append(out, itemChoice{id: it.ID, label: pairLabel(it.Title, it.Organization, "(new award)")})
			}
			return out
		},
		add:    ed.Add,
		remove: ed.Remove,
	}
	for _, f := range types.AwardFields {
		form.fields = append(form.fields, formField{
			label:   f.Label(),
			example: f.Example(),
			get:     func(id string) string { return get(id).Get(f) },
			set:     func(id, v string) { ed.Set(id, f, v) },
		})
	}
	return form
}

func pairLabel(first, second, fallback string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{first, second} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, " @ ")
}

func checkLabel(label string, on bool) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}
