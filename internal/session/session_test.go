package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/builder"
	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/types"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	confirm   []bool
	textAreas []string
	selectErr error

	selects    []SelectConfig
	inputPos   int
	selectPos  int
	confirmPos int
	textPos    int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		if s.selectErr != nil {
			return -1, s.selectErr
		}
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

// main menu indices
const (
	menuExport = 8
	menuFinish = 9
)

func newSession(t *testing.T, doc types.Document, driver *stubDriver, opts ...Option) (*builder.Builder, *Session, *bytes.Buffer) {
	t.Helper()
	b := builder.New(builder.WithDocument(doc), builder.WithIDs(ids.NewCounter("item")))
	var out bytes.Buffer
	opts = append([]Option{WithOutputDir(t.TempDir())}, opts...)
	return b, New(b, driver, &out, opts...), &out
}

func TestRun_EditHeader(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0, 0, 8, menuFinish},
		inputs:    []string{"Jane Doe"},
	}
	b, s, out := newSession(t, types.DefaultDocument(), driver)

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, "Jane Doe", b.Document().Header.FullName)
	assert.Equal(t, types.SectionHeader, b.Selected())
	assert.Contains(t, out.String(), "Your Name", "initial preview uses the placeholder")
	assert.Contains(t, out.String(), "│ Jane Doe")
}

func TestRun_ExperienceAndExport(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{
			3,       // Experience
			0,       // Add new
			0,       // Job Title
			1,       // Company
			5,       // Current Position
			6,       // Key Achievements
			0, 0, 2, // first bullet, Edit, Back
			7,          // Show Sample Bullets
			9,          // Back to list
			2,          // Back to main menu
			menuExport, // Export
			menuFinish,
		},
		inputs:  []string{"Scientist", "Acme", "Did X"},
		confirm: []bool{true},
	}
	b, s, out := newSession(t, types.DefaultDocument(), driver)

	require.NoError(t, s.Run(context.Background()))

	doc := b.Document()
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "item-1", doc.Experience[0].ID)
	assert.True(t, doc.Experience[0].Current)
	assert.Equal(t, []string{"Did X"}, doc.Experience[0].Bullets)
	assert.Contains(t, out.String(), "SAMPLE BULLETS")

	exported := s.Exported()
	require.Len(t, exported, 1)
	assert.Equal(t, "_Resume_Meta_AI_Research.txt", filepath.Base(exported[0]))

	data, err := os.ReadFile(exported[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Scientist | Acme\n")
	assert.Contains(t, string(data), " - Present\n")
	assert.Contains(t, string(data), "• Did X\n")
}

func TestRun_SummarySample(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{1, 1, 2, 5, menuFinish},
		inputs:    []string{"8"},
	}
	b, s, _ := newSession(t, types.DefaultDocument(), driver)

	require.NoError(t, s.Run(context.Background()))

	summary := b.Document().Summary
	assert.Equal(t, "8", summary.YearsExperience)
	assert.Contains(t, summary.Content, "with 8+ years of experience")
}

func TestRun_SummaryContentAndFocusAreas(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{1, 0, 3, 0, 1, 5, menuFinish},
		textAreas: []string{"Research scientist."},
		inputs:    []string{"RAG"},
	}
	b, s, _ := newSession(t, types.DefaultDocument(), driver)

	require.NoError(t, s.Run(context.Background()))

	summary := b.Document().Summary
	assert.Equal(t, "Research scientist.", summary.Content)
	assert.Equal(t, []string{"RAG"}, summary.FocusAreas)
}

func TestRun_RemoveSkill(t *testing.T) {
	programming := types.DefaultSkills().Programming
	require.NotEmpty(t, programming)
	n := len(programming)

	driver := &stubDriver{
		// Skills, Programming, first entry, Remove, Back (list now n-1 long), Back
		selectIdx: []int{2, 0, 0, 1, n, 6, menuFinish},
	}
	b, s, _ := newSession(t, types.DefaultDocument(), driver)

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, programming[1:], b.Document().Skills.Programming)
}

func TestRun_AddSkillIsOneReplacement(t *testing.T) {
	n := len(types.DefaultSkills().Programming)
	driver := &stubDriver{
		// Skills, Programming, Add new, Back (list now n+1 long), Back
		selectIdx: []int{2, 0, n, n + 2, 6, menuFinish},
		inputs:    []string{"Go"},
	}
	b, s, _ := newSession(t, types.DefaultDocument(), driver)
	var published []types.Document
	b.Subscribe(func(doc types.Document) { published = append(published, doc) })

	require.NoError(t, s.Run(context.Background()))

	require.Len(t, published, 1)
	assert.Equal(t, "Go", published[0].Skills.Programming[n])
	assert.Equal(t, published[0].Skills.Programming, b.Document().Skills.Programming)
}

func TestRun_AddBulletIsOneReplacement(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Experience = []types.ExperienceItem{{ID: "e1", Title: "Scientist", Bullets: []string{}}}
	driver := &stubDriver{
		// Experience, first position, Key Achievements, Add new, Back, Back (item), Back (list)
		selectIdx: []int{3, 0, 6, 0, 2, 9, 2, menuFinish},
		inputs:    []string{"Did X"},
	}
	b, s, _ := newSession(t, doc, driver)
	replacements := 0
	b.Subscribe(func(types.Document) { replacements++ })

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 1, replacements)
	assert.Equal(t, []string{"Did X"}, b.Document().Experience[0].Bullets)
}

func TestRun_RemoveAward(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Awards = []types.AwardItem{{ID: "a1", Title: "Best Paper", Organization: "ACL"}}
	driver := &stubDriver{
		// Awards, first award, Remove, Back
		selectIdx: []int{7, 0, 4, 1, menuFinish},
	}
	b, s, _ := newSession(t, doc, driver)

	require.NoError(t, s.Run(context.Background()))

	assert.Empty(t, b.Document().Awards)
	assert.Equal(t, "1. Best Paper @ ACL", driver.selects[1].Options[0])
}

func TestRun_PublicationFirstAuthor(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Publications = []types.PublicationItem{{ID: "p1", Title: "RAG", Venue: "NeurIPS"}}
	driver := &stubDriver{
		selectIdx: []int{5, 0, 6, 8, 2, menuFinish},
		confirm:   []bool{true},
	}
	b, s, _ := newSession(t, doc, driver)

	require.NoError(t, s.Run(context.Background()))

	assert.True(t, b.Document().Publications[0].IsFirstAuthor)
	assert.Equal(t, "[ ] First Author", driver.selects[2].Options[6])
}

func TestRun_ProjectTechnology(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Projects = []types.ProjectItem{{ID: "j1", Title: "Retriever", Technologies: []string{}}}
	driver := &stubDriver{
		selectIdx: []int{6, 0, 4, 0, 1, 6, 2, menuFinish},
		inputs:    []string{"PyTorch"},
	}
	b, s, _ := newSession(t, doc, driver)

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []string{"PyTorch"}, b.Document().Projects[0].Technologies)
}

func TestRun_EducationField(t *testing.T) {
	driver := &stubDriver{
		// Education, Add new, Degree, Back, Back
		selectIdx: []int{4, 0, 0, 8, 2, menuFinish},
		inputs:    []string{"Ph.D."},
	}
	b, s, _ := newSession(t, types.DefaultDocument(), driver)

	require.NoError(t, s.Run(context.Background()))

	require.Len(t, b.Document().Education, 1)
	assert.Equal(t, "Ph.D.", b.Document().Education[0].Degree)
}

func TestRun_SelectionMarker(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{6, 1, menuFinish},
	}
	_, s, _ := newSession(t, types.DefaultDocument(), driver)

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, "▸ Header", driver.selects[0].Options[0])
	last := driver.selects[len(driver.selects)-1]
	assert.Equal(t, "▸ Projects", last.Options[6])
	assert.Equal(t, "  Header", last.Options[0])
	assert.Equal(t, 6, last.DefaultIndex)
}

func TestRun_Aborted(t *testing.T) {
	driver := &stubDriver{selectErr: ErrAborted}
	_, s, _ := newSession(t, types.DefaultDocument(), driver)

	err := s.Run(context.Background())

	assert.ErrorIs(t, err, ErrAborted)
}

func TestRun_Verbose(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{menuFinish}}
	_, s, out := newSession(t, types.DefaultDocument(), driver, WithVerbose(true))

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "COMPLETENESS CHECK")
	assert.Contains(t, out.String(), "full_name is required")
}

func TestExport_CustomSuffix(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Header.FullName = "Jane Doe"
	dir := t.TempDir()
	_, s, out := newSession(t, doc, &stubDriver{}, WithOutputDir(dir), WithExportSuffix("Research_Scientist"))

	path, err := s.Export()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Jane_Doe_Resume_Research_Scientist.txt"), path)
	assert.Contains(t, out.String(), "Resume exported to")
	assert.Contains(t, out.String(), "COMPLETENESS CHECK", "missing email and summary are reported")
}

func TestExport_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	_, s, _ := newSession(t, types.DefaultDocument(), &stubDriver{}, WithOutputDir(blocker))

	_, err := s.Export()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to export resume")
	assert.Empty(t, s.Exported())
}

func TestPairLabel(t *testing.T) {
	assert.Equal(t, "Scientist @ Acme", pairLabel("Scientist", "Acme", "x"))
	assert.Equal(t, "Acme", pairLabel(" ", "Acme", "x"))
	assert.Equal(t, "(new)", pairLabel("", "", "(new)"))
}
