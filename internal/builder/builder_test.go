package builder

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/types"
)

func populatedDocument() types.Document {
	doc := types.DefaultDocument()
	doc.Header = types.Header{FullName: "Jane Doe", Email: "jane@example.com", Phone: "555-0100", Location: "Menlo Park, CA"}
	doc.Summary = types.Summary{Content: "Research scientist.", YearsExperience: "6", FocusAreas: []string{"RAG"}, Achievements: []string{"Best Paper"}}
	doc.Experience = []types.ExperienceItem{{ID: "e1", Title: "Scientist", Company: "Acme", Bullets: []string{"Did X"}}}
	doc.Education = []types.EducationItem{{ID: "d1", Degree: "Ph.D.", Field: "CS", Institution: "Stanford"}}
	doc.Publications = []types.PublicationItem{{ID: "p1", Title: "RAG", Authors: "J. Doe", Venue: "NeurIPS", Year: "2023", IsFirstAuthor: true}}
	doc.Projects = []types.ProjectItem{{ID: "j1", Title: "Retriever", Description: "Hybrid search", Technologies: []string{"FAISS"}}}
	doc.Awards = []types.AwardItem{{ID: "a1", Title: "Best Paper", Organization: "ACL", Year: "2022"}}
	return doc
}

func TestNew_DefaultDocument(t *testing.T) {
	b := New()

	assert.Equal(t, types.DefaultDocument(), b.Document())
	assert.Equal(t, types.SectionHeader, b.Selected())
}

func TestReplaceSlice_Isolation(t *testing.T) {
	tests := []struct {
		name        string
		replacement Replacement
		field       string
	}{
		{"header", ReplaceHeader(types.Header{FullName: "John Smith"}), "Header"},
		{"summary", ReplaceSummary(types.Summary{Content: "New"}), "Summary"},
		{"skills", ReplaceSkills(types.Skills{Programming: []string{"Go"}}), "Skills"},
		{"experience", ReplaceExperience(nil), "Experience"},
		{"education", ReplaceEducation([]types.EducationItem{{ID: "d2"}}), "Education"},
		{"publications", ReplacePublications([]types.PublicationItem{}), "Publications"},
		{"projects", ReplaceProjects([]types.ProjectItem{{ID: "j2", Title: "Other"}}), "Projects"},
		{"awards", ReplaceAwards(nil), "Awards"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := populatedDocument()
			b := New(WithDocument(before))

			b.ReplaceSlice(tt.replacement)
			after := b.Document()

			diff := cmp.Diff(before, after, cmpopts.IgnoreFields(types.Document{}, tt.field))
			assert.Empty(t, diff, "sections other than %s changed", tt.field)
			assert.NotEmpty(t, cmp.Diff(before, after), "%s should have been replaced", tt.field)
			assert.Equal(t, tt.field, tt.replacement.Section().Title())
		})
	}
}

func TestReplaceSlice_NotifiesSubscribersInOrder(t *testing.T) {
	b := New()
	var calls []string
	var seen types.Document

	b.Subscribe(func(doc types.Document) {
		calls = append(calls, "first")
		seen = doc
	})
	b.Subscribe(func(types.Document) { calls = append(calls, "second") })

	b.ReplaceSlice(ReplaceHeader(types.Header{FullName: "Jane Doe"}))

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, "Jane Doe", seen.Header.FullName)
}

func TestDocument_ReturnsCopy(t *testing.T) {
	b := New(WithDocument(populatedDocument()))

	doc := b.Document()
	doc.Experience[0].Bullets[0] = "tampered"
	doc.Skills.Programming[0] = "tampered"

	fresh := b.Document()
	assert.Equal(t, "Did X", fresh.Experience[0].Bullets[0])
	assert.Equal(t, "Python", fresh.Skills.Programming[0])
}

func TestReplaceSlice_CallerCannotMutateAfterwards(t *testing.T) {
	b := New()
	bullets := []string{"one"}

	b.ReplaceSlice(ReplaceExperience([]types.ExperienceItem{{ID: "e1", Bullets: bullets}}))
	bullets[0] = "changed"

	assert.Equal(t, "one", b.Document().Experience[0].Bullets[0])
}

func TestSelect(t *testing.T) {
	b := New(WithDocument(populatedDocument()))
	before := b.Document()

	b.Select(types.SectionProjects)

	assert.Equal(t, types.SectionProjects, b.Selected())
	assert.Equal(t, before, b.Document(), "selection is not part of the document")
}

func TestEditors_RouteThroughReplaceSlice(t *testing.T) {
	b := New(WithIDs(ids.NewCounter("item")))
	notified := 0
	b.Subscribe(func(types.Document) { notified++ })

	b.Header().Set(types.HeaderFullName, "Jane Doe")
	b.Summary().Set(types.SummaryContent, "Summary")
	b.Skills().RemoveSkill(types.SkillCloud, 0)
	expID := b.Experience().Add()
	b.Experience().SetBullet(expID, 0, "Did X")
	eduID := b.Education().Add()
	pubID := b.Publications().Add()
	b.Publications().SetFirstAuthor(pubID, true)
	projID := b.Projects().Add()
	awardID := b.Awards().Add()

	doc := b.Document()
	assert.Equal(t, 10, notified)
	assert.Equal(t, "Jane Doe", doc.Header.FullName)
	assert.Equal(t, "Summary", doc.Summary.Content)
	assert.Equal(t, []string{"GCP", "Meta in-house stack"}, doc.Skills.Cloud)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, []string{"Did X"}, doc.Experience[0].Bullets)
	assert.Equal(t, eduID, doc.Education[0].ID)
	assert.True(t, doc.Publications[0].IsFirstAuthor)
	assert.Equal(t, projID, doc.Projects[0].ID)
	assert.Equal(t, awardID, doc.Awards[0].ID)
}

func TestAdd_FreshIDAcrossLoadedDocument(t *testing.T) {
	doc := populatedDocument()
	doc.Awards = []types.AwardItem{{ID: "item-1"}, {ID: "item-2"}}
	b := New(WithDocument(doc), WithIDs(ids.NewCounter("item")))

	id := b.Awards().Add()

	assert.Equal(t, "item-3", id)
	assert.Len(t, b.Document().Awards, 3)
}

func TestReplaceSlice_LogsSection(t *testing.T) {
	var buf bytes.Buffer
	b := New(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	b.ReplaceSlice(ReplaceAwards(nil))

	assert.Contains(t, buf.String(), `"section":"awards"`)
	assert.Contains(t, buf.String(), "section replaced")
}
