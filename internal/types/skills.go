// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"slices"
)

// Skills holds the six fixed skill categories
type Skills struct {
	Programming []string `json:"programming"`
	Frameworks  []string `json:"frameworks"`
	ML          []string `json:"ml"`
	RAG         []string `json:"rag"`
	Tools       []string `json:"tools"`
	Cloud       []string `json:"cloud"`
}

// SkillCategory names one of the Skills lists. The set is closed.
type SkillCategory int

const (
	SkillProgramming SkillCategory = iota
	SkillFrameworks
	SkillML
	SkillRAG
	SkillTools
	SkillCloud
)

// SkillCategories lists every category in display order
var SkillCategories = []SkillCategory{
	SkillProgramming,
	SkillFrameworks,
	SkillML,
	SkillRAG,
	SkillTools,
	SkillCloud,
}

var skillCategoryMeta = map[SkillCategory]struct {
	key    string
	label  string
	export string
}{
	SkillProgramming: {"programming", "Programming Languages", "Programming"},
	SkillFrameworks:  {"frameworks", "AI/ML Frameworks", "Frameworks"},
	SkillML:          {"ml", "Machine Learning", "ML"},
	SkillRAG:         {"rag", "RAG & Retrieval", "RAG"},
	SkillTools:       {"tools", "Tools & Platforms", "Tools"},
	SkillCloud:       {"cloud", "Cloud & Infrastructure", "Cloud"},
}

// String returns the JSON key of the category
func (c SkillCategory) String() string {
	if m, ok := skillCategoryMeta[c]; ok {
		return m.key
	}
	return fmt.Sprintf("SkillCategory(%d)", int(c))
}

// Label returns the heading shown while editing, e.g. "Programming Languages"
func (c SkillCategory) Label() string {
	return skillCategoryMeta[c].label
}

// ExportLabel returns the prefix used in the rendered resume, e.g. "Programming"
func (c SkillCategory) ExportLabel() string {
	return skillCategoryMeta[c].export
}

// ParseSkillCategory resolves a category from its JSON key
func ParseSkillCategory(key string) (SkillCategory, error) {
	for _, c := range SkillCategories {
		if skillCategoryMeta[c].key == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown skill category %q", key)
}

// Get returns the list stored for a category. Unknown categories yield nil.
func (s Skills) Get(c SkillCategory) []string {
	switch c {
	case SkillProgramming:
		return s.Programming
	case SkillFrameworks:
		return s.Frameworks
	case SkillML:
		return s.ML
	case SkillRAG:
		return s.RAG
	case SkillTools:
		return s.Tools
	case SkillCloud:
		return s.Cloud
	}
	return nil
}

// With returns a copy of s with one category replaced. Unknown categories leave s unchanged.
func (s Skills) With(c SkillCategory, list []string) Skills {
	switch c {
	case SkillProgramming:
		s.Programming = list
	case SkillFrameworks:
		s.Frameworks = list
	case SkillML:
		s.ML = list
	case SkillRAG:
		s.RAG = list
	case SkillTools:
		s.Tools = list
	case SkillCloud:
		s.Cloud = list
	}
	return s
}

// Clone returns a copy with fresh lists
func (s Skills) Clone() Skills {
	out := s
	for _, c := range SkillCategories {
		out = out.With(c, slices.Clone(s.Get(c)))
	}
	return out
}

// DefaultSkills returns the pre-populated AI/ML skill set
func DefaultSkills() Skills {
	return Skills{
		Programming: []string{"Python", "PyTorch", "Shell", "TensorFlow", "C++"},
		Frameworks:  []string{"HuggingFace Transformers", "FAISS", "LangChain", "OpenAI APIs"},
		ML:          []string{"Deep learning", "Transformer architectures", "Self-supervised learning"},
		RAG:         []string{"Dense/sparse retrieval", "Vector databases", "Hybrid search"},
		Tools:       []string{"Git", "Docker", "Kubernetes", "Weights & Biases", "Ray"},
		Cloud:       []string{"AWS", "GCP", "Meta in-house stack"},
	}
}
