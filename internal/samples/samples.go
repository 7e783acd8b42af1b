// Package samples holds the guidance text offered while editing: a generated
// summary paragraph and example experience bullets.
package samples

import (
	"fmt"
	"strings"
)

// DefaultYearsExperience is used by Summary when no years of experience were entered
const DefaultYearsExperience = "6+"

// Summary returns the sample professional summary for the given years of experience
func Summary(yearsExperience string) string {
	years := strings.TrimSpace(yearsExperience)
	if years == "" {
		years = DefaultYearsExperience
	}
	if !strings.HasSuffix(years, "+") {
		years += "+"
	}
	return fmt.Sprintf("AI Research Scientist with %s years of experience advancing large-scale "+
		"Retrieval-Augmented Generation systems and foundation models. PhD in Machine Learning with a "+
		"focus on multimodal RAG. First-author at ACL, ICLR, and NeurIPS. Built and deployed real-time "+
		"conversational agents powering 100M+ user interactions monthly. Skilled in designing scalable "+
		"LLM pipelines, optimizing transformer models, and bridging research-to-product impact.", years)
}

// ExperienceBullets are example achievement bullets shown next to the experience editor
var ExperienceBullets = []string{
	"Led research on state-of-the-art Retrieval-Augmented Generation systems with applications in chat-based assistants serving 10M+ daily users.",
	"Built and deployed end-to-end RAG pipelines using FAISS and HuggingFace, scaling to millions of queries/day with 95% uptime.",
	"Optimized large language models using PEFT, LoRA, and distillation techniques, improving performance while reducing latency by 25%.",
	"Published 3 first-author papers in ICLR, ACL, NeurIPS on multimodal RAG and conversational AI systems.",
	"Collaborated cross-functionally with product teams to integrate AI models into user-facing applications, impacting 100M+ users.",
}
