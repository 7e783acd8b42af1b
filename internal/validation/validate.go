// Package validation reports advisory completeness problems in a resume document.
// Nothing here blocks editing or export; the results are shown to the user.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their snapshot (json) names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check inspects doc against the required/email/url rules declared on the
// document types and returns every problem found, in section order.
func Check(doc types.Document) *types.Violations {
	result := &types.Violations{Violations: []types.Violation{}}

	result.Violations = append(result.Violations, checkStruct(types.SectionHeader, nil, doc.Header)...)
	result.Violations = append(result.Violations, checkStruct(types.SectionSummary, nil, doc.Summary)...)
	if !hasAnySkill(doc.Skills) {
		result.Violations = append(result.Violations, types.Violation{
			Type:     "empty",
			Severity: types.SeverityInfo,
			Details:  "no skills listed",
			Section:  types.SectionSkills.String(),
		})
	}
	result.Violations = append(result.Violations, checkItems(types.SectionExperience, doc.Experience)...)
	result.Violations = append(result.Violations, checkItems(types.SectionEducation, doc.Education)...)
	result.Violations = append(result.Violations, checkItems(types.SectionPublications, doc.Publications)...)
	result.Violations = append(result.Violations, checkItems(types.SectionProjects, doc.Projects)...)
	result.Violations = append(result.Violations, checkItems(types.SectionAwards, doc.Awards)...)

	return result
}

func checkItems[T interface{ ItemID() string }](section types.Section, items []T) []types.Violation {
	var out []types.Violation
	for _, item := range items {
		id := item.ItemID()
		out = append(out, checkStruct(section, &id, item)...)
	}
	return out
}

func checkStruct(section types.Section, itemID *string, s any) []types.Violation {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []types.Violation{{
			Type:     "invalid",
			Severity: types.SeverityWarning,
			Details:  err.Error(),
			Section:  section.String(),
			ItemID:   itemID,
		}}
	}

	out := make([]types.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, types.Violation{
			Type:     fe.Tag(),
			Severity: types.SeverityWarning,
			Details:  describe(fe),
			Section:  section.String(),
			Field:    fe.Field(),
			ItemID:   itemID,
		})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
	}
}

func hasAnySkill(s types.Skills) bool {
	for _, c := range types.SkillCategories {
		for _, v := range s.Get(c) {
			if strings.TrimSpace(v) != "" {
				return true
			}
		}
	}
	return false
}
