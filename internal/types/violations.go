// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity levels for a Violation. Nothing in the builder blocks on either.
const (
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Violation represents a single advisory completeness problem in a document
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Section  string `json:"section"`
	Field    string `json:"field"`

	// ItemID names the list item the violation belongs to, when there is one
	ItemID *string `json:"item_id,omitempty"`
}

// Violations represents a collection of advisory findings
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Count returns the number of violations in the collection
func (v *Violations) Count() int {
	if v == nil {
		return 0
	}
	return len(v.Violations)
}
