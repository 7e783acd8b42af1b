// Package schemas holds the JSON Schema files shipped with the CLI.
package schemas

import _ "embed"

// ResumeDocument is the schema every snapshot file is checked against before decoding
//
//go:embed resume_document.schema.json
var ResumeDocument string
