// Package logging builds the zerolog logger used by the CLI. Logs go to the
// given writer (stderr in practice) so stdout stays free for previews and exports.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Formats understood by New
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Config controls level, output format and timestamps
type Config struct {
	Level        string `json:"level" yaml:"level"`                 // debug, info, warn, error
	Format       string `json:"format" yaml:"format"`               // json or pretty
	TimeFormat   string `json:"time_format" yaml:"time_format"`     // defaults to RFC3339
	ReportCaller bool   `json:"report_caller" yaml:"report_caller"` // add file:line to each entry
}

// ParseLevel resolves a level name, falling back to info when it is empty or unknown
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return level
}

// New creates a logger writing to w according to cfg
func New(cfg Config, w io.Writer) zerolog.Logger {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}

	output := w
	if cfg.Format == FormatPretty {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: timeFormat,
			NoColor:    true,
		}
	}

	ctx := zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp()
	if cfg.ReportCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}
