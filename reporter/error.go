package reporter

import (
	"fmt"

	"github.com/asthra-lang/asthrac/source"
)

// Level distinguishes a fatal finding from advisory ones (spec §4.C8).
type Level int

const (
	Error Level = iota
	Warning
	Note
	Help
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorWithPos is a diagnostic that carries a source location, so it can be
// reported through a Handler the same way regardless of which pipeline
// stage (lexer, parser, analyzer) produced it.
type ErrorWithPos interface {
	error
	Pos() source.Pos
}

// Diagnostic is one structured error/warning/note/help entry (spec §3
// "Symbol entry" sibling concept; §4.C8's `{ code, level, message,
// location, optional suggestion/note }`).
type Diagnostic struct {
	Code       Code
	Level      Level
	Message    string
	Location   source.Pos
	Suggestion string
	Note       string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: [%d] %s", d.Level, d.Code, d.Message)
}

// Pos satisfies ErrorWithPos.
func (d *Diagnostic) Pos() source.Pos { return d.Location }

// New builds an error-level Diagnostic.
func New(code Code, pos source.Pos, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: code, Level: Error, Message: fmt.Sprintf(format, args...), Location: pos}
}

// NewWarning builds a warning-level Diagnostic.
func NewWarning(code Code, pos source.Pos, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: code, Level: Warning, Message: fmt.Sprintf(format, args...), Location: pos}
}

// WithSuggestion attaches a fix-it suggestion and returns d for chaining.
func (d *Diagnostic) WithSuggestion(suggestion string) *Diagnostic {
	d.Suggestion = suggestion
	return d
}

// WithNote attaches a supplementary note and returns d for chaining.
func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Note = note
	return d
}
