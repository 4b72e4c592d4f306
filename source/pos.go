// Package source holds the immutable source buffer and location types
// shared by every later stage of the front-end (lexer, parser, analyzer,
// reporter).
package source

import "fmt"

// FileID identifies a source file within a compilation run. The zero value
// is never a valid id; it is reserved to mean "no file" in zero-valued
// Pos structs.
type FileID int32

// Pos is an immutable source location: a file id, 1-based line and column,
// and the 0-based byte offset into that file's contents. Two Pos values
// compare equal iff they denote the same location.
type Pos struct {
	File   FileID
	Line   int
	Column int
	Offset int
}

// IsValid reports whether p refers to an actual location, as opposed to
// the zero value used for synthetic or not-yet-located nodes.
func (p Pos) IsValid() bool {
	return p.File != 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "<invalid>"
	}
	return fmt.Sprintf("%d:%d:%d", p.File, p.Line, p.Column)
}

// Range is a half-open span [Start, End) of source positions. End may equal
// Start for a zero-width location (e.g. a synthesized node).
type Range struct {
	Start Pos
	End   Pos
}

// Join returns the smallest Range containing both r and other. Both must
// belong to the same file.
func (r Range) Join(other Range) Range {
	joined := r
	if other.Start.Offset < joined.Start.Offset {
		joined.Start = other.Start
	}
	if other.End.Offset > joined.End.Offset {
		joined.End = other.End
	}
	return joined
}
